package auth

// DefaultLoginRoute is where unauthenticated visitors are sent.
var DefaultLoginRoute = "/login"

// GuardVerdict is the outcome of evaluating a guard over a state snapshot.
type GuardVerdict int

const (
	// VerdictRender lets the protected content through.
	VerdictRender GuardVerdict = iota
	// VerdictLoading means the state is not settled yet; show a
	// placeholder, never the protected content.
	VerdictLoading
	// VerdictRedirect sends the visitor to the login route.
	VerdictRedirect
	// VerdictDenied means authenticated but lacking the required role.
	VerdictDenied
)

func (v GuardVerdict) String() string {
	switch v {
	case VerdictRender:
		return "render"
	case VerdictLoading:
		return "loading"
	case VerdictRedirect:
		return "redirect"
	case VerdictDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// GuardDecision is a pure routing decision; adapters translate it into
// transport specific behavior.
type GuardDecision struct {
	Verdict    GuardVerdict
	RedirectTo string
	// From is the originally requested path, preserved so the login flow
	// can return the visitor after authentication.
	From string
}

// RequireAuthenticated decides access for routes that need a signed-in
// user. When authentication is unconfigured every route renders, so the
// application degrades to an open shell instead of locking everyone out.
func RequireAuthenticated(state AuthState, requestedPath string) GuardDecision {
	if state.IsLoading {
		return GuardDecision{Verdict: VerdictLoading}
	}

	if !state.IsConfigured {
		return GuardDecision{Verdict: VerdictRender}
	}

	if !state.IsAuthenticated() {
		return GuardDecision{
			Verdict:    VerdictRedirect,
			RedirectTo: DefaultLoginRoute,
			From:       requestedPath,
		}
	}

	return GuardDecision{Verdict: VerdictRender}
}

// RequireAdmin decides access for admin-only routes. Unauthenticated
// visitors redirect to login; authenticated non-admins are denied.
func RequireAdmin(state AuthState, requestedPath string) GuardDecision {
	if state.IsLoading {
		return GuardDecision{Verdict: VerdictLoading}
	}

	if !state.IsConfigured {
		return GuardDecision{Verdict: VerdictRender}
	}

	if !state.IsAuthenticated() {
		return GuardDecision{
			Verdict:    VerdictRedirect,
			RedirectTo: DefaultLoginRoute,
			From:       requestedPath,
		}
	}

	if !state.IsAdmin() {
		return GuardDecision{Verdict: VerdictDenied}
	}

	return GuardDecision{Verdict: VerdictRender}
}
