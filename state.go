package auth

// AuthState is the single snapshot every consumer reads. It is a value
// type; transitions replace the whole snapshot atomically.
type AuthState struct {
	// User is the provider-verified identity, nil when signed out.
	User *IdentityRecord

	// Role is the backend assigned role. Empty when the backend sync has
	// not succeeded yet; authentication does not depend on it.
	Role UserRole

	// IsLoading is true while a state-mutating action is in flight and
	// during initial session restoration.
	IsLoading bool

	// IsConfigured mirrors the provider configuration, fixed at startup.
	IsConfigured bool
}

// IsAuthenticated reports whether a verified identity is present.
func (s AuthState) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the backend granted administrative access.
func (s AuthState) IsAdmin() bool {
	return s.Role.IsAdmin()
}

// SignedOutState is the baseline state after a logout or a failed
// session restoration.
func SignedOutState(configured bool) AuthState {
	return AuthState{IsConfigured: configured}
}
