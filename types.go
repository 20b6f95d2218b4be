package auth

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Session holds the token bundle proving a completed authentication
type Session interface {
	GetIDToken() string
	GetAccessToken() string
	GetRefreshToken() string
	GetExpiration() *time.Time
	GetIdentity() (*IdentityRecord, error)
}

// IdentityClient is the capability surface over the hosted identity
// provider. Every operation is fail-fast and performs no retries; the
// state machine is the sole point deciding what to do with a failure.
type IdentityClient interface {
	// IsConfigured reports whether the provider has valid pool/client
	// identifiers. When false every other operation is disabled.
	IsConfigured() bool

	// SignUp registers a pending (unconfirmed) account with the provider.
	SignUp(ctx context.Context, params SignupParams) (*SignUpResult, error)

	// ConfirmSignUp completes registration with the emailed code.
	ConfirmSignUp(ctx context.Context, params ConfirmSignupParams) error

	// ResendConfirmationCode retriggers code delivery for a pending account.
	ResendConfirmationCode(ctx context.Context, email string) error

	// SignIn authenticates and resolves with a session on success.
	SignIn(ctx context.Context, params LoginParams) (Session, error)

	// SignOut clears locally held session material. Always succeeds; a
	// missing session is a no-op.
	SignOut(ctx context.Context)

	// CurrentSession returns the current session, or (nil, nil) when none
	// exists locally. Invalid or expired cached tokens fail the call rather
	// than being treated as "no session".
	CurrentSession(ctx context.Context) (Session, error)

	// AccessToken derives the bearer token from the current session, or ""
	// when no session exists.
	AccessToken(ctx context.Context) (string, error)

	// CurrentUserInfo derives an IdentityRecord from the current session's
	// identity token claims, or (nil, nil) when no session exists.
	CurrentUserInfo(ctx context.Context) (*IdentityRecord, error)

	// InitiatePasswordReset starts the forgot-password flow.
	InitiatePasswordReset(ctx context.Context, params ForgotPasswordParams) error

	// CompletePasswordReset finishes the flow with code and new password.
	CompletePasswordReset(ctx context.Context, params ResetPasswordParams) error
}

// SignUpResult is the opaque confirmation-pending result of a sign up.
type SignUpResult struct {
	Subject                 string
	Confirmed               bool
	CodeDeliveryDestination string
}

// ProfileSyncer reconciles a verified identity with the backend user record
type ProfileSyncer interface {
	SyncUser(ctx context.Context, req SyncUserRequest, bearerToken string) (*UserRecord, error)
	CurrentUser(ctx context.Context, bearerToken string) (*UserRecord, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest, bearerToken string) (*UserRecord, error)
}

// SyncUserRequest is the body of the backend sync call.
type SyncUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
}

// DefaultLogger returns the fallback logger used when none is configured.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
