// Package auth is the client-side identity and session layer of the
// rapidphotoflow application: it authenticates end users against the hosted
// identity provider, owns the local authentication state machine, and
// reconciles the verified identity with the backend-of-record user profile.
//
// State machine:
//   - Authflow owns a single AuthState cell per running application. All
//     consumers read the same snapshot and may register observers that fire
//     on every committed transition. State-mutating actions (Login, Logout,
//     Signup, ConfirmSignup, RefreshUser) are serialized; pass-through
//     actions (resend code, forgot/reset password) never touch state.
//   - Identity and role are deliberately decoupled: a failed backend sync
//     never blocks a successful authentication, it only leaves the role
//     absent until a later sync succeeds.
//
// Provider boundary:
//   - IdentityClient is the capability surface over the identity provider.
//     The provider/cognito package is the only place aware of the provider's
//     native calling convention; everything else consumes the interface.
//   - Provider failures are returned as tagged rich errors that preserve the
//     provider's original message text verbatim, so both structured checks
//     (IsNotAuthorizedError) and legacy substring matching keep working.
//
// Guards:
//   - RequireAuthenticated and RequireAdmin are pure decisions over an
//     AuthState snapshot. The middleware/guard package adapts them to HTTP
//     routes for server-rendered shells.
package auth
