package auth

import (
	"context"
	"sync"

	"github.com/goliatone/go-print"
)

// AuthflowOption customizes Authflow construction.
type AuthflowOption func(*Authflow)

// WithLogger overrides the default logger.
func WithLogger(logger Logger) AuthflowOption {
	return func(f *Authflow) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithDebug enables state dumps on every committed transition.
func WithDebug(debug bool) AuthflowOption {
	return func(f *Authflow) {
		f.debug = debug
	}
}

// Authflow owns the application's authentication state. One instance per
// running application; every consumer reads the same snapshot and may
// subscribe to transitions. State-mutating actions are serialized so
// overlapping calls cannot interleave their commits.
type Authflow struct {
	identity   IdentityClient
	syncer     ProfileSyncer
	logger     Logger
	debug      bool
	configured bool

	// opMu serializes mutating actions, mu guards the snapshot.
	opMu sync.Mutex
	mu   sync.RWMutex

	state   AuthState
	subs    map[int]func(AuthState)
	nextSub int
}

// NewAuthflow builds the state container. Configuration is checked once
// here; the result is fixed for the container's lifetime.
func NewAuthflow(identity IdentityClient, syncer ProfileSyncer, opts ...AuthflowOption) *Authflow {
	configured := identity.IsConfigured()

	f := &Authflow{
		identity:   identity,
		syncer:     syncer,
		logger:     defLogger{},
		configured: configured,
		state: AuthState{
			IsLoading:    true,
			IsConfigured: configured,
		},
		subs: map[int]func(AuthState){},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	return f
}

// State returns the current snapshot.
func (f *Authflow) State() AuthState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Subscribe registers an observer invoked on every committed transition.
// The returned function removes it.
func (f *Authflow) Subscribe(fn func(AuthState)) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Authflow) commit(state AuthState) {
	f.mu.Lock()
	f.state = state
	observers := make([]func(AuthState), 0, len(f.subs))
	for _, fn := range f.subs {
		observers = append(observers, fn)
	}
	f.mu.Unlock()

	if f.debug {
		f.logger.Debug("auth state: %s", print.MaybePrettyJSON(state))
	}

	for _, fn := range observers {
		fn(state)
	}
}

func (f *Authflow) setLoading(loading bool) {
	f.mu.RLock()
	state := f.state
	f.mu.RUnlock()

	state.IsLoading = loading
	f.commit(state)
}

// Start restores any persisted session and resolves the initial state.
// Call it once after construction.
func (f *Authflow) Start(ctx context.Context) {
	if !f.configured {
		f.logger.Warn("authentication is not configured, all auth operations are disabled")
		f.commit(AuthState{})
		return
	}

	f.opMu.Lock()
	defer f.opMu.Unlock()

	f.commit(f.resolveSession(ctx))
}

// resolveSession derives the signed-in state from the provider session,
// falling back to signed out when none exists or the cached session is
// unusable.
func (f *Authflow) resolveSession(ctx context.Context) AuthState {
	identity, err := f.identity.CurrentUserInfo(ctx)
	if err != nil {
		f.logger.Warn("session restoration failed: %v", err)
		return SignedOutState(true)
	}
	if identity == nil {
		return SignedOutState(true)
	}

	return AuthState{
		User:         identity,
		Role:         f.syncRole(ctx, identity),
		IsConfigured: true,
	}
}

// syncRole reconciles the identity with the backend and returns the
// granted role. Sync failures never block authentication, they only
// leave the role empty.
func (f *Authflow) syncRole(ctx context.Context, identity *IdentityRecord) UserRole {
	token, err := f.identity.AccessToken(ctx)
	if err != nil || token == "" {
		f.logger.Warn("no access token available for backend sync: %v", err)
		return ""
	}

	record, err := f.syncer.SyncUser(ctx, SyncUserRequest{
		Email:    identity.Email,
		Username: identity.Username,
	}, token)
	if err != nil {
		f.logger.Warn("failed to sync user with backend: %v", err)
		return ""
	}

	return record.Role
}

// Login authenticates with the provider and commits whatever state the
// resulting session resolves to, signed out included. Provider errors
// are returned unchanged so callers can classify them.
func (f *Authflow) Login(ctx context.Context, params LoginParams) error {
	if !f.configured {
		return ErrNotConfigured
	}

	if err := params.Validate(); err != nil {
		return err
	}

	f.opMu.Lock()
	defer f.opMu.Unlock()

	f.setLoading(true)

	if _, err := f.identity.SignIn(ctx, params); err != nil {
		f.setLoading(false)
		return err
	}

	f.commit(f.resolveSession(ctx))

	return nil
}

// Logout clears the provider session and commits the signed-out
// baseline. It never fails.
func (f *Authflow) Logout(ctx context.Context) {
	f.opMu.Lock()
	defer f.opMu.Unlock()

	if f.configured {
		f.identity.SignOut(ctx)
	}

	f.commit(SignedOutState(f.configured))
}

// Signup registers a new pending account. The authenticated state does
// not change; only the loading flag brackets the call.
func (f *Authflow) Signup(ctx context.Context, params SignupParams) (*SignUpResult, error) {
	if !f.configured {
		return nil, ErrNotConfigured
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	f.opMu.Lock()
	defer f.opMu.Unlock()

	f.setLoading(true)
	result, err := f.identity.SignUp(ctx, params)
	f.setLoading(false)

	return result, err
}

// ConfirmSignup completes a pending registration with the emailed code.
func (f *Authflow) ConfirmSignup(ctx context.Context, params ConfirmSignupParams) error {
	if !f.configured {
		return ErrNotConfigured
	}

	if err := params.Validate(); err != nil {
		return err
	}

	f.opMu.Lock()
	defer f.opMu.Unlock()

	f.setLoading(true)
	err := f.identity.ConfirmSignUp(ctx, params)
	f.setLoading(false)

	return err
}

// ResendConfirmationCode retriggers code delivery. Pass-through, no
// state change.
func (f *Authflow) ResendConfirmationCode(ctx context.Context, email string) error {
	if !f.configured {
		return ErrNotConfigured
	}
	return f.identity.ResendConfirmationCode(ctx, email)
}

// ForgotPassword starts the reset flow. Pass-through, no state change.
func (f *Authflow) ForgotPassword(ctx context.Context, params ForgotPasswordParams) error {
	if !f.configured {
		return ErrNotConfigured
	}

	if err := params.Validate(); err != nil {
		return err
	}

	return f.identity.InitiatePasswordReset(ctx, params)
}

// ResetPassword completes the reset flow. Pass-through, no state change.
func (f *Authflow) ResetPassword(ctx context.Context, params ResetPasswordParams) error {
	if !f.configured {
		return ErrNotConfigured
	}

	if err := params.Validate(); err != nil {
		return err
	}

	return f.identity.CompletePasswordReset(ctx, params)
}

// RefreshUser re-resolves identity and role from the provider session
// and the backend, committing whatever it finds.
func (f *Authflow) RefreshUser(ctx context.Context) {
	f.opMu.Lock()
	defer f.opMu.Unlock()

	if !f.configured {
		f.commit(AuthState{})
		return
	}

	f.commit(f.resolveSession(ctx))
}

// UpdateProfile pushes profile changes to the backend and refreshes the
// committed state from the result.
func (f *Authflow) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserRecord, error) {
	if !f.configured {
		return nil, ErrNotConfigured
	}

	f.opMu.Lock()
	defer f.opMu.Unlock()

	token, err := f.identity.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	record, err := f.syncer.UpdateProfile(ctx, req, token)
	if err != nil {
		return nil, err
	}

	f.commit(f.resolveSession(ctx))

	return record, nil
}
