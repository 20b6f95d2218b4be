package auth_test

import (
	"context"
	"time"

	"github.com/rapidphotoflow/go-auth"
	"github.com/stretchr/testify/mock"
)

// MockIdentityClient implements auth.IdentityClient
type MockIdentityClient struct {
	mock.Mock
	Configured bool
}

func (m *MockIdentityClient) IsConfigured() bool {
	return m.Configured
}

func (m *MockIdentityClient) SignUp(ctx context.Context, params auth.SignupParams) (*auth.SignUpResult, error) {
	args := m.Called(ctx, params)
	var result *auth.SignUpResult
	if v := args.Get(0); v != nil {
		result = v.(*auth.SignUpResult)
	}
	return result, args.Error(1)
}

func (m *MockIdentityClient) ConfirmSignUp(ctx context.Context, params auth.ConfirmSignupParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockIdentityClient) ResendConfirmationCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockIdentityClient) SignIn(ctx context.Context, params auth.LoginParams) (auth.Session, error) {
	args := m.Called(ctx, params)
	var session auth.Session
	if v := args.Get(0); v != nil {
		session = v.(auth.Session)
	}
	return session, args.Error(1)
}

func (m *MockIdentityClient) SignOut(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockIdentityClient) CurrentSession(ctx context.Context) (auth.Session, error) {
	args := m.Called(ctx)
	var session auth.Session
	if v := args.Get(0); v != nil {
		session = v.(auth.Session)
	}
	return session, args.Error(1)
}

func (m *MockIdentityClient) AccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityClient) CurrentUserInfo(ctx context.Context) (*auth.IdentityRecord, error) {
	args := m.Called(ctx)
	var identity *auth.IdentityRecord
	if v := args.Get(0); v != nil {
		identity = v.(*auth.IdentityRecord)
	}
	return identity, args.Error(1)
}

func (m *MockIdentityClient) InitiatePasswordReset(ctx context.Context, params auth.ForgotPasswordParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockIdentityClient) CompletePasswordReset(ctx context.Context, params auth.ResetPasswordParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// MockProfileSyncer implements auth.ProfileSyncer
type MockProfileSyncer struct {
	mock.Mock
}

func (m *MockProfileSyncer) SyncUser(ctx context.Context, req auth.SyncUserRequest, bearerToken string) (*auth.UserRecord, error) {
	args := m.Called(ctx, req, bearerToken)
	var record *auth.UserRecord
	if v := args.Get(0); v != nil {
		record = v.(*auth.UserRecord)
	}
	return record, args.Error(1)
}

func (m *MockProfileSyncer) CurrentUser(ctx context.Context, bearerToken string) (*auth.UserRecord, error) {
	args := m.Called(ctx, bearerToken)
	var record *auth.UserRecord
	if v := args.Get(0); v != nil {
		record = v.(*auth.UserRecord)
	}
	return record, args.Error(1)
}

func (m *MockProfileSyncer) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest, bearerToken string) (*auth.UserRecord, error) {
	args := m.Called(ctx, req, bearerToken)
	var record *auth.UserRecord
	if v := args.Get(0); v != nil {
		record = v.(*auth.UserRecord)
	}
	return record, args.Error(1)
}

// MockSession implements auth.Session
type MockSession struct {
	IDToken      string
	AccessTkn    string
	RefreshToken string
	Expiration   *time.Time
	Identity     *auth.IdentityRecord
	IdentityErr  error
}

func (m *MockSession) GetIDToken() string          { return m.IDToken }
func (m *MockSession) GetAccessToken() string      { return m.AccessTkn }
func (m *MockSession) GetRefreshToken() string     { return m.RefreshToken }
func (m *MockSession) GetExpiration() *time.Time   { return m.Expiration }
func (m *MockSession) GetIdentity() (*auth.IdentityRecord, error) {
	return m.Identity, m.IdentityErr
}
