package cognito

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	smithy "github.com/aws/smithy-go"
	goerrors "github.com/goliatone/go-errors"
	"github.com/rapidphotoflow/go-auth"
)

// API is the subset of the Cognito identity provider service the client
// uses. It exists so tests can substitute the transport.
type API interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, params *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
	ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
}

// Option customizes client construction.
type Option func(*Client)

// WithAPI substitutes the Cognito transport.
func WithAPI(api API) Option {
	return func(c *Client) {
		if api != nil {
			c.api = api
		}
	}
}

// WithTokenStore overrides the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		if store != nil {
			c.store = store
		}
	}
}

// WithClientLogger overrides the default logger.
func WithClientLogger(logger auth.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client implements auth.IdentityClient against a Cognito user pool
// using the unauthenticated app-client API surface.
type Client struct {
	config Config
	api    API
	store  TokenStore
	logger auth.Logger
	now    func() time.Time
}

// New builds a Cognito-backed identity client. An unconfigured Config is
// allowed; the client constructs but every operation returns
// auth.ErrNotConfigured.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		config: cfg,
		store:  NewMemoryTokenStore(),
		logger: auth.DefaultLogger(),
		now:    time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.api == nil && cfg.IsConfigured() {
		options := cip.Options{
			Region:      cfg.region(),
			Credentials: aws.AnonymousCredentials{},
		}
		if cfg.Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		c.api = cip.New(options)
	}

	return c
}

// IsConfigured implements auth.IdentityClient.
func (c *Client) IsConfigured() bool {
	return c.config.IsConfigured() && c.api != nil
}

// SignUp registers a pending account. The email doubles as the pool
// username; the chosen handle travels as preferred_username.
func (c *Client) SignUp(ctx context.Context, params auth.SignupParams) (*auth.SignUpResult, error) {
	if !c.IsConfigured() {
		return nil, auth.ErrNotConfigured
	}

	out, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(c.config.ClientID),
		Username: aws.String(params.Email),
		Password: aws.String(params.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(params.Email)},
			{Name: aws.String("preferred_username"), Value: aws.String(params.Username)},
		},
	})
	if err != nil {
		return nil, c.wrapProviderError(err)
	}

	result := &auth.SignUpResult{
		Subject:   aws.ToString(out.UserSub),
		Confirmed: out.UserConfirmed,
	}
	if out.CodeDeliveryDetails != nil {
		result.CodeDeliveryDestination = aws.ToString(out.CodeDeliveryDetails.Destination)
	}

	return result, nil
}

// ConfirmSignUp completes registration with the emailed code.
func (c *Client) ConfirmSignUp(ctx context.Context, params auth.ConfirmSignupParams) error {
	if !c.IsConfigured() {
		return auth.ErrNotConfigured
	}

	_, err := c.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(c.config.ClientID),
		Username:         aws.String(params.Email),
		ConfirmationCode: aws.String(params.Code),
	})
	if err != nil {
		return c.wrapProviderError(err)
	}

	return nil
}

// ResendConfirmationCode retriggers code delivery for a pending account.
func (c *Client) ResendConfirmationCode(ctx context.Context, email string) error {
	if !c.IsConfigured() {
		return auth.ErrNotConfigured
	}

	_, err := c.api.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId: aws.String(c.config.ClientID),
		Username: aws.String(email),
	})
	if err != nil {
		return c.wrapProviderError(err)
	}

	return nil
}

// SignIn authenticates with the USER_PASSWORD_AUTH flow and persists the
// issued tokens.
func (c *Client) SignIn(ctx context.Context, params auth.LoginParams) (auth.Session, error) {
	if !c.IsConfigured() {
		return nil, auth.ErrNotConfigured
	}

	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.config.ClientID),
		AuthParameters: map[string]string{
			"USERNAME": params.Email,
			"PASSWORD": params.Password,
		},
	})
	if err != nil {
		return nil, c.wrapProviderError(err)
	}

	if out.ChallengeName == types.ChallengeNameTypeNewPasswordRequired {
		return nil, auth.ErrNewPasswordRequired
	}

	if out.AuthenticationResult == nil {
		return nil, goerrors.New(
			fmt.Sprintf("authentication incomplete: unexpected challenge %q", out.ChallengeName),
			goerrors.CategoryAuth,
		).WithCode(goerrors.CodeUnauthorized)
	}

	tokens := Tokens{
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		AccessToken:  aws.ToString(out.AuthenticationResult.AccessToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
	}

	if err := c.store.Save(ctx, tokens); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to persist session tokens")
	}

	return NewSession(tokens), nil
}

// SignOut clears the local session and revokes the remote one on a best
// effort basis. The local clear always wins.
func (c *Client) SignOut(ctx context.Context) {
	tokens, _ := c.store.Load(ctx)

	if err := c.store.Clear(ctx); err != nil {
		c.logger.Warn("unable to clear token store: %v", err)
	}

	if !c.IsConfigured() || tokens == nil || tokens.AccessToken == "" {
		return
	}

	if _, err := c.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{
		AccessToken: aws.String(tokens.AccessToken),
	}); err != nil {
		c.logger.Debug("remote sign out failed: %v", err)
	}
}

// CurrentSession returns the persisted session, (nil, nil) when none
// exists, or auth.ErrSessionExpired when the cached tokens are stale.
func (c *Client) CurrentSession(ctx context.Context) (auth.Session, error) {
	if !c.IsConfigured() {
		return nil, auth.ErrNotConfigured
	}

	tokens, err := c.store.Load(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to load session tokens")
	}
	if tokens == nil || tokens.IDToken == "" {
		return nil, nil
	}

	session := NewSession(*tokens)
	if _, err := session.GetIdentity(); err != nil {
		return nil, err
	}

	if exp := session.GetExpiration(); exp != nil && !exp.After(c.now()) {
		return nil, auth.ErrSessionExpired
	}

	return session, nil
}

// AccessToken implements auth.IdentityClient.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	session, err := c.CurrentSession(ctx)
	if err != nil || session == nil {
		return "", err
	}

	return session.GetAccessToken(), nil
}

// CurrentUserInfo implements auth.IdentityClient.
func (c *Client) CurrentUserInfo(ctx context.Context) (*auth.IdentityRecord, error) {
	session, err := c.CurrentSession(ctx)
	if err != nil || session == nil {
		return nil, err
	}

	return session.GetIdentity()
}

// InitiatePasswordReset starts the forgot-password flow.
func (c *Client) InitiatePasswordReset(ctx context.Context, params auth.ForgotPasswordParams) error {
	if !c.IsConfigured() {
		return auth.ErrNotConfigured
	}

	_, err := c.api.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId: aws.String(c.config.ClientID),
		Username: aws.String(params.Email),
	})
	if err != nil {
		return c.wrapProviderError(err)
	}

	return nil
}

// CompletePasswordReset finishes the flow with code and new password.
func (c *Client) CompletePasswordReset(ctx context.Context, params auth.ResetPasswordParams) error {
	if !c.IsConfigured() {
		return auth.ErrNotConfigured
	}

	_, err := c.api.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(c.config.ClientID),
		Username:         aws.String(params.Email),
		ConfirmationCode: aws.String(params.Code),
		Password:         aws.String(params.NewPassword),
	})
	if err != nil {
		return c.wrapProviderError(err)
	}

	return nil
}

// wrapProviderError flattens a smithy API error into "{code}: {message}"
// before classification so both the error name and the human text
// survive in the wrapped message.
func (c *Client) wrapProviderError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return auth.WrapProviderError(fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()))
	}

	return auth.WrapProviderError(err)
}

var _ auth.IdentityClient = (*Client)(nil)
