package cognito

import (
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/rapidphotoflow/go-auth"
)

// TokenValidatorOption customizes validator construction.
type TokenValidatorOption func(*TokenValidator)

// WithValidatorLogger overrides the logger used for JWKS refresh errors.
func WithValidatorLogger(logger auth.Logger) TokenValidatorOption {
	return func(v *TokenValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// TokenValidator verifies pool-issued JWTs against the pool's published
// JWKS. It is meant for server-side components that receive the tokens
// this package issues.
type TokenValidator struct {
	config Config
	jwks   *keyfunc.JWKS
	logger auth.Logger
}

// NewTokenValidator fetches the pool JWKS and keeps it refreshed in the
// background until Close is called.
func NewTokenValidator(cfg Config, opts ...TokenValidatorOption) (*TokenValidator, error) {
	if !cfg.IsConfigured() {
		return nil, auth.ErrNotConfigured
	}

	v := &TokenValidator{
		config: cfg,
		logger: auth.DefaultLogger(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	jwks, err := keyfunc.Get(cfg.jwksURL(), keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			v.logger.Warn("jwks refresh failed: %v", err)
		},
	})
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to fetch pool jwks")
	}

	v.jwks = jwks

	return v, nil
}

// Validate verifies signature, expiry and issuer, returning the identity
// the token vouches for.
func (v *TokenValidator) Validate(tokenString string) (*auth.IdentityRecord, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.config.issuerURL()),
	)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "token validation failed").
			WithCode(goerrors.CodeUnauthorized)
	}

	return identityFromClaims(claims)
}

// Close stops the background JWKS refresh.
func (v *TokenValidator) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}
