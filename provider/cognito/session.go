package cognito

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/rapidphotoflow/go-auth"
)

// Tokens is the persisted token bundle issued at sign in.
type Tokens struct {
	IDToken      string `json:"id_token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session wraps a token bundle as an auth.Session. Identity and expiry
// are derived from the ID token claims; signature verification happens
// at issuance, not here.
type Session struct {
	tokens Tokens
}

// NewSession wraps an issued token bundle.
func NewSession(tokens Tokens) *Session {
	return &Session{tokens: tokens}
}

func (s *Session) GetIDToken() string      { return s.tokens.IDToken }
func (s *Session) GetAccessToken() string  { return s.tokens.AccessToken }
func (s *Session) GetRefreshToken() string { return s.tokens.RefreshToken }

// GetExpiration returns the ID token expiry, or nil when the token is
// unreadable or carries none.
func (s *Session) GetExpiration() *time.Time {
	claims, err := s.claims()
	if err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	return &exp.Time
}

// GetIdentity derives the identity record from the ID token claims.
func (s *Session) GetIdentity() (*auth.IdentityRecord, error) {
	claims, err := s.claims()
	if err != nil {
		return nil, err
	}

	return identityFromClaims(claims)
}

// sessionParser only decodes; expiry is checked separately so a stale
// session can be told apart from a malformed one.
var sessionParser = jwt.NewParser(jwt.WithoutClaimsValidation())

func (s *Session) claims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := sessionParser.ParseUnverified(s.tokens.IDToken, claims); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "unable to decode session token").
			WithTextCode(auth.TextCodeSessionExpired)
	}

	return claims, nil
}

func identityFromClaims(claims jwt.MapClaims) (*auth.IdentityRecord, error) {
	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, goerrors.New("session token has no subject", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized)
	}

	email, _ := claims["email"].(string)
	preferred, _ := claims["preferred_username"].(string)

	return auth.NewIdentityRecord(subject, email, preferred, claimBool(claims, "email_verified")), nil
}

// claimBool reads a boolean claim that some pools emit as a string.
func claimBool(claims jwt.MapClaims, name string) bool {
	switch v := claims[name].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
