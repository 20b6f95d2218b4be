package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const (
	syncUserPath    = "/api/auth/sync"
	currentUserPath = "/api/users/me"

	// EnvAPIBaseURL configures the backend base URL for
	// NewProfileSyncClientFromEnv.
	EnvAPIBaseURL = "RPF_API_BASE_URL"
)

// ProfileSyncClient talks to the backend user endpoints with the
// provider's access token as bearer credential.
type ProfileSyncClient struct {
	baseURL string
	client  *http.Client
	logger  Logger
}

// ProfileSyncOption customizes the sync client.
type ProfileSyncOption func(*ProfileSyncClient)

// WithSyncHTTPClient overrides the underlying HTTP client.
func WithSyncHTTPClient(client *http.Client) ProfileSyncOption {
	return func(c *ProfileSyncClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithSyncLogger overrides the default logger.
func WithSyncLogger(logger Logger) ProfileSyncOption {
	return func(c *ProfileSyncClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewProfileSyncClient builds a client rooted at the backend base URL.
func NewProfileSyncClient(baseURL string, opts ...ProfileSyncOption) *ProfileSyncClient {
	c := &ProfileSyncClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: defLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// NewProfileSyncClientFromEnv reads the base URL from the environment.
func NewProfileSyncClientFromEnv(opts ...ProfileSyncOption) *ProfileSyncClient {
	return NewProfileSyncClient(os.Getenv(EnvAPIBaseURL), opts...)
}

// SyncUser upserts the backend user record for a verified identity and
// returns the record, including the granted role.
func (c *ProfileSyncClient) SyncUser(ctx context.Context, req SyncUserRequest, bearerToken string) (*UserRecord, error) {
	return c.do(ctx, http.MethodPost, syncUserPath, req, bearerToken)
}

// CurrentUser fetches the backend record for the authenticated user.
func (c *ProfileSyncClient) CurrentUser(ctx context.Context, bearerToken string) (*UserRecord, error) {
	return c.do(ctx, http.MethodGet, currentUserPath, nil, bearerToken)
}

// UpdateProfile pushes mutable profile fields and returns the updated record.
func (c *ProfileSyncClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest, bearerToken string) (*UserRecord, error) {
	return c.do(ctx, http.MethodPut, currentUserPath, req, bearerToken)
}

func (c *ProfileSyncClient) do(ctx context.Context, method, path string, body any, bearerToken string) (*UserRecord, error) {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "unable to encode request body")
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "unable to build request")
	}

	req.Header.Set("Authorization", "Bearer "+bearerToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "backend request failed").
			WithTextCode(TextCodeSyncFailed)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		c.logger.Warn("backend %s %s returned %d", method, path, res.StatusCode)
		return nil, goerrors.New("backend rejected request", categoryForStatus(res.StatusCode)).
			WithTextCode(TextCodeSyncFailed).
			WithMetadata(map[string]any{
				"status": res.StatusCode,
				"path":   path,
				"body":   string(msg),
			})
	}

	record := &UserRecord{}
	if err := json.NewDecoder(res.Body).Decode(record); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "unable to decode user record").
			WithTextCode(TextCodeSyncFailed)
	}

	return record, nil
}

func categoryForStatus(status int) goerrors.Category {
	switch status {
	case http.StatusUnauthorized:
		return goerrors.CategoryAuth
	case http.StatusForbidden:
		return goerrors.CategoryAuthz
	case http.StatusNotFound:
		return goerrors.CategoryNotFound
	case http.StatusConflict:
		return goerrors.CategoryConflict
	case http.StatusBadRequest:
		return goerrors.CategoryValidation
	default:
		return goerrors.CategoryOperation
	}
}

var _ ProfileSyncer = (*ProfileSyncClient)(nil)
