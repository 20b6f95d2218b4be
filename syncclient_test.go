package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/rapidphotoflow/go-auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSyncClientSyncUser(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/sync", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body auth.SyncUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pepe@example.com", body.Email)
		assert.Equal(t, "pepe", body.Username)

		json.NewEncoder(w).Encode(map[string]any{
			"id":               userID.String(),
			"email":            "pepe@example.com",
			"username":         "pepe",
			"role":             "ADMIN",
			"status":           "ACTIVE",
			"lastLoginAt":      "2025-08-30T10:00:00Z",
			"createdAt":        "2025-01-15T09:30:00Z",
			"aiTaggingEnabled": true,
		})
	}))
	defer server.Close()

	client := auth.NewProfileSyncClient(server.URL)

	record, err := client.SyncUser(context.Background(), auth.SyncUserRequest{
		Email:    "pepe@example.com",
		Username: "pepe",
	}, "access-token")
	require.NoError(t, err)

	assert.Equal(t, userID, record.ID)
	assert.Equal(t, auth.RoleAdmin, record.Role)
	assert.Equal(t, auth.UserStatusActive, record.Status)
	require.NotNil(t, record.LastLoginAt)
	require.NotNil(t, record.AITaggingEnabled)
	assert.True(t, *record.AITaggingEnabled)
}

func TestProfileSyncClientCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users/me", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(map[string]any{
			"id":       uuid.New().String(),
			"email":    "pepe@example.com",
			"username": "pepe",
			"role":     "USER",
			"status":   "ACTIVE",
		})
	}))
	defer server.Close()

	client := auth.NewProfileSyncClient(server.URL + "/")

	record, err := client.CurrentUser(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, record.Role)
}

func TestProfileSyncClientUpdateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/me", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pepe-updated", body["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":       uuid.New().String(),
			"email":    "pepe@example.com",
			"username": "pepe-updated",
			"role":     "USER",
			"status":   "ACTIVE",
		})
	}))
	defer server.Close()

	client := auth.NewProfileSyncClient(server.URL)

	username := "pepe-updated"
	record, err := client.UpdateProfile(context.Background(), auth.UpdateProfileRequest{
		Username: &username,
	}, "access-token")
	require.NoError(t, err)
	assert.Equal(t, "pepe-updated", record.Username)
}

func TestProfileSyncClientRejectedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := auth.NewProfileSyncClient(server.URL)

	_, err := client.CurrentUser(context.Background(), "stale-token")
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, auth.TextCodeSyncFailed, rich.TextCode)
	assert.Equal(t, goerrors.CategoryAuth, rich.Category)
	assert.Equal(t, http.StatusUnauthorized, rich.Metadata["status"])
}

func TestProfileSyncClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := auth.NewProfileSyncClient(server.URL)

	_, err := client.CurrentUser(context.Background(), "access-token")
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, auth.TextCodeSyncFailed, rich.TextCode)
}

func TestProfileSyncClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := auth.NewProfileSyncClient(server.URL)

	_, err := client.CurrentUser(context.Background(), "access-token")
	require.Error(t, err)
}
