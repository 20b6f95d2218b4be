package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rapidphotoflow/go-auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, auth.RoleAdmin, auth.ParseRole("ADMIN"))
	assert.Equal(t, auth.RoleAdmin, auth.ParseRole("admin"))
	assert.Equal(t, auth.RoleAdmin, auth.ParseRole(" Admin "))
	assert.Equal(t, auth.RoleUser, auth.ParseRole("USER"))
	assert.Equal(t, auth.RoleUser, auth.ParseRole("superuser"))
	assert.Equal(t, auth.RoleUser, auth.ParseRole(""))
}

func TestUserRole(t *testing.T) {
	assert.True(t, auth.RoleAdmin.IsAdmin())
	assert.False(t, auth.RoleUser.IsAdmin())
	assert.True(t, auth.RoleUser.IsValid())
	assert.False(t, auth.UserRole("ROOT").IsValid())
}

func TestUserRecordDecodesBackendPayload(t *testing.T) {
	userID := uuid.New()
	payload := `{
		"id": "` + userID.String() + `",
		"email": "pepe@example.com",
		"username": "pepe",
		"role": "ADMIN",
		"status": "SUSPENDED",
		"lastLoginAt": "2025-08-30T10:00:00Z",
		"aiTaggingEnabled": false
	}`

	var record auth.UserRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	assert.Equal(t, userID, record.ID)
	assert.Equal(t, auth.RoleAdmin, record.Role)
	assert.Equal(t, auth.UserStatusSuspended, record.Status)
	require.NotNil(t, record.LastLoginAt)
	assert.Nil(t, record.CreatedAt)
	require.NotNil(t, record.AITaggingEnabled)
	assert.False(t, *record.AITaggingEnabled)
}

func TestNewIdentityRecordUsernameFallback(t *testing.T) {
	record := auth.NewIdentityRecord("sub-1", "pepe@example.com", "", true)
	assert.Equal(t, "pepe@example.com", record.Username)

	record = auth.NewIdentityRecord("sub-1", "pepe@example.com", "pepe", false)
	assert.Equal(t, "pepe", record.Username)
	assert.False(t, record.EmailVerified)
}
