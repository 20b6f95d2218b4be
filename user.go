package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole is the application level role assigned by the backend.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// ParseRole normalizes a raw role value, falling back to RoleUser for
// anything unknown.
func ParseRole(raw string) UserRole {
	switch UserRole(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// UserStatus is the lifecycle state of the backend user record.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusPending   UserStatus = "PENDING"
	UserStatusDeleted   UserStatus = "DELETED"
)

// UserRecord is the backend-of-record user profile returned by the sync
// endpoints. Field names follow the backend's wire format.
type UserRecord struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	Role             UserRole   `json:"role"`
	Status           UserStatus `json:"status"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	AITaggingEnabled *bool      `json:"aiTaggingEnabled,omitempty"`
}
