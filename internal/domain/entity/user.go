// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role within the neighborhood association.
type Role string

const (
	// RoleWarga is a regular resident (household).
	RoleWarga Role = "user"
	// RoleAdmin is the association administrator.
	RoleAdmin Role = "admin"
	// RoleRT is the neighborhood chair.
	RoleRT Role = "rt"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleWarga || r == RoleAdmin || r == RoleRT
}

// User represents an account in the dues-management system, keyed by the
// household identifier (KK).
type User struct {
	ID           uuid.UUID
	KK           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the resident role.
func NewUser(kk, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		KK:           kk,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         RoleWarga,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
