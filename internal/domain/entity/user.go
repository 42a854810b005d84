// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role tags carried on a user account. The access-control policy in the
// configuration maps these to capability names.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

// User is the account record behind every authenticated request.
// The phone number is the login identifier; the API token is the single
// active opaque bearer credential, rotated on login.
type User struct {
	ID           uint
	Name         string
	Email        string
	PhoneNumber  string // Unique login identifier.
	PasswordHash string // bcrypt hash, never serialized to clients.
	APIToken     string // Current opaque bearer token, empty until first rotation.
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
