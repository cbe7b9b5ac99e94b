package models

import "time"

// User roles.
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// IsValidRole checks if the provided role string is a known role.
func IsValidRole(role string) bool {
	switch role {
	case RoleMember, RoleTrainer, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents an account in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // '-' means don't send in JSON response
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Phone        *string   `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsApproved   bool      `json:"is_approved"`
	DateJoined   time.Time `json:"date_joined"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated caller resolved once by the auth
// middleware and passed into services. Role checks downstream work against
// this, never against raw token claims.
type Principal struct {
	ID       string
	FullName string
	Role     string
}

// IsStaff reports whether the principal can act on other members' records.
func (p Principal) IsStaff() bool {
	return p.Role == RoleTrainer || p.Role == RoleAdmin
}
