package domain

import "time"

// System-level user roles.
const (
	SystemRoleAdmin = "ADMIN"
	SystemRoleUser  = "USER"
)

// ValidSystemRole reports whether role is an assignable system role.
func ValidSystemRole(role string) bool {
	return role == SystemRoleAdmin || role == SystemRoleUser
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id encoded; empty until the user first sets one
	Role         string // SystemRoleAdmin or SystemRoleUser
	ThumbnailURL string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}
