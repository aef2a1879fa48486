package models

import "time"

// Role values for User.Role.
const (
	RoleAdmin   = "admin"
	RoleAuditor = "auditor"
	RoleMember  = "member"
)

type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"-"`
}

// PublicUser is the externally visible projection of a User. It carries no
// password hash; every boundary that echoes a user must go through it.
type PublicUser struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Public returns the sanitized view of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
