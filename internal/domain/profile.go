package domain

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// Profile is a person known to the salon: a registered client, a staff
// member or an admin. The booking core reads profiles, it never writes them.
type Profile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Profile) IsStaff() bool {
	return p.Role == RoleStaff || p.Role == RoleAdmin
}
