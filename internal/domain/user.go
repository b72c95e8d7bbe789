package domain

import "time"

type UserRole string

const (
	RoleRenter   UserRole = "renter"
	RoleProvider UserRole = "provider"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProviderProfile is the public face of a user who lists equipment.
// CompanyName and FullName are both optional; display falls back
// company name -> full name -> a generic label.
type ProviderProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}
