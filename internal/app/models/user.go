package models

import "time"

// User defines an account holder based on the 'users' table. Parents,
// staff and the director all authenticate through the same table; RoleType
// decides what they can reach.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"jordan@brightnest.app"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"firstName" db:"first_name" example:"Jordan"`
	LastName     string    `json:"lastName" db:"last_name" example:"Avery"`
	RoleType     RoleType  `json:"roleType" db:"role_type" example:"STAFF"`
	Phone        string    `json:"phone,omitempty" db:"phone" example:"+15550101"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
