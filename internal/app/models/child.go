package models

import "time"

// Child defines an enrolled child based on the 'children' table.
//
// Age is never stored. A child's regulatory band changes as they age without
// any write occurring, so every evaluation derives the age from DateOfBirth
// at read time.
type Child struct {
	ID                     int64     `json:"id" db:"id" example:"1"`
	FirstName              string    `json:"firstName" db:"first_name" example:"Mia"`
	LastName               string    `json:"lastName" db:"last_name" example:"Torres"`
	DateOfBirth            time.Time `json:"dateOfBirth" db:"date_of_birth" example:"2022-06-15T00:00:00Z"`
	IsKindergartenEnrolled bool      `json:"isKindergartenEnrolled" db:"is_kindergarten_enrolled"`
	ParentID               *int64    `json:"parentId,omitempty" db:"parent_id" example:"5"`
	Notes                  string    `json:"notes,omitempty" db:"notes"`
	IsActive               bool      `json:"isActive" db:"is_active"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Parent *User `json:"parent,omitempty"`
}
