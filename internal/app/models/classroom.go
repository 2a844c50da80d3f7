package models

import "time"

// Classroom defines a physical room based on the 'classrooms' table.
// Inactive rooms are soft-deleted: they keep their history but are excluded
// from live occupancy computation.
type Classroom struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Sunflower Room"`
	Capacity  int       `json:"capacity" db:"capacity" example:"16"`
	AgeGroup  string    `json:"ageGroup" db:"age_group" example:"toddler"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
