package dto

import (
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
)

// CreateClassroomRequest represents a classroom creation request
type CreateClassroomRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Sunflower Room"`
	Capacity int    `json:"capacity" binding:"required,gt=0" example:"16"`
	AgeGroup string `json:"ageGroup" binding:"required,oneof=infant toddler preschool pre-k kindergarten-plus mixed" example:"toddler"`
}

// UpdateClassroomRequest represents a classroom update request
type UpdateClassroomRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	AgeGroup string `json:"ageGroup" binding:"required,oneof=infant toddler preschool pre-k kindergarten-plus mixed"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// ClassroomResponse represents a classroom in API responses
type ClassroomResponse struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Sunflower Room"`
	Capacity int    `json:"capacity" example:"16"`
	AgeGroup string `json:"ageGroup" example:"toddler"`
	IsActive bool   `json:"isActive"`
}

// FromClassroom converts a models.Classroom to a ClassroomResponse
func FromClassroom(room *models.Classroom) ClassroomResponse {
	if room == nil {
		return ClassroomResponse{}
	}
	return ClassroomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
		AgeGroup: room.AgeGroup,
		IsActive: room.IsActive,
	}
}

// RosterEntry pairs an assigned child with their live presence state.
type RosterEntry struct {
	Child       ChildResponse `json:"child"`
	AssignedAt  time.Time     `json:"assignedAt"`
	CheckedIn   bool          `json:"checkedIn"`
	CheckInTime *time.Time    `json:"checkInTime,omitempty"`
}

// ClassroomRosterResponse lists the classroom's assigned children and who is
// currently present.
type ClassroomRosterResponse struct {
	Classroom ClassroomResponse `json:"classroom"`
	Roster    []RosterEntry     `json:"roster"`
}
