package dto

import (
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
)

// CheckInRequest represents a child check-in request
type CheckInRequest struct {
	ChildID     int64 `json:"childId" binding:"required,gt=0" example:"3"`
	ClassroomID int64 `json:"classroomId" binding:"required,gt=0" example:"2"`
}

// CheckOutRequest represents a child check-out request
type CheckOutRequest struct {
	ChildID int64 `json:"childId" binding:"required,gt=0" example:"3"`
}

// CheckInResponse represents a newly opened check-in record
type CheckInResponse struct {
	CheckInID   int64     `json:"checkInId" example:"41"`
	ChildID     int64     `json:"childId" example:"3"`
	ClassroomID int64     `json:"classroomId" example:"2"`
	CheckInTime time.Time `json:"checkInTime"`
}

// CheckOutResponse represents a closed check-in record
type CheckOutResponse struct {
	CheckInID    int64     `json:"checkInId" example:"41"`
	ChildID      int64     `json:"childId" example:"3"`
	CheckOutTime time.Time `json:"checkOutTime"`
	TotalHours   float64   `json:"totalHours" example:"7.25"`
}

// AssignChildRequest represents a classroom assignment request
type AssignChildRequest struct {
	ChildID int64 `json:"childId" binding:"required,gt=0" example:"3"`
}

// AssignmentResponse represents an active classroom assignment
type AssignmentResponse struct {
	AssignmentID int64     `json:"assignmentId" example:"12"`
	ChildID      int64     `json:"childId" example:"3"`
	ClassroomID  int64     `json:"classroomId" example:"2"`
	AssignedAt   time.Time `json:"assignedAt"`
}

// FromAssignment converts a models.ClassroomAssignment to an AssignmentResponse
func FromAssignment(a *models.ClassroomAssignment) AssignmentResponse {
	if a == nil {
		return AssignmentResponse{}
	}
	return AssignmentResponse{
		AssignmentID: a.ID,
		ChildID:      a.ChildID,
		ClassroomID:  a.ClassroomID,
		AssignedAt:   a.AssignedAt,
	}
}

// StaffSignInResponse represents a newly opened staff attendance record
type StaffSignInResponse struct {
	AttendanceID int64     `json:"attendanceId" example:"9"`
	StaffID      int64     `json:"staffId" example:"7"`
	SignInTime   time.Time `json:"signInTime"`
}

// StaffSignOutResponse represents a closed staff attendance record
type StaffSignOutResponse struct {
	AttendanceID int64     `json:"attendanceId" example:"9"`
	StaffID      int64     `json:"staffId" example:"7"`
	SignOutTime  time.Time `json:"signOutTime"`
	TotalHours   float64   `json:"totalHours" example:"8.5"`
}

// StaffPresenceResponse pairs a staff account with today's attendance state.
type StaffPresenceResponse struct {
	Staff       UserResponse `json:"staff"`
	SignedIn    bool         `json:"signedIn"`
	SignInTime  *time.Time   `json:"signInTime,omitempty"`
	SignOutTime *time.Time   `json:"signOutTime,omitempty"`
	TotalHours  *float64     `json:"totalHours,omitempty"`
}
