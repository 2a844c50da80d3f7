package dto

import (
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/app/ratio"
)

// DateOnly is the wire format for date-of-birth fields.
const DateOnly = "2006-01-02"

// CreateChildRequest represents a child enrollment request
type CreateChildRequest struct {
	FirstName              string `json:"firstName" binding:"required,min=2,max=100" example:"Mia"`
	LastName               string `json:"lastName" binding:"required,min=2,max=100" example:"Torres"`
	DateOfBirth            string `json:"dateOfBirth" binding:"required" example:"2022-06-15"`
	IsKindergartenEnrolled bool   `json:"isKindergartenEnrolled"`
	ParentID               *int64 `json:"parentId,omitempty" example:"5"`
	Notes                  string `json:"notes,omitempty"`
}

// UpdateChildRequest represents a child profile update request
type UpdateChildRequest struct {
	FirstName              string `json:"firstName" binding:"required,min=2,max=100"`
	LastName               string `json:"lastName" binding:"required,min=2,max=100"`
	DateOfBirth            string `json:"dateOfBirth" binding:"required" example:"2022-06-15"`
	IsKindergartenEnrolled bool   `json:"isKindergartenEnrolled"`
	ParentID               *int64 `json:"parentId,omitempty"`
	Notes                  string `json:"notes,omitempty"`
	IsActive               *bool  `json:"isActive,omitempty"`
}

// ChildResponse represents a child profile in API responses. AgeMonths and
// Band are derived from the date of birth at response time, never stored.
type ChildResponse struct {
	ID                     int64  `json:"id" example:"1"`
	FirstName              string `json:"firstName" example:"Mia"`
	LastName               string `json:"lastName" example:"Torres"`
	DateOfBirth            string `json:"dateOfBirth" example:"2022-06-15"`
	IsKindergartenEnrolled bool   `json:"isKindergartenEnrolled"`
	AgeMonths              int    `json:"ageMonths" example:"26"`
	Band                   string `json:"band" example:"toddler"`
	ParentID               *int64 `json:"parentId,omitempty"`
	Notes                  string `json:"notes,omitempty"`
	IsActive               bool   `json:"isActive"`
}

// FromChild converts a models.Child to a ChildResponse, classifying the
// child as of now.
func FromChild(child *models.Child, now time.Time) ChildResponse {
	if child == nil {
		return ChildResponse{}
	}
	band := ratio.Classify(child.DateOfBirth, child.IsKindergartenEnrolled, now)
	return ChildResponse{
		ID:                     child.ID,
		FirstName:              child.FirstName,
		LastName:               child.LastName,
		DateOfBirth:            child.DateOfBirth.Format(DateOnly),
		IsKindergartenEnrolled: child.IsKindergartenEnrolled,
		AgeMonths:              ratio.AgeInMonths(child.DateOfBirth, now),
		Band:                   string(band.Band),
		ParentID:               child.ParentID,
		Notes:                  child.Notes,
		IsActive:               child.IsActive,
	}
}

// ChildListResponse represents a paginated child listing
type ChildListResponse struct {
	Children   []ChildResponse `json:"children"`
	Pagination PaginationInfo  `json:"pagination"`
}
