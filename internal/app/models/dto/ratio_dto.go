package dto

import (
	"time"

	"github.com/melisdmr/brightnest/internal/app/ratio"
)

// RatioSnapshotResponse is one classroom's compliance verdict at one
// instant. Snapshots are recomputed from current state on every request and
// never persisted.
type RatioSnapshotResponse struct {
	ClassroomID        int64         `json:"classroomId" example:"2"`
	ClassroomName      string        `json:"classroomName" example:"Sunflower Room"`
	Capacity           int           `json:"capacity" example:"16"`
	StaffCount         int           `json:"staffCount" example:"2"`
	ChildrenCount      int           `json:"childrenCount" example:"11"`
	EffectiveRatio     int           `json:"effectiveRatio" example:"6"`
	RatioGroups        []ratio.Group `json:"ratioGroups"`
	MaxAllowedChildren int           `json:"maxAllowedChildren" example:"12"`
	IsOverRatio        bool          `json:"isOverRatio"`
	Status             ratio.Status  `json:"status" example:"good" enums:"good,warning,critical"`
}

// DashboardTotals aggregates presence numbers across the whole center.
type DashboardTotals struct {
	ClassroomCount  int `json:"classroomCount" example:"4"`
	ChildrenPresent int `json:"childrenPresent" example:"37"`
	StaffPresent    int `json:"staffPresent" example:"6"`
	RoomsOverRatio  int `json:"roomsOverRatio" example:"1"`
	RoomsAtCapacity int `json:"roomsAtCapacity" example:"1"`
}

// DashboardResponse is the center-wide ratio snapshot.
type DashboardResponse struct {
	Classrooms  []RatioSnapshotResponse `json:"classrooms"`
	Totals      DashboardTotals         `json:"totals"`
	GeneratedAt time.Time               `json:"generatedAt"`
}
