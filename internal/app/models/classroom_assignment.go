package models

import "time"

// ClassroomAssignment is one row of the append-only assignment log based on
// the 'classroom_assignments' table. "Active" means RemovedAt is null; at
// most one active row may exist per child, which a partial unique index
// enforces alongside the transactional close-then-open sequence.
type ClassroomAssignment struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	ChildID     int64      `json:"childId" db:"child_id" example:"3"`
	ClassroomID int64      `json:"classroomId" db:"classroom_id" example:"2"`
	AssignedAt  time.Time  `json:"assignedAt" db:"assigned_at"`
	RemovedAt   *time.Time `json:"removedAt,omitempty" db:"removed_at"`

	// Relations (populated when needed)
	Child     *Child     `json:"child,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}

// Active reports whether this assignment row is the child's current one.
func (a *ClassroomAssignment) Active() bool {
	return a.RemovedAt == nil
}
