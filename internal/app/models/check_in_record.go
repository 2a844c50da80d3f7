package models

import "time"

// CheckInRecord is one row of the append-only check-in log based on the
// 'check_in_records' table. An open record (CheckOutTime null) means the
// child is currently in the building; at most one open record may exist
// per child.
type CheckInRecord struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	ChildID      int64      `json:"childId" db:"child_id" example:"3"`
	ClassroomID  int64      `json:"classroomId" db:"classroom_id" example:"2"`
	CheckInTime  time.Time  `json:"checkInTime" db:"check_in_time"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty" db:"check_out_time"`
	// TotalHours is derived at check-out, rounded to 2 decimal places.
	TotalHours *float64 `json:"totalHours,omitempty" db:"total_hours" example:"7.25"`

	// Relations (populated when needed)
	Child     *Child     `json:"child,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}

// Open reports whether the child is still checked in on this record.
func (r *CheckInRecord) Open() bool {
	return r.CheckOutTime == nil
}
