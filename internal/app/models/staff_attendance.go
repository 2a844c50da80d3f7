package models

import "time"

// StaffAttendance is one row of the staff sign-in log based on the
// 'staff_attendance' table. The open-record invariant is scoped per staff
// member per calendar day rather than globally.
type StaffAttendance struct {
	ID             int64      `json:"id" db:"id" example:"1"`
	StaffID        int64      `json:"staffId" db:"staff_id" example:"7"`
	AttendanceDate time.Time  `json:"attendanceDate" db:"attendance_date" example:"2026-09-01T00:00:00Z"`
	SignInTime     time.Time  `json:"signInTime" db:"sign_in_time"`
	SignOutTime    *time.Time `json:"signOutTime,omitempty" db:"sign_out_time"`
	TotalHours     *float64   `json:"totalHours,omitempty" db:"total_hours" example:"8.5"`

	// Relations (populated when needed)
	Staff *User `json:"staff,omitempty"`
}

// Open reports whether the staff member is still signed in on this record.
func (a *StaffAttendance) Open() bool {
	return a.SignOutTime == nil
}
