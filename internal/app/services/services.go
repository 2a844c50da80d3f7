package services

import (
	"context"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
)

// Services defined in this package:
// - AuthService: registration, login and token refresh
// - ChildService: child profile management
// - ClassroomService: classroom management and rosters
// - OccupancyService: check-in/check-out, assignment and staff attendance mutations
// - RatioService: live classroom ratio snapshots
// - DashboardService: center-wide ratio snapshot

// The occupancy and ratio services depend on the narrow store interfaces
// below rather than concrete repositories, so their rules can be tested
// against in-memory fakes without a live database.

// ChildStore reads child profiles.
type ChildStore interface {
	GetByID(ctx context.Context, id int64) (*models.Child, error)
}

// ClassroomStore reads classrooms.
type ClassroomStore interface {
	GetByID(ctx context.Context, id int64) (*models.Classroom, error)
	ListActive(ctx context.Context) ([]*models.Classroom, error)
}

// UserStore reads user accounts.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AssignmentStore mutates and reads the classroom assignment log.
type AssignmentStore interface {
	Assign(ctx context.Context, childID, classroomID int64, now time.Time) (*models.ClassroomAssignment, error)
	Remove(ctx context.Context, childID int64, now time.Time) (*models.ClassroomAssignment, error)
	ActiveByChild(ctx context.Context, childID int64) (*models.ClassroomAssignment, error)
	ListActiveByClassroom(ctx context.Context, classroomID int64) ([]*models.ClassroomAssignment, error)
}

// CheckInStore mutates and reads the check-in log.
type CheckInStore interface {
	CheckIn(ctx context.Context, childID, classroomID int64, now time.Time) (*models.CheckInRecord, error)
	CheckOut(ctx context.Context, childID int64, now time.Time) (*models.CheckInRecord, error)
	OpenByChild(ctx context.Context, childID int64) (*models.CheckInRecord, error)
	ListOpenByClassroom(ctx context.Context, classroomID int64) ([]*models.CheckInRecord, error)
	CountOpen(ctx context.Context) (int, error)
}

// StaffAttendanceStore mutates and reads the staff attendance log.
type StaffAttendanceStore interface {
	SignIn(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error)
	SignOut(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error)
	CountSignedIn(ctx context.Context, day time.Time) (int, error)
	ListForDate(ctx context.Context, day time.Time) ([]*models.StaffAttendance, error)
}
