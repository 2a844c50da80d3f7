package services

import (
	"context"
	"fmt"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
)

// OccupancyService runs the mutation side of the occupancy engine: child
// check-in/check-out, classroom assignment and staff sign-in/sign-out.
//
// Each operation validates its subjects, then delegates to a store whose
// mutation executes as one atomic read-then-write transaction. Exclusivity
// failures (already checked in, already signed in) come back as conflict
// errors with no state change; missing active states (checking out a child
// who is not in) come back as precondition failures.
type OccupancyService struct {
	children    ChildStore
	classrooms  ClassroomStore
	users       UserStore
	assignments AssignmentStore
	checkIns    CheckInStore
	attendance  StaffAttendanceStore

	// now is swappable in tests.
	now func() time.Time
}

// NewOccupancyService creates a new occupancy service
func NewOccupancyService(
	children ChildStore,
	classrooms ClassroomStore,
	users UserStore,
	assignments AssignmentStore,
	checkIns CheckInStore,
	attendance StaffAttendanceStore,
) *OccupancyService {
	return &OccupancyService{
		children:    children,
		classrooms:  classrooms,
		users:       users,
		assignments: assignments,
		checkIns:    checkIns,
		attendance:  attendance,
		now:         time.Now,
	}
}

func (s *OccupancyService) activeChild(ctx context.Context, childID int64) (*models.Child, error) {
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}
	if !child.IsActive {
		return nil, apperrors.ErrChildInactive
	}
	return child, nil
}

func (s *OccupancyService) activeClassroom(ctx context.Context, classroomID int64) (*models.Classroom, error) {
	room, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, apperrors.ErrClassroomInactive
	}
	return room, nil
}

// CheckIn opens a check-in record for a child in a classroom.
func (s *OccupancyService) CheckIn(ctx context.Context, childID, classroomID int64) (*models.CheckInRecord, error) {
	if _, err := s.activeChild(ctx, childID); err != nil {
		return nil, err
	}
	if _, err := s.activeClassroom(ctx, classroomID); err != nil {
		return nil, err
	}

	rec, err := s.checkIns.CheckIn(ctx, childID, classroomID, s.now())
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CheckOut closes a child's open check-in record and returns it with the
// derived total hours.
func (s *OccupancyService) CheckOut(ctx context.Context, childID int64) (*models.CheckInRecord, error) {
	if _, err := s.children.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	rec, err := s.checkIns.CheckOut(ctx, childID, s.now())
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// AssignChild moves a child to a classroom, closing any previous active
// assignment in the same transaction. Assigning to the current room returns
// the existing assignment unchanged.
func (s *OccupancyService) AssignChild(ctx context.Context, childID, classroomID int64) (*models.ClassroomAssignment, error) {
	if _, err := s.activeChild(ctx, childID); err != nil {
		return nil, err
	}
	if _, err := s.activeClassroom(ctx, classroomID); err != nil {
		return nil, err
	}

	a, err := s.assignments.Assign(ctx, childID, classroomID, s.now())
	if err != nil {
		return nil, err
	}
	return a, nil
}

// RemoveChild closes a child's active classroom assignment.
func (s *OccupancyService) RemoveChild(ctx context.Context, childID int64) (*models.ClassroomAssignment, error) {
	if _, err := s.children.GetByID(ctx, childID); err != nil {
		return nil, err
	}

	a, err := s.assignments.Remove(ctx, childID, s.now())
	if err != nil {
		return nil, err
	}
	return a, nil
}

// StaffSignIn opens today's attendance record for a staff member. Only
// staff and director accounts can hold attendance.
func (s *OccupancyService) StaffSignIn(ctx context.Context, staffID int64) (*models.StaffAttendance, error) {
	if err := s.checkStaffAccount(ctx, staffID); err != nil {
		return nil, err
	}

	rec, err := s.attendance.SignIn(ctx, staffID, s.now())
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// StaffSignOut closes today's open attendance record for a staff member.
func (s *OccupancyService) StaffSignOut(ctx context.Context, staffID int64) (*models.StaffAttendance, error) {
	if err := s.checkStaffAccount(ctx, staffID); err != nil {
		return nil, err
	}

	rec, err := s.attendance.SignOut(ctx, staffID, s.now())
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// StaffPresence lists the staff attendance records for a day.
func (s *OccupancyService) StaffPresence(ctx context.Context, day time.Time) ([]*models.StaffAttendance, error) {
	return s.attendance.ListForDate(ctx, day)
}

func (s *OccupancyService) checkStaffAccount(ctx context.Context, staffID int64) error {
	user, err := s.users.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return apperrors.ErrAccountDisabled
	}
	if user.RoleType != models.RoleStaff && user.RoleType != models.RoleDirector {
		return fmt.Errorf("%w: account %d is not a staff account", apperrors.ErrPermissionDenied, staffID)
	}
	return nil
}
