package services

import (
	"context"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
	"github.com/melisdmr/brightnest/internal/pkg/helpers"
)

// fakeStores is an in-memory implementation of the store interfaces with
// the same exclusivity semantics as the SQL repositories, so service rules
// can be exercised without a database.
type fakeStores struct {
	children   map[int64]*models.Child
	classrooms map[int64]*models.Classroom
	users      map[int64]*models.User

	assignments []*models.ClassroomAssignment
	checkIns    []*models.CheckInRecord
	attendance  []*models.StaffAttendance

	nextID int64
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		children:   make(map[int64]*models.Child),
		classrooms: make(map[int64]*models.Classroom),
		users:      make(map[int64]*models.User),
	}
}

func (f *fakeStores) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStores) addChild(dob time.Time, kindergarten bool) *models.Child {
	c := &models.Child{
		ID:                     f.id(),
		FirstName:              "Test",
		LastName:               "Child",
		DateOfBirth:            dob,
		IsKindergartenEnrolled: kindergarten,
		IsActive:               true,
	}
	f.children[c.ID] = c
	return c
}

func (f *fakeStores) addClassroom(name string, capacity int) *models.Classroom {
	r := &models.Classroom{
		ID:       f.id(),
		Name:     name,
		Capacity: capacity,
		AgeGroup: "mixed",
		IsActive: true,
	}
	f.classrooms[r.ID] = r
	return r
}

func (f *fakeStores) addUser(role models.RoleType) *models.User {
	u := &models.User{
		ID:       f.id(),
		Email:    "user@example.com",
		RoleType: role,
		IsActive: true,
	}
	f.users[u.ID] = u
	return u
}

// ChildStore

func (f *fakeStores) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	if c, ok := f.children[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrChildNotFound
}

// childLookup, classroomLookup and userLookup split the single fakeStores
// state across the three GetByID-shaped interfaces.
type childLookup struct{ f *fakeStores }

func (l childLookup) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	return l.f.GetByID(ctx, id)
}

type classroomLookup struct{ f *fakeStores }

func (l classroomLookup) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	if r, ok := l.f.classrooms[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrClassroomNotFound
}

func (l classroomLookup) ListActive(ctx context.Context) ([]*models.Classroom, error) {
	var rooms []*models.Classroom
	for _, r := range l.f.classrooms {
		if r.IsActive {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

type userLookup struct{ f *fakeStores }

func (l userLookup) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := l.f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

// AssignmentStore

func (f *fakeStores) Assign(ctx context.Context, childID, classroomID int64, now time.Time) (*models.ClassroomAssignment, error) {
	current, _ := f.ActiveByChild(ctx, childID)
	if current != nil {
		if current.ClassroomID == classroomID {
			return current, nil
		}
		t := now
		current.RemovedAt = &t
	}
	a := &models.ClassroomAssignment{
		ID:          f.id(),
		ChildID:     childID,
		ClassroomID: classroomID,
		AssignedAt:  now,
	}
	f.assignments = append(f.assignments, a)
	return a, nil
}

func (f *fakeStores) Remove(ctx context.Context, childID int64, now time.Time) (*models.ClassroomAssignment, error) {
	current, _ := f.ActiveByChild(ctx, childID)
	if current == nil {
		return nil, apperrors.ErrChildNotAssigned
	}
	t := now
	current.RemovedAt = &t
	return current, nil
}

func (f *fakeStores) ActiveByChild(ctx context.Context, childID int64) (*models.ClassroomAssignment, error) {
	for _, a := range f.assignments {
		if a.ChildID == childID && a.RemovedAt == nil {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeStores) ListActiveByClassroom(ctx context.Context, classroomID int64) ([]*models.ClassroomAssignment, error) {
	var out []*models.ClassroomAssignment
	for _, a := range f.assignments {
		if a.ClassroomID == classroomID && a.RemovedAt == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

// CheckInStore

func (f *fakeStores) CheckIn(ctx context.Context, childID, classroomID int64, now time.Time) (*models.CheckInRecord, error) {
	if open, _ := f.OpenByChild(ctx, childID); open != nil {
		return nil, apperrors.ErrAlreadyCheckedIn
	}
	rec := &models.CheckInRecord{
		ID:          f.id(),
		ChildID:     childID,
		ClassroomID: classroomID,
		CheckInTime: now,
		Child:       f.children[childID],
	}
	f.checkIns = append(f.checkIns, rec)
	return rec, nil
}

func (f *fakeStores) CheckOut(ctx context.Context, childID int64, now time.Time) (*models.CheckInRecord, error) {
	open, _ := f.OpenByChild(ctx, childID)
	if open == nil {
		return nil, apperrors.ErrNotCheckedIn
	}
	t := now
	open.CheckOutTime = &t
	hours := helpers.HoursBetween(open.CheckInTime, now)
	open.TotalHours = &hours
	return open, nil
}

func (f *fakeStores) OpenByChild(ctx context.Context, childID int64) (*models.CheckInRecord, error) {
	for _, rec := range f.checkIns {
		if rec.ChildID == childID && rec.CheckOutTime == nil {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStores) ListOpenByClassroom(ctx context.Context, classroomID int64) ([]*models.CheckInRecord, error) {
	var out []*models.CheckInRecord
	for _, rec := range f.checkIns {
		if rec.ClassroomID == classroomID && rec.CheckOutTime == nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStores) CountOpen(ctx context.Context) (int, error) {
	count := 0
	for _, rec := range f.checkIns {
		if rec.CheckOutTime == nil {
			count++
		}
	}
	return count, nil
}

// StaffAttendanceStore

func (f *fakeStores) SignIn(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error) {
	day := helpers.StartOfDay(now)
	if open := f.openAttendance(staffID, day); open != nil {
		return nil, apperrors.ErrAlreadySignedIn
	}
	rec := &models.StaffAttendance{
		ID:             f.id(),
		StaffID:        staffID,
		AttendanceDate: day,
		SignInTime:     now,
	}
	f.attendance = append(f.attendance, rec)
	return rec, nil
}

func (f *fakeStores) SignOut(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error) {
	open := f.openAttendance(staffID, helpers.StartOfDay(now))
	if open == nil {
		return nil, apperrors.ErrNotSignedIn
	}
	t := now
	open.SignOutTime = &t
	hours := helpers.HoursBetween(open.SignInTime, now)
	open.TotalHours = &hours
	return open, nil
}

func (f *fakeStores) openAttendance(staffID int64, day time.Time) *models.StaffAttendance {
	for _, rec := range f.attendance {
		if rec.StaffID == staffID && rec.AttendanceDate.Equal(day) && rec.SignOutTime == nil {
			return rec
		}
	}
	return nil
}

func (f *fakeStores) CountSignedIn(ctx context.Context, day time.Time) (int, error) {
	scoped := helpers.StartOfDay(day)
	count := 0
	for _, rec := range f.attendance {
		if rec.AttendanceDate.Equal(scoped) && rec.SignOutTime == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeStores) ListForDate(ctx context.Context, day time.Time) ([]*models.StaffAttendance, error) {
	scoped := helpers.StartOfDay(day)
	var out []*models.StaffAttendance
	for _, rec := range f.attendance {
		if rec.AttendanceDate.Equal(scoped) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// newTestOccupancyService wires an OccupancyService over fakeStores with a
// fixed clock.
func newTestOccupancyService(f *fakeStores, now time.Time) *OccupancyService {
	s := NewOccupancyService(childLookup{f}, classroomLookup{f}, userLookup{f}, f, f, f)
	s.now = func() time.Time { return now }
	return s
}

func newTestRatioService(f *fakeStores, now time.Time) *RatioService {
	s := NewRatioService(classroomLookup{f}, f, f)
	s.now = func() time.Time { return now }
	return s
}

func newTestDashboardService(f *fakeStores, now time.Time) *DashboardService {
	ratios := newTestRatioService(f, now)
	s := NewDashboardService(classroomLookup{f}, f, f, ratios)
	s.now = func() time.Time { return now }
	return s
}
