package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func TestCheckInOpensRecord(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), false)
	room := f.addClassroom("Sunflower", 12)
	svc := newTestOccupancyService(f, testNow)

	rec, err := svc.CheckIn(context.Background(), child.ID, room.ID)
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if rec.ChildID != child.ID || rec.ClassroomID != room.ID {
		t.Errorf("record = %+v, want child %d in room %d", rec, child.ID, room.ID)
	}
	if !rec.Open() {
		t.Error("new record should be open")
	}
	if !rec.CheckInTime.Equal(testNow) {
		t.Errorf("CheckInTime = %v, want %v", rec.CheckInTime, testNow)
	}
}

func TestCheckInRejectsSecondOpenRecord(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), false)
	roomA := f.addClassroom("Sunflower", 12)
	roomB := f.addClassroom("Maple", 12)
	svc := newTestOccupancyService(f, testNow)

	if _, err := svc.CheckIn(context.Background(), child.ID, roomA.ID); err != nil {
		t.Fatalf("first CheckIn() error = %v", err)
	}

	// A second check-in must fail as a conflict even into another room,
	// and must not create a record.
	_, err := svc.CheckIn(context.Background(), child.ID, roomB.ID)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second CheckIn() error = %v, want ErrConflict family", err)
	}
	if count, _ := f.CountOpen(context.Background()); count != 1 {
		t.Errorf("open records = %d after rejected check-in, want 1", count)
	}
}

func TestCheckOutAfterCheckOutFails(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false)
	room := f.addClassroom("Sunflower", 12)
	svc := newTestOccupancyService(f, testNow)

	if _, err := svc.CheckIn(context.Background(), child.ID, room.ID); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if _, err := svc.CheckOut(context.Background(), child.ID); err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}

	_, err := svc.CheckOut(context.Background(), child.ID)
	if !errors.Is(err, apperrors.ErrPreconditionFailed) {
		t.Errorf("repeated CheckOut() error = %v, want ErrPreconditionFailed family", err)
	}
}

func TestCheckOutComputesTotalHours(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false)
	room := f.addClassroom("Sunflower", 12)

	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 10, 15, 15, 0, 0, time.UTC)

	svc := newTestOccupancyService(f, in)
	if _, err := svc.CheckIn(context.Background(), child.ID, room.ID); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	svc.now = func() time.Time { return out }
	rec, err := svc.CheckOut(context.Background(), child.ID)
	if err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}
	if rec.TotalHours == nil || *rec.TotalHours != 7.25 {
		t.Errorf("TotalHours = %v, want 7.25", rec.TotalHours)
	}
}

func TestCheckInRejectsInactiveSubjects(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), false)
	room := f.addClassroom("Sunflower", 12)
	svc := newTestOccupancyService(f, testNow)

	child.IsActive = false
	if _, err := svc.CheckIn(context.Background(), child.ID, room.ID); !errors.Is(err, apperrors.ErrChildInactive) {
		t.Errorf("inactive child CheckIn() error = %v, want ErrChildInactive", err)
	}

	child.IsActive = true
	room.IsActive = false
	if _, err := svc.CheckIn(context.Background(), child.ID, room.ID); !errors.Is(err, apperrors.ErrClassroomInactive) {
		t.Errorf("inactive room CheckIn() error = %v, want ErrClassroomInactive", err)
	}
}

func TestAssignChildMovesBetweenRooms(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false)
	roomA := f.addClassroom("Sunflower", 12)
	roomB := f.addClassroom("Maple", 12)
	svc := newTestOccupancyService(f, testNow)

	first, err := svc.AssignChild(context.Background(), child.ID, roomA.ID)
	if err != nil {
		t.Fatalf("AssignChild() error = %v", err)
	}

	second, err := svc.AssignChild(context.Background(), child.ID, roomB.ID)
	if err != nil {
		t.Fatalf("reassign error = %v", err)
	}

	if first.RemovedAt == nil {
		t.Error("previous assignment should be closed after reassignment")
	}
	if second.ClassroomID != roomB.ID || second.RemovedAt != nil {
		t.Errorf("new assignment = %+v, want active in room %d", second, roomB.ID)
	}

	active, _ := f.ActiveByChild(context.Background(), child.ID)
	if active == nil || active.ID != second.ID {
		t.Errorf("active assignment = %+v, want ID %d", active, second.ID)
	}
}

func TestAssignChildSameRoomIsNoOp(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false)
	room := f.addClassroom("Sunflower", 12)
	svc := newTestOccupancyService(f, testNow)

	first, err := svc.AssignChild(context.Background(), child.ID, room.ID)
	if err != nil {
		t.Fatalf("AssignChild() error = %v", err)
	}
	again, err := svc.AssignChild(context.Background(), child.ID, room.ID)
	if err != nil {
		t.Fatalf("repeated AssignChild() error = %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("repeated assign returned row %d, want existing row %d", again.ID, first.ID)
	}
	if len(f.assignments) != 1 {
		t.Errorf("assignment rows = %d, want 1", len(f.assignments))
	}
}

func TestRemoveChildWithoutAssignmentFails(t *testing.T) {
	f := newFakeStores()
	child := f.addChild(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false)
	svc := newTestOccupancyService(f, testNow)

	_, err := svc.RemoveChild(context.Background(), child.ID)
	if !errors.Is(err, apperrors.ErrPreconditionFailed) {
		t.Errorf("RemoveChild() error = %v, want ErrPreconditionFailed family", err)
	}
}

func TestStaffSignInExclusivityPerDay(t *testing.T) {
	f := newFakeStores()
	staff := f.addUser(models.RoleStaff)
	svc := newTestOccupancyService(f, testNow)

	if _, err := svc.StaffSignIn(context.Background(), staff.ID); err != nil {
		t.Fatalf("StaffSignIn() error = %v", err)
	}
	if _, err := svc.StaffSignIn(context.Background(), staff.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("second StaffSignIn() error = %v, want ErrConflict family", err)
	}

	// After signing out, a new sign-in the same day is allowed again.
	if _, err := svc.StaffSignOut(context.Background(), staff.ID); err != nil {
		t.Fatalf("StaffSignOut() error = %v", err)
	}
	if _, err := svc.StaffSignIn(context.Background(), staff.ID); err != nil {
		t.Errorf("sign-in after sign-out error = %v, want nil", err)
	}
}

func TestStaffSignOutWithoutSignInFails(t *testing.T) {
	f := newFakeStores()
	staff := f.addUser(models.RoleStaff)
	svc := newTestOccupancyService(f, testNow)

	_, err := svc.StaffSignOut(context.Background(), staff.ID)
	if !errors.Is(err, apperrors.ErrPreconditionFailed) {
		t.Errorf("StaffSignOut() error = %v, want ErrPreconditionFailed family", err)
	}
}

func TestStaffSignInRejectsParentAccounts(t *testing.T) {
	f := newFakeStores()
	parent := f.addUser(models.RoleParent)
	svc := newTestOccupancyService(f, testNow)

	_, err := svc.StaffSignIn(context.Background(), parent.ID)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("parent StaffSignIn() error = %v, want ErrPermissionDenied", err)
	}
}
