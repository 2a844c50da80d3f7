package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/app/ratio"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
)

// months returns a date of birth that is exactly n calendar months before
// testNow's date.
func months(n int) time.Time {
	return time.Date(2026, time.Month(3-n), 10, 0, 0, 0, 0, time.UTC)
}

func checkInChildren(t *testing.T, f *fakeStores, roomID int64, dobs ...time.Time) {
	t.Helper()
	occ := newTestOccupancyService(f, testNow)
	for _, dob := range dobs {
		child := f.addChild(dob, false)
		if _, err := occ.CheckIn(context.Background(), child.ID, roomID); err != nil {
			t.Fatalf("CheckIn() error = %v", err)
		}
	}
}

func signInStaff(t *testing.T, f *fakeStores, count int) {
	t.Helper()
	occ := newTestOccupancyService(f, testNow)
	for i := 0; i < count; i++ {
		staff := f.addUser(models.RoleStaff)
		if _, err := occ.StaffSignIn(context.Background(), staff.ID); err != nil {
			t.Fatalf("StaffSignIn() error = %v", err)
		}
	}
}

func TestClassroomSnapshotMixedBands(t *testing.T) {
	f := newFakeStores()
	room := f.addClassroom("Sunflower", 16)
	// Two infants and one toddler: majority infant, effective ratio 4.
	checkInChildren(t, f, room.ID, months(10), months(12), months(24))
	signInStaff(t, f, 2)

	svc := newTestRatioService(f, testNow)
	snap, err := svc.ClassroomSnapshot(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("ClassroomSnapshot() error = %v", err)
	}

	if snap.EffectiveRatio != 4 {
		t.Errorf("EffectiveRatio = %d, want 4", snap.EffectiveRatio)
	}
	if snap.StaffCount != 2 || snap.ChildrenCount != 3 {
		t.Errorf("counts = %d staff / %d children, want 2 / 3", snap.StaffCount, snap.ChildrenCount)
	}
	if snap.MaxAllowedChildren != 8 {
		t.Errorf("MaxAllowedChildren = %d, want 8", snap.MaxAllowedChildren)
	}
	if snap.IsOverRatio || snap.Status != ratio.StatusGood {
		t.Errorf("verdict = over=%v status=%q, want compliant good", snap.IsOverRatio, snap.Status)
	}
}

func TestClassroomSnapshotNoStaffIsCritical(t *testing.T) {
	f := newFakeStores()
	room := f.addClassroom("Sunflower", 16)
	checkInChildren(t, f, room.ID, months(24))

	svc := newTestRatioService(f, testNow)
	snap, err := svc.ClassroomSnapshot(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("ClassroomSnapshot() error = %v", err)
	}
	if snap.MaxAllowedChildren != 0 || !snap.IsOverRatio || snap.Status != ratio.StatusCritical {
		t.Errorf("snapshot = %+v, want max 0, over ratio, critical", snap)
	}
}

func TestClassroomSnapshotEmptyRoom(t *testing.T) {
	f := newFakeStores()
	room := f.addClassroom("Sunflower", 16)
	signInStaff(t, f, 1)

	svc := newTestRatioService(f, testNow)
	snap, err := svc.ClassroomSnapshot(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("ClassroomSnapshot() error = %v", err)
	}
	if snap.ChildrenCount != 0 || snap.EffectiveRatio != 15 || snap.Status != ratio.StatusGood {
		t.Errorf("empty room snapshot = %+v, want 0 children, ratio 15, good", snap)
	}
}

func TestClassroomSnapshotInactiveRoom(t *testing.T) {
	f := newFakeStores()
	room := f.addClassroom("Closed", 16)
	room.IsActive = false

	svc := newTestRatioService(f, testNow)
	if _, err := svc.ClassroomSnapshot(context.Background(), room.ID); !errors.Is(err, apperrors.ErrClassroomInactive) {
		t.Errorf("ClassroomSnapshot() error = %v, want ErrClassroomInactive", err)
	}
}

func TestClassroomSnapshotIsIdempotent(t *testing.T) {
	f := newFakeStores()
	room := f.addClassroom("Sunflower", 16)
	checkInChildren(t, f, room.ID, months(10), months(40))
	signInStaff(t, f, 1)

	svc := newTestRatioService(f, testNow)
	first, err := svc.ClassroomSnapshot(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("ClassroomSnapshot() error = %v", err)
	}
	second, err := svc.ClassroomSnapshot(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("second ClassroomSnapshot() error = %v", err)
	}
	if first.EffectiveRatio != second.EffectiveRatio ||
		first.ChildrenCount != second.ChildrenCount ||
		first.Status != second.Status {
		t.Errorf("repeated snapshots differ: %+v vs %+v", first, second)
	}
}

func TestDashboardSnapshotTotals(t *testing.T) {
	f := newFakeStores()
	roomA := f.addClassroom("Sunflower", 16)
	roomB := f.addClassroom("Maple", 10)

	// roomA holds 7 toddlers with 1 staff signed in: ratio 6, max 6, over.
	toddlers := make([]time.Time, 7)
	for i := range toddlers {
		toddlers[i] = months(24)
	}
	checkInChildren(t, f, roomA.ID, toddlers...)
	// roomB: empty.
	signInStaff(t, f, 1)

	svc := newTestDashboardService(f, testNow)
	resp, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if resp.Totals.ClassroomCount != 2 {
		t.Errorf("ClassroomCount = %d, want 2", resp.Totals.ClassroomCount)
	}
	if resp.Totals.ChildrenPresent != 7 {
		t.Errorf("ChildrenPresent = %d, want 7", resp.Totals.ChildrenPresent)
	}
	if resp.Totals.StaffPresent != 1 {
		t.Errorf("StaffPresent = %d, want 1", resp.Totals.StaffPresent)
	}
	if resp.Totals.RoomsOverRatio != 1 {
		t.Errorf("RoomsOverRatio = %d, want 1", resp.Totals.RoomsOverRatio)
	}
	if len(resp.Classrooms) != 2 {
		t.Fatalf("classroom snapshots = %d, want 2", len(resp.Classrooms))
	}

	for _, snap := range resp.Classrooms {
		switch snap.ClassroomID {
		case roomA.ID:
			if !snap.IsOverRatio || snap.Status != ratio.StatusCritical {
				t.Errorf("room A = %+v, want over ratio critical", snap)
			}
		case roomB.ID:
			if snap.ChildrenCount != 0 || snap.Status != ratio.StatusGood {
				t.Errorf("room B = %+v, want empty good", snap)
			}
		default:
			t.Errorf("unexpected classroom %d in dashboard", snap.ClassroomID)
		}
	}
	if !resp.GeneratedAt.Equal(testNow) {
		t.Errorf("GeneratedAt = %v, want %v", resp.GeneratedAt, testNow)
	}
}

func TestDashboardSkipsInactiveRooms(t *testing.T) {
	f := newFakeStores()
	f.addClassroom("Sunflower", 16)
	closed := f.addClassroom("Closed", 16)
	closed.IsActive = false

	svc := newTestDashboardService(f, testNow)
	resp, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if resp.Totals.ClassroomCount != 1 || len(resp.Classrooms) != 1 {
		t.Errorf("dashboard covered %d rooms, want 1 active room only", len(resp.Classrooms))
	}
}
