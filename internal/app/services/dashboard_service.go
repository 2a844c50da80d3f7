package services

import (
	"context"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/ratio"
)

// DashboardService fans the ratio evaluation out across all active
// classrooms for the center-wide view. It owns no rules of its own.
type DashboardService struct {
	classrooms ClassroomStore
	checkIns   CheckInStore
	attendance StaffAttendanceStore
	ratios     *RatioService

	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(classrooms ClassroomStore, checkIns CheckInStore, attendance StaffAttendanceStore, ratios *RatioService) *DashboardService {
	return &DashboardService{
		classrooms: classrooms,
		checkIns:   checkIns,
		attendance: attendance,
		ratios:     ratios,
		now:        time.Now,
	}
}

// Snapshot evaluates every active classroom and aggregates center totals.
// The result is a point-in-time read of committed state; concurrent
// mutations may land between rooms, which is acceptable for a dashboard.
func (s *DashboardService) Snapshot(ctx context.Context) (*dto.DashboardResponse, error) {
	now := s.now()

	rooms, err := s.classrooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	staffCount, err := s.attendance.CountSignedIn(ctx, now)
	if err != nil {
		return nil, err
	}

	snapshots := make([]dto.RatioSnapshotResponse, 0, len(rooms))
	totals := dto.DashboardTotals{
		ClassroomCount: len(rooms),
		StaffPresent:   staffCount,
	}

	for _, room := range rooms {
		snap, err := s.ratios.snapshotRoom(ctx, room, staffCount, now)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)

		if snap.IsOverRatio {
			totals.RoomsOverRatio++
		}
		if snap.Status == ratio.StatusWarning {
			totals.RoomsAtCapacity++
		}
	}

	// Center-wide presence counts every open check-in, including any child
	// checked into a room that has since been deactivated.
	childrenPresent, err := s.checkIns.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	totals.ChildrenPresent = childrenPresent

	return &dto.DashboardResponse{
		Classrooms:  snapshots,
		Totals:      totals,
		GeneratedAt: now,
	}, nil
}
