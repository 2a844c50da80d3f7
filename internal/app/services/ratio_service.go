package services

import (
	"context"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/ratio"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
)

// RatioService computes live ratio snapshots. Nothing here is cached or
// persisted: every read classifies the currently checked-in children from
// their dates of birth and recomputes the verdict, so a child aging into
// the next band needs no write to take effect.
//
// Staff availability uses the upstream simplification: every staff member
// signed in anywhere in the center counts as available to every room.
type RatioService struct {
	classrooms ClassroomStore
	checkIns   CheckInStore
	attendance StaffAttendanceStore

	now func() time.Time
}

// NewRatioService creates a new ratio service
func NewRatioService(classrooms ClassroomStore, checkIns CheckInStore, attendance StaffAttendanceStore) *RatioService {
	return &RatioService{
		classrooms: classrooms,
		checkIns:   checkIns,
		attendance: attendance,
		now:        time.Now,
	}
}

// ClassroomSnapshot evaluates one classroom's compliance right now.
func (s *RatioService) ClassroomSnapshot(ctx context.Context, classroomID int64) (*dto.RatioSnapshotResponse, error) {
	room, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, apperrors.ErrClassroomInactive
	}

	now := s.now()
	staffCount, err := s.attendance.CountSignedIn(ctx, now)
	if err != nil {
		return nil, err
	}

	return s.snapshotRoom(ctx, room, staffCount, now)
}

func (s *RatioService) snapshotRoom(ctx context.Context, room *models.Classroom, staffCount int, now time.Time) (*dto.RatioSnapshotResponse, error) {
	records, err := s.checkIns.ListOpenByClassroom(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	bands := make([]ratio.Band, 0, len(records))
	for _, rec := range records {
		if rec.Child == nil {
			// A check-in without its child row cannot be classified;
			// count it as the strictest band rather than dropping it.
			bands = append(bands, ratio.BandInfant)
			continue
		}
		spec := ratio.Classify(rec.Child.DateOfBirth, rec.Child.IsKindergartenEnrolled, now)
		bands = append(bands, spec.Band)
	}

	eval := ratio.Evaluate(staffCount, bands)

	return &dto.RatioSnapshotResponse{
		ClassroomID:        room.ID,
		ClassroomName:      room.Name,
		Capacity:           room.Capacity,
		StaffCount:         eval.StaffCount,
		ChildrenCount:      eval.ChildrenCount,
		EffectiveRatio:     eval.EffectiveRatio,
		RatioGroups:        eval.RatioGroups,
		MaxAllowedChildren: eval.MaxAllowedChildren,
		IsOverRatio:        eval.IsOverRatio,
		Status:             eval.Status,
	}, nil
}
