package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/repositories"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
	"github.com/melisdmr/brightnest/internal/pkg/validation"
)

// ClassroomService handles classroom management and roster reads.
type ClassroomService struct {
	classroomRepo  *repositories.ClassroomRepository
	assignmentRepo *repositories.AssignmentRepository
	checkInRepo    *repositories.CheckInRepository
}

// NewClassroomService creates a new classroom service
func NewClassroomService(
	classroomRepo *repositories.ClassroomRepository,
	assignmentRepo *repositories.AssignmentRepository,
	checkInRepo *repositories.CheckInRepository,
) *ClassroomService {
	return &ClassroomService{
		classroomRepo:  classroomRepo,
		assignmentRepo: assignmentRepo,
		checkInRepo:    checkInRepo,
	}
}

// Create opens a new classroom.
func (s *ClassroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest) (*models.Classroom, error) {
	if !validation.ValidCapacity(req.Capacity) {
		return nil, fmt.Errorf("%w: capacity must be between 1 and 60", apperrors.ErrValidationFailed)
	}

	room := &models.Classroom{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		AgeGroup: req.AgeGroup,
		IsActive: true,
	}

	if err := s.classroomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetByID retrieves a classroom.
func (s *ClassroomService) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}
	return s.classroomRepo.GetByID(ctx, id)
}

// List retrieves classrooms, optionally including deactivated ones.
func (s *ClassroomService) List(ctx context.Context, includeInactive bool) ([]*models.Classroom, error) {
	if includeInactive {
		return s.classroomRepo.ListAll(ctx)
	}
	return s.classroomRepo.ListActive(ctx)
}

// Update updates a classroom's details.
func (s *ClassroomService) Update(ctx context.Context, id int64, req *dto.UpdateClassroomRequest) (*models.Classroom, error) {
	if !validation.ValidCapacity(req.Capacity) {
		return nil, fmt.Errorf("%w: capacity must be between 1 and 60", apperrors.ErrValidationFailed)
	}

	room, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = strings.TrimSpace(req.Name)
	room.Capacity = req.Capacity
	room.AgeGroup = req.AgeGroup
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.classroomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Deactivate closes a classroom. A classroom with assigned children cannot
// be closed until they are moved elsewhere.
func (s *ClassroomService) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid classroom ID", apperrors.ErrValidationFailed)
	}

	hasChildren, err := s.classroomRepo.HasActiveAssignments(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperrors.ErrClassroomHasChildren
	}

	return s.classroomRepo.Deactivate(ctx, id)
}

// Roster returns the classroom's assigned children with their live presence
// state.
func (s *ClassroomService) Roster(ctx context.Context, classroomID int64) (*dto.ClassroomRosterResponse, error) {
	room, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	open, err := s.checkInRepo.ListOpenByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	checkedIn := make(map[int64]time.Time, len(open))
	for _, rec := range open {
		checkedIn[rec.ChildID] = rec.CheckInTime
	}

	now := time.Now()
	roster := make([]dto.RosterEntry, 0, len(assignments))
	for _, a := range assignments {
		entry := dto.RosterEntry{
			Child:      dto.FromChild(a.Child, now),
			AssignedAt: a.AssignedAt,
		}
		if at, ok := checkedIn[a.ChildID]; ok {
			entry.CheckedIn = true
			t := at
			entry.CheckInTime = &t
		}
		roster = append(roster, entry)
	}

	return &dto.ClassroomRosterResponse{
		Classroom: dto.FromClassroom(room),
		Roster:    roster,
	}, nil
}
