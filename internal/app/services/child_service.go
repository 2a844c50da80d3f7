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

// ChildService handles child profile management.
type ChildService struct {
	childRepo *repositories.ChildRepository
	userRepo  *repositories.UserRepository
}

// NewChildService creates a new child service
func NewChildService(childRepo *repositories.ChildRepository, userRepo *repositories.UserRepository) *ChildService {
	return &ChildService{
		childRepo: childRepo,
		userRepo:  userRepo,
	}
}

// Create enrolls a new child.
func (s *ChildService) Create(ctx context.Context, req *dto.CreateChildRequest) (*models.Child, error) {
	dob, ok := validation.ParseDateOfBirth(req.DateOfBirth, time.Now())
	if !ok {
		return nil, fmt.Errorf("%w: dateOfBirth must be a past YYYY-MM-DD date", apperrors.ErrValidationFailed)
	}

	if req.ParentID != nil {
		if err := s.checkParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	child := &models.Child{
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		DateOfBirth:            dob,
		IsKindergartenEnrolled: req.IsKindergartenEnrolled,
		ParentID:               req.ParentID,
		Notes:                  req.Notes,
		IsActive:               true,
	}

	if err := s.childRepo.Create(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// GetByID retrieves a child profile.
func (s *ChildService) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.childRepo.GetByID(ctx, id)
}

// List retrieves a page of child profiles with the total count.
func (s *ChildService) List(ctx context.Context, page, pageSize int, activeOnly bool) ([]*models.Child, int, error) {
	return s.childRepo.List(ctx, page, pageSize, activeOnly)
}

// ListByParent retrieves the children linked to a parent account.
func (s *ChildService) ListByParent(ctx context.Context, parentID int64) ([]*models.Child, error) {
	return s.childRepo.ListByParent(ctx, parentID)
}

// Update updates a child profile.
func (s *ChildService) Update(ctx context.Context, id int64, req *dto.UpdateChildRequest) (*models.Child, error) {
	child, err := s.childRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, ok := validation.ParseDateOfBirth(req.DateOfBirth, time.Now())
	if !ok {
		return nil, fmt.Errorf("%w: dateOfBirth must be a past YYYY-MM-DD date", apperrors.ErrValidationFailed)
	}

	if req.ParentID != nil {
		if err := s.checkParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	child.FirstName = strings.TrimSpace(req.FirstName)
	child.LastName = strings.TrimSpace(req.LastName)
	child.DateOfBirth = dob
	child.IsKindergartenEnrolled = req.IsKindergartenEnrolled
	child.ParentID = req.ParentID
	child.Notes = req.Notes
	if req.IsActive != nil {
		child.IsActive = *req.IsActive
	}

	if err := s.childRepo.Update(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

// Deactivate soft-deletes a child profile. Attendance history is kept.
func (s *ChildService) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid child ID", apperrors.ErrValidationFailed)
	}
	return s.childRepo.Deactivate(ctx, id)
}

func (s *ChildService) checkParent(ctx context.Context, parentID int64) error {
	parent, err := s.userRepo.GetByID(ctx, parentID)
	if err != nil {
		return fmt.Errorf("%w: parent account not found", apperrors.ErrValidationFailed)
	}
	if parent.RoleType != models.RoleParent {
		return fmt.Errorf("%w: account %d is not a parent account", apperrors.ErrValidationFailed, parentID)
	}
	return nil
}
