package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
	"github.com/melisdmr/brightnest/internal/pkg/dberrors"
)

// ClassroomRepository handles database operations for classrooms
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// Create inserts a new classroom and sets its ID.
func (r *ClassroomRepository) Create(ctx context.Context, room *models.Classroom) error {
	query := `
		INSERT INTO classrooms (name, capacity, age_group, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		room.Name, room.Capacity, room.AgeGroup, room.IsActive,
	).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "classrooms_name_key") {
			return apperrors.ErrClassroomAlreadyExists
		}
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// GetByID retrieves a classroom by ID
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := `
		SELECT id, name, capacity, age_group, is_active, created_at
		FROM classrooms
		WHERE id = $1
	`

	var room models.Classroom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.AgeGroup,
		&room.IsActive,
		&room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}

	return &room, nil
}

// ListActive retrieves all active classrooms. Soft-deleted rooms keep their
// history but never appear in live occupancy computation.
func (r *ClassroomRepository) ListActive(ctx context.Context) ([]*models.Classroom, error) {
	return r.list(ctx, `WHERE is_active`)
}

// ListAll retrieves every classroom including inactive ones.
func (r *ClassroomRepository) ListAll(ctx context.Context) ([]*models.Classroom, error) {
	return r.list(ctx, ``)
}

func (r *ClassroomRepository) list(ctx context.Context, where string) ([]*models.Classroom, error) {
	query := `
		SELECT id, name, capacity, age_group, is_active, created_at
		FROM classrooms ` + where + `
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Classroom
	for rows.Next() {
		var room models.Classroom
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.AgeGroup,
			&room.IsActive,
			&room.CreatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update updates a classroom.
func (r *ClassroomRepository) Update(ctx context.Context, room *models.Classroom) error {
	query := `
		UPDATE classrooms
		SET name = $1, capacity = $2, age_group = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		room.Name, room.Capacity, room.AgeGroup, room.IsActive, room.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "classrooms_name_key") {
			return apperrors.ErrClassroomAlreadyExists
		}
		return fmt.Errorf("error updating classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}

// HasActiveAssignments checks whether any child is currently assigned to
// the classroom. Used as a guard before deactivation.
func (r *ClassroomRepository) HasActiveAssignments(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM classroom_assignments
			WHERE classroom_id = $1 AND removed_at IS NULL
		)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking classroom assignments: %w", err)
	}
	return exists, nil
}

// Deactivate soft-deletes a classroom.
func (r *ClassroomRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE classrooms SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}
