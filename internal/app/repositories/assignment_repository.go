package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/db"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
	"github.com/melisdmr/brightnest/internal/pkg/dberrors"
)

// AssignmentRepository maintains the append-only classroom assignment log.
// Mutations run inside a transaction: the current active row is read, then
// closed and/or a new one inserted, so two concurrent assigns cannot both
// observe the same starting state and leave two active rows. The partial
// unique index uq_classroom_assignments_active_child backs this up at the
// storage level.
type AssignmentRepository struct {
	db *db.PostgresDB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(database *db.PostgresDB) *AssignmentRepository {
	return &AssignmentRepository{db: database}
}

// Assign moves a child to a classroom. Any existing active assignment is
// closed in the same transaction. Assigning to the room the child is
// already in is a no-op returning the existing row, so repeated requests do
// not churn the audit log.
func (r *AssignmentRepository) Assign(ctx context.Context, childID, classroomID int64, now time.Time) (*models.ClassroomAssignment, error) {
	var result *models.ClassroomAssignment

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		current, err := r.activeByChild(ctx, tx, childID)
		if err != nil {
			return err
		}

		if current != nil {
			if current.ClassroomID == classroomID {
				result = current
				return nil
			}
			if err := r.close(ctx, tx, current.ID, now); err != nil {
				return err
			}
		}

		opened, err := r.insert(ctx, tx, childID, classroomID, now)
		if err != nil {
			return err
		}
		result = opened
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Remove closes a child's active assignment. Fails if the child has none.
func (r *AssignmentRepository) Remove(ctx context.Context, childID int64, now time.Time) (*models.ClassroomAssignment, error) {
	var result *models.ClassroomAssignment

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		current, err := r.activeByChild(ctx, tx, childID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.ErrChildNotAssigned
		}

		if err := r.close(ctx, tx, current.ID, now); err != nil {
			return err
		}
		current.RemovedAt = &now
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ActiveByChild returns the child's active assignment, or nil if none.
func (r *AssignmentRepository) ActiveByChild(ctx context.Context, childID int64) (*models.ClassroomAssignment, error) {
	return r.activeByChild(ctx, r.db.Pool, childID)
}

func (r *AssignmentRepository) activeByChild(ctx context.Context, q db.Querier, childID int64) (*models.ClassroomAssignment, error) {
	query := `
		SELECT id, child_id, classroom_id, assigned_at, removed_at
		FROM classroom_assignments
		WHERE child_id = $1 AND removed_at IS NULL
	`

	var a models.ClassroomAssignment
	err := q.QueryRow(ctx, query, childID).Scan(
		&a.ID, &a.ChildID, &a.ClassroomID, &a.AssignedAt, &a.RemovedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving active assignment: %w", err)
	}
	return &a, nil
}

func (r *AssignmentRepository) close(ctx context.Context, q db.Querier, id int64, now time.Time) error {
	cmdTag, err := q.Exec(ctx,
		`UPDATE classroom_assignments SET removed_at = $1 WHERE id = $2 AND removed_at IS NULL`,
		now, id)
	if err != nil {
		return fmt.Errorf("error closing assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The row was closed between our read and this write.
		return apperrors.NewCustomError(apperrors.ErrConflict, "assignment was modified concurrently")
	}
	return nil
}

func (r *AssignmentRepository) insert(ctx context.Context, q db.Querier, childID, classroomID int64, now time.Time) (*models.ClassroomAssignment, error) {
	a := &models.ClassroomAssignment{
		ChildID:     childID,
		ClassroomID: classroomID,
		AssignedAt:  now,
	}

	err := q.QueryRow(ctx, `
		INSERT INTO classroom_assignments (child_id, classroom_id, assigned_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		childID, classroomID, now).Scan(&a.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_classroom_assignments_active_child") {
			return nil, apperrors.NewCustomError(apperrors.ErrConflict, "child already has an active assignment")
		}
		return nil, fmt.Errorf("error inserting assignment: %w", err)
	}
	return a, nil
}

// ListActiveByClassroom returns the active assignments for a classroom with
// each child's profile attached.
func (r *AssignmentRepository) ListActiveByClassroom(ctx context.Context, classroomID int64) ([]*models.ClassroomAssignment, error) {
	query := `
		SELECT a.id, a.child_id, a.classroom_id, a.assigned_at, a.removed_at,
			c.id, c.first_name, c.last_name, c.date_of_birth, c.is_kindergarten_enrolled,
			c.parent_id, c.notes, c.is_active, c.created_at
		FROM classroom_assignments a
		JOIN children c ON c.id = a.child_id
		WHERE a.classroom_id = $1 AND a.removed_at IS NULL
		ORDER BY c.first_name, c.last_name
	`

	rows, err := r.db.Pool.Query(ctx, query, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.ClassroomAssignment
	for rows.Next() {
		var a models.ClassroomAssignment
		var child models.Child
		if err := rows.Scan(
			&a.ID, &a.ChildID, &a.ClassroomID, &a.AssignedAt, &a.RemovedAt,
			&child.ID, &child.FirstName, &child.LastName, &child.DateOfBirth,
			&child.IsKindergartenEnrolled, &child.ParentID, &child.Notes,
			&child.IsActive, &child.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Child = &child
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
