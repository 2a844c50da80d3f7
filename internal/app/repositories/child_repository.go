package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
)

const childColumns = `id, first_name, last_name, date_of_birth, is_kindergarten_enrolled, parent_id, notes, is_active, created_at`

// ChildRepository handles database operations for child profiles
type ChildRepository struct {
	db *pgxpool.Pool
}

// NewChildRepository creates a new child repository
func NewChildRepository(db *pgxpool.Pool) *ChildRepository {
	return &ChildRepository{db: db}
}

func scanChild(row pgx.Row) (*models.Child, error) {
	var child models.Child
	err := row.Scan(
		&child.ID,
		&child.FirstName,
		&child.LastName,
		&child.DateOfBirth,
		&child.IsKindergartenEnrolled,
		&child.ParentID,
		&child.Notes,
		&child.IsActive,
		&child.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// Create inserts a new child profile and sets its ID.
func (r *ChildRepository) Create(ctx context.Context, child *models.Child) error {
	query := `
		INSERT INTO children (first_name, last_name, date_of_birth, is_kindergarten_enrolled, parent_id, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		child.FirstName, child.LastName, child.DateOfBirth,
		child.IsKindergartenEnrolled, child.ParentID, child.Notes, child.IsActive,
	).Scan(&child.ID, &child.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating child: %w", err)
	}

	return nil
}

// GetByID retrieves a child by ID
func (r *ChildRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE id = $1`

	child, err := scanChild(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("error retrieving child: %w", err)
	}
	return child, nil
}

// List retrieves a page of child profiles, newest enrollment first, along
// with the total count.
func (r *ChildRepository) List(ctx context.Context, page, pageSize int, activeOnly bool) ([]*models.Child, int, error) {
	where := ``
	if activeOnly {
		where = `WHERE is_active`
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM children `+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting children: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM children %s
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, childColumns, where)

	rows, err := r.db.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return children, total, nil
}

// ListByParent retrieves all children linked to a parent account.
func (r *ChildRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.Child, error) {
	query := `SELECT ` + childColumns + ` FROM children WHERE parent_id = $1 ORDER BY first_name`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return children, nil
}

// Update updates a child profile.
func (r *ChildRepository) Update(ctx context.Context, child *models.Child) error {
	query := `
		UPDATE children
		SET first_name = $1, last_name = $2, date_of_birth = $3,
			is_kindergarten_enrolled = $4, parent_id = $5, notes = $6, is_active = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		child.FirstName, child.LastName, child.DateOfBirth,
		child.IsKindergartenEnrolled, child.ParentID, child.Notes, child.IsActive,
		child.ID)
	if err != nil {
		return fmt.Errorf("error updating child: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}

	return nil
}

// Deactivate soft-deletes a child profile. History rows are kept.
func (r *ChildRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE children SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating child: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}
	return nil
}
