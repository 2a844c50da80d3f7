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
	"github.com/melisdmr/brightnest/internal/pkg/helpers"
)

// CheckInRepository maintains the append-only check-in log. A child has at
// most one open record at a time; the transactional read-then-write plus
// the partial unique index uq_check_in_records_open_child enforce it.
type CheckInRepository struct {
	db *db.PostgresDB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(database *db.PostgresDB) *CheckInRepository {
	return &CheckInRepository{db: database}
}

// CheckIn opens a check-in record for a child. Fails with
// apperrors.ErrAlreadyCheckedIn if the child already has an open record;
// state is untouched in that case.
func (r *CheckInRepository) CheckIn(ctx context.Context, childID, classroomID int64, now time.Time) (*models.CheckInRecord, error) {
	var result *models.CheckInRecord

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		open, err := r.openByChild(ctx, tx, childID)
		if err != nil {
			return err
		}
		if open != nil {
			return apperrors.ErrAlreadyCheckedIn
		}

		rec := &models.CheckInRecord{
			ChildID:     childID,
			ClassroomID: classroomID,
			CheckInTime: now,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO check_in_records (child_id, classroom_id, check_in_time)
			VALUES ($1, $2, $3)
			RETURNING id`,
			childID, classroomID, now).Scan(&rec.ID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "uq_check_in_records_open_child") {
				return apperrors.ErrAlreadyCheckedIn
			}
			return fmt.Errorf("error inserting check-in record: %w", err)
		}

		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckOut closes a child's open check-in record, deriving total hours from
// the open record's check-in time. Fails with apperrors.ErrNotCheckedIn if
// no record is open.
func (r *CheckInRepository) CheckOut(ctx context.Context, childID int64, now time.Time) (*models.CheckInRecord, error) {
	var result *models.CheckInRecord

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		open, err := r.openByChild(ctx, tx, childID)
		if err != nil {
			return err
		}
		if open == nil {
			return apperrors.ErrNotCheckedIn
		}

		hours := helpers.HoursBetween(open.CheckInTime, now)
		cmdTag, err := tx.Exec(ctx, `
			UPDATE check_in_records
			SET check_out_time = $1, total_hours = $2
			WHERE id = $3 AND check_out_time IS NULL`,
			now, hours, open.ID)
		if err != nil {
			return fmt.Errorf("error closing check-in record: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotCheckedIn
		}

		open.CheckOutTime = &now
		open.TotalHours = &hours
		result = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// OpenByChild returns the child's open check-in record, or nil if none.
func (r *CheckInRepository) OpenByChild(ctx context.Context, childID int64) (*models.CheckInRecord, error) {
	return r.openByChild(ctx, r.db.Pool, childID)
}

func (r *CheckInRepository) openByChild(ctx context.Context, q db.Querier, childID int64) (*models.CheckInRecord, error) {
	query := `
		SELECT id, child_id, classroom_id, check_in_time, check_out_time, total_hours
		FROM check_in_records
		WHERE child_id = $1 AND check_out_time IS NULL
	`

	var rec models.CheckInRecord
	err := q.QueryRow(ctx, query, childID).Scan(
		&rec.ID, &rec.ChildID, &rec.ClassroomID,
		&rec.CheckInTime, &rec.CheckOutTime, &rec.TotalHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving open check-in record: %w", err)
	}
	return &rec, nil
}

// ListOpenByClassroom returns the open check-in records for a classroom
// with each child's profile attached, which is what ratio evaluation needs:
// the classifier derives the band from date of birth at read time.
func (r *CheckInRepository) ListOpenByClassroom(ctx context.Context, classroomID int64) ([]*models.CheckInRecord, error) {
	query := `
		SELECT r.id, r.child_id, r.classroom_id, r.check_in_time, r.check_out_time, r.total_hours,
			c.id, c.first_name, c.last_name, c.date_of_birth, c.is_kindergarten_enrolled,
			c.parent_id, c.notes, c.is_active, c.created_at
		FROM check_in_records r
		JOIN children c ON c.id = r.child_id
		WHERE r.classroom_id = $1 AND r.check_out_time IS NULL
		ORDER BY r.check_in_time
	`

	rows, err := r.db.Pool.Query(ctx, query, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.CheckInRecord
	for rows.Next() {
		var rec models.CheckInRecord
		var child models.Child
		if err := rows.Scan(
			&rec.ID, &rec.ChildID, &rec.ClassroomID,
			&rec.CheckInTime, &rec.CheckOutTime, &rec.TotalHours,
			&child.ID, &child.FirstName, &child.LastName, &child.DateOfBirth,
			&child.IsKindergartenEnrolled, &child.ParentID, &child.Notes,
			&child.IsActive, &child.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Child = &child
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountOpen returns the number of children currently checked in across the
// whole center.
func (r *CheckInRepository) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM check_in_records WHERE check_out_time IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting open check-ins: %w", err)
	}
	return count, nil
}
