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

// StaffAttendanceRepository maintains the staff sign-in log. The open-record
// invariant is scoped per staff member per calendar day; the partial unique
// index uq_staff_attendance_open_day backs the transactional sequence.
type StaffAttendanceRepository struct {
	db *db.PostgresDB
}

// NewStaffAttendanceRepository creates a new staff attendance repository
func NewStaffAttendanceRepository(database *db.PostgresDB) *StaffAttendanceRepository {
	return &StaffAttendanceRepository{db: database}
}

// SignIn opens an attendance record for a staff member today. Fails with
// apperrors.ErrAlreadySignedIn if one is already open.
func (r *StaffAttendanceRepository) SignIn(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error) {
	var result *models.StaffAttendance
	day := helpers.StartOfDay(now)

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		open, err := r.openByStaff(ctx, tx, staffID, day)
		if err != nil {
			return err
		}
		if open != nil {
			return apperrors.ErrAlreadySignedIn
		}

		rec := &models.StaffAttendance{
			StaffID:        staffID,
			AttendanceDate: day,
			SignInTime:     now,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO staff_attendance (staff_id, attendance_date, sign_in_time)
			VALUES ($1, $2, $3)
			RETURNING id`,
			staffID, day, now).Scan(&rec.ID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "uq_staff_attendance_open_day") {
				return apperrors.ErrAlreadySignedIn
			}
			return fmt.Errorf("error inserting staff attendance: %w", err)
		}

		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SignOut closes today's open attendance record for a staff member. Fails
// with apperrors.ErrNotSignedIn if none is open.
func (r *StaffAttendanceRepository) SignOut(ctx context.Context, staffID int64, now time.Time) (*models.StaffAttendance, error) {
	var result *models.StaffAttendance
	day := helpers.StartOfDay(now)

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		open, err := r.openByStaff(ctx, tx, staffID, day)
		if err != nil {
			return err
		}
		if open == nil {
			return apperrors.ErrNotSignedIn
		}

		hours := helpers.HoursBetween(open.SignInTime, now)
		cmdTag, err := tx.Exec(ctx, `
			UPDATE staff_attendance
			SET sign_out_time = $1, total_hours = $2
			WHERE id = $3 AND sign_out_time IS NULL`,
			now, hours, open.ID)
		if err != nil {
			return fmt.Errorf("error closing staff attendance: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotSignedIn
		}

		open.SignOutTime = &now
		open.TotalHours = &hours
		result = open
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *StaffAttendanceRepository) openByStaff(ctx context.Context, q db.Querier, staffID int64, day time.Time) (*models.StaffAttendance, error) {
	query := `
		SELECT id, staff_id, attendance_date, sign_in_time, sign_out_time, total_hours
		FROM staff_attendance
		WHERE staff_id = $1 AND attendance_date = $2 AND sign_out_time IS NULL
	`

	var rec models.StaffAttendance
	err := q.QueryRow(ctx, query, staffID, day).Scan(
		&rec.ID, &rec.StaffID, &rec.AttendanceDate,
		&rec.SignInTime, &rec.SignOutTime, &rec.TotalHours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving open staff attendance: %w", err)
	}
	return &rec, nil
}

// CountSignedIn returns how many staff members are currently signed in for
// the given day. The ratio evaluator treats all of them as available to
// every room.
func (r *StaffAttendanceRepository) CountSignedIn(ctx context.Context, day time.Time) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM staff_attendance
		WHERE attendance_date = $1 AND sign_out_time IS NULL`,
		helpers.StartOfDay(day)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting signed-in staff: %w", err)
	}
	return count, nil
}

// ListForDate returns each attendance record for the given day with the
// staff profile attached, newest sign-in first.
func (r *StaffAttendanceRepository) ListForDate(ctx context.Context, day time.Time) ([]*models.StaffAttendance, error) {
	query := `
		SELECT a.id, a.staff_id, a.attendance_date, a.sign_in_time, a.sign_out_time, a.total_hours,
			u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role_type, u.phone, u.is_active, u.created_at
		FROM staff_attendance a
		JOIN users u ON u.id = a.staff_id
		WHERE a.attendance_date = $1
		ORDER BY a.sign_in_time DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, helpers.StartOfDay(day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StaffAttendance
	for rows.Next() {
		var rec models.StaffAttendance
		var staff models.User
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.AttendanceDate,
			&rec.SignInTime, &rec.SignOutTime, &rec.TotalHours,
			&staff.ID, &staff.Email, &staff.PasswordHash, &staff.FirstName,
			&staff.LastName, &staff.RoleType, &staff.Phone, &staff.IsActive,
			&staff.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Staff = &staff
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
