package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.status, a.check_in_time,
	a.check_in_latitude, a.check_in_longitude, a.android_id, a.ip_address, a.notes,
	a.created_at, a.updated_at, u.name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status, &att.CheckInTime,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.AndroidID, &att.IPAddress, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt, &att.UserName,
	)
	return att, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	list := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		list = append(list, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return list, nil
}

// CreateMany implements attendance.AttendanceRepository.
// Rows whose (user_id, date) already exists are skipped.
func (a *attendanceRepository) CreateMany(ctx context.Context, records []attendance.Attendance) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	const cols = 6
	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*cols)

	for i, rec := range records {
		base := i * cols
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		valueArgs = append(valueArgs,
			rec.ID,
			rec.UserID,
			rec.Date,
			string(rec.Status),
			rec.CreatedAt,
			rec.UpdatedAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO attendances (id, user_id, date, status, created_at, updated_at)
		VALUES %s
		ON CONFLICT (user_id, date) DO NOTHING
	`, strings.Join(valueStrings, ", "))

	var created int
	err := WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		tag, err := GetQuerier(txCtx, a.db).Exec(txCtx, query, valueArgs...)
		if err != nil {
			return err
		}
		created = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to batch create attendances: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, userID string, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1 AND a.user_id = $2
	`
	att, err := scanAttendance(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// GetByIDAnyUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByIDAnyUser(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`
	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.date ASC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListLeaveRequests implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListLeaveRequests(ctx context.Context, filter attendance.LeaveRequestFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.status = $1"}
	args := []interface{}{string(attendance.StatusLeaveRequested)}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(u.name ILIKE $%d OR u.username ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date ASC, u.name ASC
	`, attendanceColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListCheckedInOn implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListCheckedInOn(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1::date
		  AND a.android_id IS NOT NULL
		  AND btrim(a.android_id) <> ''
		ORDER BY a.check_in_time ASC NULLS LAST
	`
	rows, err := q.Query(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET date = $1, status = $2, check_in_time = $3,
			check_in_latitude = $4, check_in_longitude = $5,
			notes = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`
	tag, err := q.Exec(ctx, query,
		record.Date, string(record.Status), record.CheckInTime,
		record.CheckInLatitude, record.CheckInLongitude,
		record.Notes, record.UpdatedAt,
		record.ID, record.UserID,
	)
	if err != nil {
		if uniqueConstraint(err) == "attendances_user_date_key" {
			return attendance.ErrDuplicateDate
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
