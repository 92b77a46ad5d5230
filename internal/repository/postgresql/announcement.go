package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/announcement"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `id, content, start_date, end_date, created_by, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(&a.ID, &a.Content, &a.StartDate, &a.EndDate, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, content, start_date, end_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + announcementColumns

	created, err := scanAnnouncement(q.QueryRow(ctx, query,
		a.ID, a.Content, a.StartDate, a.EndDate, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	))
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return created, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAnnouncement(q.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}
	return a, nil
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE announcements
		SET content = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE id = $5
	`, a.Content, a.StartDate, a.EndDate, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}

// ListActive implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListActive(ctx context.Context, at time.Time) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY start_date DESC
	`, at)
	if err != nil {
		return nil, fmt.Errorf("failed to list active announcements: %w", err)
	}
	defer rows.Close()

	list := []announcement.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}
	return list, nil
}
