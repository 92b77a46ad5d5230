package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/database"
)

type participantRepositoryImpl struct {
	db *database.DB
}

func NewParticipantRepository(db *database.DB) participant.ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

const participantColumns = `
	id, name, username, password_hash, email, phone, role,
	internship_start, internship_end, created_at, updated_at
`

func scanParticipant(row pgx.Row) (participant.Participant, error) {
	var p participant.Participant
	err := row.Scan(
		&p.ID, &p.Name, &p.Username, &p.PasswordHash, &p.Email, &p.Phone, &p.Role,
		&p.InternshipStart, &p.InternshipEnd, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func mapParticipantWriteError(err error) error {
	switch uniqueConstraint(err) {
	case "users_username_key":
		return participant.ErrUsernameExists
	case "users_email_key":
		return participant.ErrEmailExists
	}
	return err
}

// Create implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) Create(ctx context.Context, p participant.Participant) (participant.Participant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, name, username, password_hash, email, phone, role,
			internship_start, internship_end, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + participantColumns

	created, err := scanParticipant(q.QueryRow(ctx, query,
		p.ID, p.Name, p.Username, p.PasswordHash, p.Email, p.Phone, p.Role,
		p.InternshipStart, p.InternshipEnd, p.CreatedAt, p.UpdatedAt,
	))
	if err != nil {
		return participant.Participant{}, mapParticipantWriteError(err)
	}
	return created, nil
}

// GetByID implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) GetByID(ctx context.Context, id string) (participant.Participant, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanParticipant(q.QueryRow(ctx, `SELECT `+participantColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return participant.Participant{}, participant.ErrParticipantNotFound
		}
		return participant.Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// GetByUsername implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) GetByUsername(ctx context.Context, username string) (participant.Participant, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanParticipant(q.QueryRow(ctx, `SELECT `+participantColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return participant.Participant{}, participant.ErrParticipantNotFound
		}
		return participant.Participant{}, fmt.Errorf("failed to get participant by username: %w", err)
	}
	return p, nil
}

// Update implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) Update(ctx context.Context, p participant.Participant) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, username = $2, password_hash = $3, email = $4, phone = $5,
			internship_start = $6, internship_end = $7, updated_at = $8
		WHERE id = $9
	`
	tag, err := q.Exec(ctx, query,
		p.Name, p.Username, p.PasswordHash, p.Email, p.Phone,
		p.InternshipStart, p.InternshipEnd, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return mapParticipantWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return participant.ErrParticipantNotFound
	}
	return nil
}

// Delete implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return participant.ErrParticipantNotFound
	}
	return nil
}

// List implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) List(ctx context.Context, filter participant.ListFilter, now time.Time) ([]participant.Participant, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"role = 'user'"}
	args := []interface{}{}
	argIdx := 1

	switch filter.Status {
	case participant.StatusActive:
		conditions = append(conditions, fmt.Sprintf("internship_end >= $%d::date", argIdx))
		args = append(args, now.Format("2006-01-02"))
		argIdx++
	case participant.StatusFinished:
		conditions = append(conditions, fmt.Sprintf("internship_end < $%d::date", argIdx))
		args = append(args, now.Format("2006-01-02"))
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR username ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY name ASC, id ASC`,
		participantColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	return collectParticipants(rows)
}

// ListActive implements participant.ParticipantRepository.
func (r *participantRepositoryImpl) ListActive(ctx context.Context, now time.Time) ([]participant.Participant, error) {
	return r.List(ctx, participant.ListFilter{Status: participant.StatusActive}, now)
}

func collectParticipants(rows pgx.Rows) ([]participant.Participant, error) {
	list := []participant.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return list, nil
}
