package participant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type ParticipantServiceImpl struct {
	participant.ParticipantRepository
	location *time.Location
	now      func() time.Time
}

func NewParticipantService(participantRepo participant.ParticipantRepository, location *time.Location) participant.ParticipantService {
	if location == nil {
		location = time.UTC
	}
	return &ParticipantServiceImpl{
		ParticipantRepository: participantRepo,
		location:              location,
		now:                   time.Now,
	}
}

func (s *ParticipantServiceImpl) today() time.Time {
	return s.now().In(s.location)
}

func (s *ParticipantServiceImpl) toResponse(p participant.Participant) participant.ParticipantResponse {
	status := participant.StatusFinished
	if p.IsActive(s.today()) {
		status = participant.StatusActive
	}

	return participant.ParticipantResponse{
		ID:              p.ID,
		Name:            p.Name,
		Username:        p.Username,
		Email:           p.Email,
		Phone:           p.Phone,
		Role:            p.Role,
		InternshipStart: p.InternshipStart.Format("2006-01-02"),
		InternshipEnd:   p.InternshipEnd.Format("2006-01-02"),
		Status:          status,
		TotalWorkdays:   utils.CountWeekdays(p.InternshipStart, p.InternshipEnd),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements participant.ParticipantService.
func (s *ParticipantServiceImpl) Create(ctx context.Context, req participant.CreateParticipantRequest) (participant.ParticipantResponse, error) {
	if err := req.Validate(); err != nil {
		return participant.ParticipantResponse{}, err
	}

	if err := s.ensureUsernameFree(ctx, req.Username, ""); err != nil {
		return participant.ParticipantResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return participant.ParticipantResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return participant.ParticipantResponse{}, fmt.Errorf("failed to generate participant ID: %w", err)
	}

	now := s.now().UTC()
	created, err := s.ParticipantRepository.Create(ctx, participant.Participant{
		ID:              id.String(),
		Name:            req.Name,
		Username:        req.Username,
		PasswordHash:    string(hash),
		Email:           req.Email,
		Phone:           emptyToNil(req.Phone),
		Role:            req.Role,
		InternshipStart: req.StartDate,
		InternshipEnd:   req.EndDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		if errors.Is(err, participant.ErrUsernameExists) || errors.Is(err, participant.ErrEmailExists) {
			return participant.ParticipantResponse{}, err
		}
		return participant.ParticipantResponse{}, fmt.Errorf("failed to create participant: %w", err)
	}

	slog.Info("participant created", "participant_id", created.ID, "username", created.Username, "role", created.Role)
	return s.toResponse(created), nil
}

// Get implements participant.ParticipantService.
func (s *ParticipantServiceImpl) Get(ctx context.Context, id string) (participant.ParticipantResponse, error) {
	p, err := s.ParticipantRepository.GetByID(ctx, id)
	if err != nil {
		return participant.ParticipantResponse{}, err
	}
	return s.toResponse(p), nil
}

// List implements participant.ParticipantService.
func (s *ParticipantServiceImpl) List(ctx context.Context, filter participant.ListFilter) ([]participant.ParticipantResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.ParticipantRepository.List(ctx, filter, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	out := make([]participant.ParticipantResponse, 0, len(list))
	for _, p := range list {
		out = append(out, s.toResponse(p))
	}
	return out, nil
}

// Update implements participant.ParticipantService.
func (s *ParticipantServiceImpl) Update(ctx context.Context, req participant.UpdateParticipantRequest) (participant.ParticipantResponse, error) {
	if err := req.Validate(); err != nil {
		return participant.ParticipantResponse{}, err
	}

	p, err := s.ParticipantRepository.GetByID(ctx, req.ID)
	if err != nil {
		return participant.ParticipantResponse{}, err
	}

	if req.Username != p.Username {
		if err := s.ensureUsernameFree(ctx, req.Username, p.ID); err != nil {
			return participant.ParticipantResponse{}, err
		}
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return participant.ParticipantResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		p.PasswordHash = string(hash)
	}

	p.Name = req.Name
	p.Username = req.Username
	p.Email = req.Email
	p.Phone = emptyToNil(req.Phone)
	p.InternshipStart = req.StartDate
	p.InternshipEnd = req.EndDate
	p.UpdatedAt = s.now().UTC()

	if err := s.ParticipantRepository.Update(ctx, p); err != nil {
		if errors.Is(err, participant.ErrUsernameExists) ||
			errors.Is(err, participant.ErrEmailExists) ||
			errors.Is(err, participant.ErrParticipantNotFound) {
			return participant.ParticipantResponse{}, err
		}
		return participant.ParticipantResponse{}, fmt.Errorf("failed to update participant: %w", err)
	}

	slog.Info("participant updated", "participant_id", p.ID, "password_changed", req.Password != nil)
	return s.toResponse(p), nil
}

// Delete implements participant.ParticipantService.
// Attendance rows go with the participant through the foreign key cascade.
func (s *ParticipantServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.ParticipantRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, participant.ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	slog.Info("participant deleted", "participant_id", id)
	return nil
}

func (s *ParticipantServiceImpl) ensureUsernameFree(ctx context.Context, username string, selfID string) error {
	existing, err := s.ParticipantRepository.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, participant.ErrParticipantNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check username: %w", err)
	case existing.ID != selfID:
		return participant.ErrUsernameExists
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
