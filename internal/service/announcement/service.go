package announcement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/announcement"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/session"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	now func() time.Time
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepo,
		now:                    time.Now,
	}
}

func toResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:        a.ID,
		Content:   a.Content,
		StartDate: a.StartDate.Format(time.RFC3339),
		EndDate:   a.EndDate.Format(time.RFC3339),
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.AnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to generate announcement ID: %w", err)
	}

	var createdBy *string
	if sess, err := session.FromContext(ctx); err == nil {
		createdBy = &sess.UserID
	}

	now := s.now().UTC()
	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		ID:        id.String(),
		Content:   req.Content,
		StartDate: req.Start.UTC(),
		EndDate:   req.End.UTC(),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	slog.Info("announcement created", "announcement_id", created.ID, "start", created.StartDate, "end", created.EndDate)
	return toResponse(created), nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, req announcement.AnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a, err := s.AnnouncementRepository.GetByID(ctx, req.ID)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a.Content = req.Content
	a.StartDate = req.Start.UTC()
	a.EndDate = req.End.UTC()
	a.UpdatedAt = s.now().UTC()

	if err := s.AnnouncementRepository.Update(ctx, a); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.AnnouncementResponse{}, err
		}
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to update announcement: %w", err)
	}

	return toResponse(a), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.AnnouncementRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

// ListActive implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ListActive(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	list, err := s.AnnouncementRepository.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	out := make([]announcement.AnnouncementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toResponse(a))
	}
	return out, nil
}
