package announcement

import (
	"context"
	"time"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	Update(ctx context.Context, a Announcement) error
	Delete(ctx context.Context, id string) error

	// ListActive returns announcements whose window contains at, newest start first
	ListActive(ctx context.Context, at time.Time) ([]Announcement, error)
}
