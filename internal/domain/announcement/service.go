package announcement

import "context"

type AnnouncementService interface {
	Create(ctx context.Context, req AnnouncementRequest) (AnnouncementResponse, error)
	Update(ctx context.Context, req AnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]AnnouncementResponse, error)
}
