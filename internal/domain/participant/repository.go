package participant

import (
	"context"
	"time"
)

type ParticipantRepository interface {
	Create(ctx context.Context, p Participant) (Participant, error)
	GetByID(ctx context.Context, id string) (Participant, error)
	GetByUsername(ctx context.Context, username string) (Participant, error)
	Update(ctx context.Context, p Participant) error
	Delete(ctx context.Context, id string) error

	// List returns role=user participants matching the filter, ordered by name.
	List(ctx context.Context, filter ListFilter, now time.Time) ([]Participant, error)

	// ListActive returns role=user participants whose internship has not ended at now.
	ListActive(ctx context.Context, now time.Time) ([]Participant, error)
}
