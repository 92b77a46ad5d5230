package participant

import "context"

type ParticipantService interface {
	Create(ctx context.Context, req CreateParticipantRequest) (ParticipantResponse, error)
	Get(ctx context.Context, id string) (ParticipantResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ParticipantResponse, error)
	Update(ctx context.Context, req UpdateParticipantRequest) (ParticipantResponse, error)
	Delete(ctx context.Context, id string) error
}
