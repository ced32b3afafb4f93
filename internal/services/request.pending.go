package services

import (
	"context"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/feed"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

type RequestPendingRepository interface {
	PendingSnapshot(ctx context.Context, filter changefeed.Filter) ([]domain.ServiceRequest, error)
}

type RequestPendingService struct {
	repository RequestPendingRepository
}

func NewRequestPendingService(repository RequestPendingRepository) *RequestPendingService {
	return &RequestPendingService{repository: repository}
}

// PendingRequests lists the pending backlog visible to the actor.
func (s *RequestPendingService) PendingRequests(ctx context.Context, actor feed.Actor) (vo.PendingRequestList, error) {
	requests, err := s.repository.PendingSnapshot(ctx, actor.Filter())
	if err != nil {
		return vo.PendingRequestList{}, err
	}

	list := vo.PendingRequestList{
		Requests: make([]vo.PendingRequest, 0, len(requests)),
		Count:    len(requests),
	}
	for _, request := range requests {
		list.Requests = append(list.Requests, vo.PendingRequest{
			RequestID:   request.ID,
			ClientID:    request.ClientID,
			OwnerID:     request.OwnerID,
			ServiceName: request.ServiceName,
			Description: request.Description,
			Price:       request.Price,
			CreatedAt:   request.CreatedAt,
		})
	}
	return list, nil
}
