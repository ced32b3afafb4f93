package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
	shareduid "github.com/acertaplus/solicitation-api/internal/shared/uid"
)

type RequestCreateRepository interface {
	InsertServiceRequest(ctx context.Context, request domain.ServiceRequest) (domain.ServiceRequest, error)
}

type CreateRequestInput struct {
	ClientID    string
	OwnerID     string
	ServiceName string
	Description string
	Price       string
}

type RequestCreateService struct {
	repository RequestCreateRepository
	publisher  changefeed.Publisher
	uidGen     shareduid.UIDGenerator
	logger     *slog.Logger
}

func NewRequestCreateService(
	repository RequestCreateRepository,
	publisher changefeed.Publisher,
	uidGen shareduid.UIDGenerator,
	logger *slog.Logger,
) *RequestCreateService {
	return &RequestCreateService{
		repository: repository,
		publisher:  publisher,
		uidGen:     uidGen,
		logger:     logger,
	}
}

// Create persists a new pending request and broadcasts the added event that
// drives provider feeds.
func (s *RequestCreateService) Create(ctx context.Context, input CreateRequestInput) (vo.RequestCreated, error) {
	if strings.TrimSpace(input.ClientID) == "" ||
		strings.TrimSpace(input.OwnerID) == "" ||
		strings.TrimSpace(input.ServiceName) == "" ||
		strings.TrimSpace(input.Price) == "" {
		return vo.RequestCreated{}, vo.ErrInvalidRequestPayload
	}

	requestID, err := s.uidGen.Generate(ctx)
	if err != nil {
		return vo.RequestCreated{}, err
	}

	created, err := s.repository.InsertServiceRequest(ctx, domain.ServiceRequest{
		ID:          requestID,
		ClientID:    strings.TrimSpace(input.ClientID),
		OwnerID:     strings.TrimSpace(input.OwnerID),
		ServiceName: strings.TrimSpace(input.ServiceName),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
	})
	if err != nil {
		return vo.RequestCreated{}, err
	}

	// Persisted is the source of truth; a lost broadcast only delays
	// visibility until the next snapshot.
	if err := s.publisher.Publish(ctx, changefeed.Change{Type: changefeed.ChangeAdded, Request: created}); err != nil {
		s.logger.Warn("failed to publish request added event", "request_id", created.ID, "error", err)
	}

	return vo.RequestCreated{
		RequestID:   created.ID,
		ClientID:    created.ClientID,
		OwnerID:     created.OwnerID,
		ServiceName: created.ServiceName,
		Price:       created.Price,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}
