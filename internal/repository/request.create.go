package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/acertaplus/solicitation-api/internal/domain"
)

type RequestCreateRepository struct {
	db *sqlx.DB
}

func NewRequestCreateRepository(db *sqlx.DB) *RequestCreateRepository {
	return &RequestCreateRepository{db: db}
}

// InsertServiceRequest persists a new pending request. The store assigns
// created_at; the caller assigns the identifier.
func (r *RequestCreateRepository) InsertServiceRequest(ctx context.Context, request domain.ServiceRequest) (domain.ServiceRequest, error) {
	const query = `
		INSERT INTO service_requests (id, client_id, owner_id, service_name, description, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', now())
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.db.GetContext(ctx, &createdAt, query,
		request.ID,
		request.ClientID,
		request.OwnerID,
		request.ServiceName,
		request.Description,
		request.Price,
	)
	if err != nil {
		return domain.ServiceRequest{}, fmt.Errorf("repository: failed to insert service request: %w", err)
	}

	request.Status = domain.StatusPending
	request.CreatedAt = createdAt
	return request, nil
}
