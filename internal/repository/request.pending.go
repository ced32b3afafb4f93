package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
)

type RequestPendingRepository struct {
	db *sqlx.DB
}

type serviceRequestRow struct {
	ID          string    `db:"id"`
	ClientID    string    `db:"client_id"`
	OwnerID     string    `db:"owner_id"`
	ServiceName string    `db:"service_name"`
	Description string    `db:"description"`
	Price       string    `db:"price"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

func NewRequestPendingRepository(db *sqlx.DB) *RequestPendingRepository {
	return &RequestPendingRepository{db: db}
}

// PendingSnapshot satisfies changefeed.SnapshotLoader: it is the initial
// backlog of every feed subscription as well as the dashboard list view.
func (r *RequestPendingRepository) PendingSnapshot(ctx context.Context, filter changefeed.Filter) ([]domain.ServiceRequest, error) {
	const unscopedQuery = `
		SELECT id::text AS id, client_id::text AS client_id, owner_id::text AS owner_id,
		       service_name, description, price, status, created_at
		FROM service_requests
		WHERE status = 'pending'
		ORDER BY created_at DESC
	`
	const scopedQuery = `
		SELECT id::text AS id, client_id::text AS client_id, owner_id::text AS owner_id,
		       service_name, description, price, status, created_at
		FROM service_requests
		WHERE status = 'pending' AND owner_id::text = $1
		ORDER BY created_at DESC
	`

	var rows []serviceRequestRow
	var err error
	if filter.Unscoped {
		err = r.db.SelectContext(ctx, &rows, unscopedQuery)
	} else {
		err = r.db.SelectContext(ctx, &rows, scopedQuery, filter.ScopeID)
	}
	if err != nil {
		return nil, fmt.Errorf("repository: pending snapshot query failed: %w", err)
	}

	requests := make([]domain.ServiceRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.toDomain())
	}
	return requests, nil
}

func (row serviceRequestRow) toDomain() domain.ServiceRequest {
	return domain.ServiceRequest{
		ID:          row.ID,
		ClientID:    row.ClientID,
		OwnerID:     row.OwnerID,
		ServiceName: row.ServiceName,
		Description: row.Description,
		Price:       row.Price,
		Status:      domain.RequestStatus(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}
