package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
)

type RequestConfirmRepository struct {
	db *sqlx.DB
}

type confirmedRequestRow struct {
	serviceRequestRow
	ConfirmedAt time.Time `db:"confirmed_at"`
}

func NewRequestConfirmRepository(db *sqlx.DB) *RequestConfirmRepository {
	return &RequestConfirmRepository{db: db}
}

// ConfirmPendingRequest performs the single forward transition
// pending -> confirmed. The status predicate makes the write a no-op for
// already-confirmed rows, so concurrent confirms cannot double-transition.
func (r *RequestConfirmRepository) ConfirmPendingRequest(ctx context.Context, requestID string) (domain.ServiceRequest, time.Time, error) {
	const query = `
		UPDATE service_requests
		SET status = 'confirmed', confirmed_at = now()
		WHERE id::text = $1 AND status = 'pending'
		RETURNING id::text AS id, client_id::text AS client_id, owner_id::text AS owner_id,
		          service_name, description, price, status, created_at, confirmed_at
	`

	var row confirmedRequestRow
	err := r.db.GetContext(ctx, &row, query, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			const existsQuery = `SELECT EXISTS(SELECT 1 FROM service_requests WHERE id::text = $1)`

			var exists bool
			if existsErr := r.db.GetContext(ctx, &exists, existsQuery, requestID); existsErr != nil {
				return domain.ServiceRequest{}, time.Time{}, fmt.Errorf("repository: failed to check request existence: %w", existsErr)
			}
			if !exists {
				return domain.ServiceRequest{}, time.Time{}, vo.ErrRequestNotFound
			}
			return domain.ServiceRequest{}, time.Time{}, vo.ErrRequestNotPending
		}
		return domain.ServiceRequest{}, time.Time{}, fmt.Errorf("repository: failed to confirm service request: %w", err)
	}

	return row.toDomain(), row.ConfirmedAt, nil
}
