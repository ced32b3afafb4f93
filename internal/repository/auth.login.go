package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/acertaplus/solicitation-api/internal/domain"
	"github.com/acertaplus/solicitation-api/internal/domain/vo"
)

type AuthLoginRepository struct {
	db *sqlx.DB
}

type operatorAuthRow struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	ScopeID      sql.NullString `db:"scope_id"`
	Status       string         `db:"status"`
}

func NewAuthLoginRepository(db *sqlx.DB) *AuthLoginRepository {
	return &AuthLoginRepository{db: db}
}

func (r *AuthLoginRepository) GetOperatorAuthByEmail(ctx context.Context, email string) (domain.OperatorAuth, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	const query = `
		SELECT id::text AS id, email, password_hash, role, scope_id::text AS scope_id, status
		FROM operators
		WHERE lower(email) = $1
		LIMIT 1
	`

	var row operatorAuthRow
	if err := r.db.GetContext(ctx, &row, query, normalizedEmail); err != nil {
		if err == sql.ErrNoRows {
			return domain.OperatorAuth{}, vo.ErrInvalidCredentials
		}
		return domain.OperatorAuth{}, fmt.Errorf("repository: get operator auth by email failed: %w", err)
	}

	if row.Status != "active" {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	return domain.OperatorAuth{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		ScopeID:      row.ScopeID.String,
		Status:       row.Status,
	}, nil
}
