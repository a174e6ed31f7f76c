package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/freejob-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db Querier
}

func NewRefreshTokenRepository(db Querier) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (id, user_id, issued_at, expires_at, revoked_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.db.Exec(ctx, query, token.ID, token.UserID, token.IssuedAt, token.ExpiresAt, token.RevokedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (model.RefreshToken, error) {
	const query = `
        SELECT id, user_id, issued_at, expires_at, revoked_at
        FROM refresh_tokens WHERE id = $1
    `
	var rt model.RefreshToken
	err := r.db.QueryRow(ctx, query, id).Scan(&rt.ID, &rt.UserID, &rt.IssuedAt, &rt.ExpiresAt, &rt.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

// Save persists the token state. An existing revoked_at is never overwritten.
func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	const query = `
        UPDATE refresh_tokens
        SET expires_at = $2, revoked_at = COALESCE(revoked_at, $3)
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, token.ID, token.ExpiresAt, token.RevokedAt)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	const query = `
        UPDATE refresh_tokens SET revoked_at = $2
        WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > $2
    `
	tag, err := r.db.Exec(ctx, query, userID, at)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
