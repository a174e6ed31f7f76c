package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/freejob-server/internal/model"
)

const (
	tokenKeyPrefix      = "refresh_token:"
	userTokensKeyPrefix = "user_refresh_tokens:"
)

// DefaultRetention is how long a token hash outlives its expiry.
const DefaultRetention = 24 * time.Hour

// Fields: user_id, issued_at, expires_at, expires_ms, revoked_at. An empty revoked_at means not revoked.
var (
	createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'user_id', ARGV[1], 'issued_at', ARGV[2], 'expires_at', ARGV[3], 'revoked_at', ARGV[4], 'expires_ms', ARGV[7])
redis.call('PEXPIREAT', KEYS[1], ARGV[5])
redis.call('SADD', KEYS[2], ARGV[6])
return 1
`)

	saveScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('HSET', KEYS[1], 'expires_at', ARGV[1], 'expires_ms', ARGV[4])
local revoked = redis.call('HGET', KEYS[1], 'revoked_at')
if (not revoked) or revoked == '' then
  redis.call('HSET', KEYS[1], 'revoked_at', ARGV[2])
end
redis.call('PEXPIREAT', KEYS[1], ARGV[3])
return 1
`)

	deleteScript = redis.NewScript(`
local uid = redis.call('HGET', KEYS[1], 'user_id')
if not uid then
  return 0
end
redis.call('DEL', KEYS[1])
redis.call('SREM', ARGV[1] .. uid, ARGV[2])
return 1
`)

	revokeAllScript = redis.NewScript(`
local n = 0
for _, id in ipairs(redis.call('SMEMBERS', KEYS[1])) do
  local key = ARGV[1] .. id
  local fields = redis.call('HMGET', key, 'revoked_at', 'expires_ms')
  local revoked = fields[1]
  if not revoked then
    redis.call('SREM', KEYS[1], id)
  elseif revoked == '' and (tonumber(fields[2]) or 0) > tonumber(ARGV[3]) then
    redis.call('HSET', key, 'revoked_at', ARGV[2])
    n = n + 1
  end
end
return n
`)
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository stores refresh tokens as Redis hashes.
// A hash is kept for retention after the token expires, so an expired token
// can still be read and revoked. Liveness is decided by the token, not by the key TTL.
type RefreshTokenRepository struct {
	client    redis.UniversalClient
	retention time.Duration
}

// NewRefreshTokenRepository creates a repository. A non-positive retention falls back to DefaultRetention.
func NewRefreshTokenRepository(client redis.UniversalClient, retention time.Duration) *RefreshTokenRepository {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &RefreshTokenRepository{client: client, retention: retention}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	keys := []string{tokenKey(token.ID), userTokensKey(token.UserID)}
	created, err := createScript.Run(ctx, r.client, keys,
		token.UserID.String(),
		formatTime(token.IssuedAt),
		formatTime(token.ExpiresAt),
		formatOptionalTime(token.RevokedAt),
		r.keyExpiry(token),
		token.ID.String(),
		token.ExpiresAt.UnixMilli(),
	).Int()
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	if created == 0 {
		return model.ErrAlreadyExists
	}
	return nil
}

func (r *RefreshTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (model.RefreshToken, error) {
	fields, err := r.client.HGetAll(ctx, tokenKey(id)).Result()
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if len(fields) == 0 {
		return model.RefreshToken{}, model.ErrNotFound
	}

	token, err := decodeToken(id, fields)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return token, nil
}

// Save persists the token state. A key past its retention is not re-created.
func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	saved, err := saveScript.Run(ctx, r.client, []string{tokenKey(token.ID)},
		formatTime(token.ExpiresAt),
		formatOptionalTime(token.RevokedAt),
		r.keyExpiry(token),
		token.ExpiresAt.UnixMilli(),
	).Int()
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	if saved == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := deleteScript.Run(ctx, r.client, []string{tokenKey(id)}, userTokensKeyPrefix, id.String()).Int()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if deleted == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	n, err := revokeAllScript.Run(ctx, r.client, []string{userTokensKey(userID)}, tokenKeyPrefix, formatTime(at), at.UnixMilli()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens by user: %w", err)
	}
	return n, nil
}

// keyExpiry is the unix millisecond deadline of the token hash.
func (r *RefreshTokenRepository) keyExpiry(token model.RefreshToken) int64 {
	return token.ExpiresAt.Add(r.retention).UnixMilli()
}

func tokenKey(id uuid.UUID) string {
	return tokenKeyPrefix + id.String()
}

func userTokensKey(userID uuid.UUID) string {
	return userTokensKeyPrefix + userID.String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func decodeToken(id uuid.UUID, fields map[string]string) (model.RefreshToken, error) {
	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("bad user_id: %w", err)
	}
	issuedAt, err := time.Parse(time.RFC3339Nano, fields["issued_at"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("bad issued_at: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("bad expires_at: %w", err)
	}

	token := model.RefreshToken{
		ID:        id,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
	if v := fields["revoked_at"]; v != "" {
		revokedAt, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return model.RefreshToken{}, fmt.Errorf("bad revoked_at: %w", err)
		}
		token.RevokedAt = &revokedAt
	}

	return token, nil
}
