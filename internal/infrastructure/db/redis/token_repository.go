package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Error160/blog-api/internal/core/domain"
)

// TokenRepository stores bearer tokens in Redis and lets key expiry enforce
// the token TTL.
//
// Key format:
//
//	token:<key>        -> user id
//	user_token:<user>  -> key
type TokenRepository struct {
	client *redis.Client
}

// NewTokenRepository creates a TokenRepository wrapping the given Redis client.
func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

// Save writes both index entries with the same expiry.
func (r *TokenRepository) Save(ctx context.Context, t domain.Token) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save token: already expired at %s", t.ExpiresAt)
	}

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, tokenKey(t.Key), t.UserID, ttl)
		p.Set(ctx, userKey(t.UserID), t.Key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r *TokenRepository) FindByKey(ctx context.Context, key string) (*domain.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := r.client.Get(ctx, tokenKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	return r.withExpiry(ctx, domain.Token{Key: key, UserID: userID}, tokenKey(key))
}

func (r *TokenRepository) FindByUser(ctx context.Context, userID string) (*domain.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	key, err := r.client.Get(ctx, userKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find user token: %w", err)
	}

	// The user index can outlive a token deleted by another path; trust the
	// token entry only.
	owner, err := r.client.Get(ctx, tokenKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find user token: %w", err)
	}
	if owner != userID {
		return nil, domain.ErrTokenNotFound
	}
	return r.withExpiry(ctx, domain.Token{Key: key, UserID: userID}, tokenKey(key))
}

// deleteTokenScript drops the token and clears the user index only while it
// still points at that token.
var deleteTokenScript = redis.NewScript(`
redis.call("DEL", KEYS[1])
if redis.call("GET", KEYS[2]) == ARGV[1] then
	redis.call("DEL", KEYS[2])
end
return 1
`)

// Delete removes the token. The user index entry goes with it unless a newer
// login has already replaced it.
func (r *TokenRepository) Delete(ctx context.Context, t domain.Token) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	keys := []string{tokenKey(t.Key), userKey(t.UserID)}
	if err := deleteTokenScript.Run(ctx, r.client, keys, t.Key).Err(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (r *TokenRepository) withExpiry(ctx context.Context, t domain.Token, key string) (*domain.Token, error) {
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("token ttl: %w", err)
	}
	// -2: key vanished between calls. -1: no expiry set.
	switch {
	case ttl == -2:
		return nil, domain.ErrTokenNotFound
	case ttl > 0:
		t.ExpiresAt = time.Now().Add(ttl).UTC()
	}
	return &t, nil
}

func tokenKey(key string) string { return "token:" + key }
func userKey(userID string) string { return "user_token:" + userID }
