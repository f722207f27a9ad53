package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Error160/blog-api/internal/core/domain"
)

func newTestTokenRepository(t *testing.T) (*TokenRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenRepository(client), mr
}

func testToken(key, userID string) domain.Token {
	return domain.Token{Key: key, UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestTokenRepository_SaveAndFind(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, testToken("k1", "u1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	byKey, err := repo.FindByKey(ctx, "k1")
	if err != nil {
		t.Fatalf("find by key failed: %v", err)
	}
	if byKey.UserID != "u1" || byKey.ExpiresAt.IsZero() {
		t.Fatalf("unexpected token: %+v", byKey)
	}

	byUser, err := repo.FindByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("find by user failed: %v", err)
	}
	if byUser.Key != "k1" {
		t.Fatalf("expected k1, got %q", byUser.Key)
	}

	if _, err := repo.FindByKey(ctx, "missing"); err != domain.ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestTokenRepository_Expiry(t *testing.T) {
	repo, mr := newTestTokenRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, testToken("k1", "u1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	mr.FastForward(2 * time.Hour)

	if _, err := repo.FindByKey(ctx, "k1"); err != domain.ErrTokenNotFound {
		t.Fatalf("expected expired token to be gone, got %v", err)
	}
	if _, err := repo.FindByUser(ctx, "u1"); err != domain.ErrTokenNotFound {
		t.Fatalf("expected expired user index to be gone, got %v", err)
	}
}

func TestTokenRepository_Delete(t *testing.T) {
	repo, mr := newTestTokenRepository(t)
	ctx := context.Background()

	tok := testToken("k1", "u1")
	if err := repo.Save(ctx, tok); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Delete(ctx, tok); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if mr.Exists(tokenKey("k1")) || mr.Exists(userKey("u1")) {
		t.Fatalf("expected both entries removed")
	}
}

func TestTokenRepository_DeleteStaleKeepsNewerIndex(t *testing.T) {
	repo, _ := newTestTokenRepository(t)
	ctx := context.Background()

	older := testToken("k-old", "u1")
	newer := testToken("k-new", "u1")
	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("save older failed: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("save newer failed: %v", err)
	}

	if err := repo.Delete(ctx, older); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByKey(ctx, "k-old"); err != domain.ErrTokenNotFound {
		t.Fatalf("expected older token gone, got %v", err)
	}
	live, err := repo.FindByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("user index must still resolve the newer token: %v", err)
	}
	if live.Key != "k-new" {
		t.Fatalf("expected k-new, got %q", live.Key)
	}
}
