package service

import (
	"context"
	"fmt"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// resolveAuthors loads the author summaries for ids in one round trip.
// An author whose account no longer exists is reported by id only.
func resolveAuthors(ctx context.Context, users ports.UserRepository, ids []string) (map[string]ports.AuthorSummary, error) {
	found, err := users.FindByIDs(ctx, unique(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve authors: %w", err)
	}
	out := make(map[string]ports.AuthorSummary, len(ids))
	for _, id := range ids {
		out[id] = toAuthorSummary(id, found[id])
	}
	return out, nil
}

func toAuthorSummary(id string, u *domain.User) ports.AuthorSummary {
	if u == nil {
		return ports.AuthorSummary{ID: id}
	}
	return ports.AuthorSummary{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
