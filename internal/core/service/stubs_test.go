package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	byID      map[string]*domain.User
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrUserExists
		}
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

// add seeds a user directly, bypassing the service.
func (r *stubUserRepo) add(id, username string, admin bool) domain.Identity {
	u := &domain.User{ID: id, Username: username, Email: username + "@x.com", IsAdmin: admin}
	r.byID[id] = u
	return u.Identity()
}

type stubTokenRepo struct {
	byKey map[string]domain.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{byKey: make(map[string]domain.Token)}
}

func (r *stubTokenRepo) Save(_ context.Context, t domain.Token) error {
	r.byKey[t.Key] = t
	return nil
}

func (r *stubTokenRepo) FindByKey(_ context.Context, key string) (*domain.Token, error) {
	t, ok := r.byKey[key]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return &t, nil
}

func (r *stubTokenRepo) FindByUser(_ context.Context, userID string) (*domain.Token, error) {
	for _, t := range r.byKey {
		if t.UserID == userID {
			t := t
			return &t, nil
		}
	}
	return nil, domain.ErrTokenNotFound
}

func (r *stubTokenRepo) Delete(_ context.Context, t domain.Token) error {
	delete(r.byKey, t.Key)
	return nil
}

type stubCategoryRepo struct {
	byID map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Category, error) {
	out := make(map[string]*domain.Category, len(ids))
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			clone := *c
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCategoryRepo) add(id, name string) {
	r.byID[id] = &domain.Category{ID: id, Name: name, Slug: name, Description: name}
}

// stubPostRepo keeps insertion order to mirror the real repository's sort.
type stubPostRepo struct {
	order []string
	byID  map[string]*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	clone := *p
	r.byID[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPostRepo) ExistsInCategory(_ context.Context, categoryID string) (bool, error) {
	for _, p := range r.byID {
		if p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPostRepo) add(id, authorID, categoryID string) {
	now := time.Now().UTC()
	_ = r.Create(context.Background(), &domain.Post{
		ID: id, Title: "title " + id, Content: "body", AuthorID: authorID, CategoryID: categoryID,
		CreatedAt: now, UpdatedAt: now,
	})
}

type stubCommentRepo struct {
	order []string
	byID  map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byID: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	clone := *c
	r.byID[c.ID] = &clone
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) List(_ context.Context, f ports.CommentFilter) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0)
	for _, id := range r.order {
		c, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.PostID != "" && c.PostID != f.PostID {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCommentNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for id, c := range r.byID {
		if c.PostID == postID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *stubCommentRepo) add(id, postID, authorID string) {
	now := time.Now().UTC()
	_ = r.Create(context.Background(), &domain.Comment{
		ID: id, PostID: postID, AuthorID: authorID, Content: "comment " + id,
		CreatedAt: now, UpdatedAt: now,
	})
}

func strPtr(s string) *string { return &s }
