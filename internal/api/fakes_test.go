package api

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// fakeBlog is a single in-memory implementation of every service the router
// needs, enough to drive request flows end to end.
type fakeBlog struct {
	mu       sync.Mutex
	seq      int
	users    map[string]*domain.User // by username
	tokens   map[string]string       // key -> username
	cats     map[string]*domain.Category
	posts    map[string]*domain.Post
	comments map[string]*domain.Comment
}

func newFakeBlog() *fakeBlog {
	return &fakeBlog{
		users:    map[string]*domain.User{},
		tokens:   map[string]string{},
		cats:     map[string]*domain.Category{},
		posts:    map[string]*domain.Post{},
		comments: map[string]*domain.Comment{},
	}
}

func (f *fakeBlog) nextID(prefix string) string {
	f.seq++
	return prefix + strconv.Itoa(f.seq)
}

func (f *fakeBlog) addUser(username string, admin bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &domain.User{ID: f.nextID("u"), Username: username, Email: username + "@example.com", IsAdmin: admin}
	f.users[username] = u
	key := "tok-" + username
	f.tokens[key] = username
	return key
}

func (f *fakeBlog) addCategory(id, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cats[id] = &domain.Category{ID: id, Name: name, Slug: name}
}

// --- ports.AuthService ---

type fakeAuth struct{ *fakeBlog }

func (f fakeAuth) Register(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Password != in.PasswordConfirmation {
		return nil, domain.NewValidationError("password_confirmation", "passwords do not match")
	}
	f.mu.Lock()
	_, exists := f.users[in.Username]
	f.mu.Unlock()
	if exists {
		return nil, domain.NewValidationError("username", "username already exists")
	}
	key := f.addUser(in.Username, false)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &ports.AuthResult{User: f.users[in.Username], Token: key}, nil
}

func (f fakeAuth) Login(_ context.Context, username, password string) (*ports.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok || password != "s3cretpass" {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.AuthResult{User: u, Token: "tok-" + username}, nil
}

func (f fakeAuth) Logout(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[key]; !ok {
		return domain.ErrInvalidToken
	}
	delete(f.tokens, key)
	return nil
}

func (f fakeAuth) Profile(_ context.Context, who domain.Identity) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[who.Username], nil
}

func (f fakeAuth) Authenticate(_ context.Context, key string) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.tokens[key]
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return f.users[name].Identity(), nil
}

// --- ports.CategoryService ---

type fakeCategories struct{ *fakeBlog }

func (f fakeCategories) List(context.Context) ([]*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Category, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, c)
	}
	return out, nil
}

func (f fakeCategories) Get(_ context.Context, id string) (*domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cats[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (f fakeCategories) Create(_ context.Context, who domain.Identity, in ports.CategoryInput) (*domain.Category, error) {
	if err := domain.Authorize(who, &domain.Category{}); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &domain.Category{ID: f.nextID("c"), Name: *in.Name, Slug: *in.Slug, Description: *in.Description}
	f.cats[c.ID] = c
	return c, nil
}

func (f fakeCategories) Update(ctx context.Context, who domain.Identity, id string, in ports.CategoryInput) (*domain.Category, error) {
	c, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(who, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (f fakeCategories) Delete(ctx context.Context, who domain.Identity, id string) error {
	c, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(who, c); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cats, id)
	return nil
}

// --- ports.PostService ---

type fakePosts struct{ *fakeBlog }

func (f fakePosts) detail(p *domain.Post) *ports.PostDetail {
	d := &ports.PostDetail{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
	for _, u := range f.users {
		if u.ID == p.AuthorID {
			d.Author = ports.AuthorSummary{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
		}
	}
	if c, ok := f.cats[p.CategoryID]; ok {
		d.Category = ports.CategorySummary{ID: c.ID, Name: c.Name}
	}
	return d
}

func (f fakePosts) List(context.Context) ([]ports.PostDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []ports.PostDetail{}
	for _, p := range f.posts {
		out = append(out, *f.detail(p))
	}
	return out, nil
}

func (f fakePosts) Get(_ context.Context, id string) (*ports.PostDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return f.detail(p), nil
}

func (f fakePosts) Create(_ context.Context, who domain.Identity, in ports.CreatePostInput) (*ports.PostDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cats[in.CategoryID]; !ok {
		return nil, domain.NewValidationError("category_id", "object does not exist")
	}
	now := time.Now().UTC()
	p := &domain.Post{ID: f.nextID("p"), Title: in.Title, Content: in.Content, AuthorID: who.UserID, CategoryID: in.CategoryID, CreatedAt: now, UpdatedAt: now}
	f.posts[p.ID] = p
	return f.detail(p), nil
}

func (f fakePosts) Update(_ context.Context, who domain.Identity, id string, in ports.UpdatePostInput) (*ports.PostDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if err := domain.Authorize(who, p); err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	return f.detail(p), nil
}

func (f fakePosts) Delete(_ context.Context, who domain.Identity, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	if err := domain.Authorize(who, p); err != nil {
		return err
	}
	delete(f.posts, id)
	return nil
}

func (f fakePosts) ListComments(_ context.Context, postID string) ([]ports.CommentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[postID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	out := []ports.CommentDetail{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, ports.CommentDetail{ID: c.ID, PostID: c.PostID, Content: c.Content})
		}
	}
	return out, nil
}

// --- ports.CommentService ---

type fakeComments struct{ *fakeBlog }

func (f fakeComments) List(context.Context, ports.CommentFilter) ([]ports.CommentDetail, error) {
	return []ports.CommentDetail{}, nil
}

func (f fakeComments) Get(_ context.Context, id string) (*ports.CommentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return &ports.CommentDetail{ID: c.ID, PostID: c.PostID, Content: c.Content,
		Author: ports.AuthorSummary{ID: c.AuthorID}}, nil
}

func (f fakeComments) Create(_ context.Context, who domain.Identity, in ports.CreateCommentInput) (*ports.CommentDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[in.PostID]; !ok {
		return nil, domain.NewValidationError("post_id", "object does not exist")
	}
	c := &domain.Comment{ID: f.nextID("cm"), PostID: in.PostID, AuthorID: who.UserID, Content: in.Content}
	f.comments[c.ID] = c
	return &ports.CommentDetail{ID: c.ID, PostID: c.PostID, Content: c.Content,
		Author: ports.AuthorSummary{ID: who.UserID, Username: who.Username}}, nil
}

func (f fakeComments) Update(context.Context, domain.Identity, string, ports.UpdateCommentInput) (*ports.CommentDetail, error) {
	return nil, domain.ErrCommentNotFound
}

func (f fakeComments) Delete(_ context.Context, who domain.Identity, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	if err := domain.Authorize(who, c); err != nil {
		return err
	}
	delete(f.comments, id)
	return nil
}
