package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

const maxTitleLength = 200

type PostService struct {
	posts      ports.PostRepository
	categories ports.CategoryRepository
	comments   ports.CommentRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	categories ports.CategoryRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *PostService {
	return &PostService{
		posts:      posts,
		categories: categories,
		comments:   comments,
		users:      users,
		logger:     logger,
	}
}

// List returns every post in creation order.
func (s *PostService) List(ctx context.Context) ([]ports.PostDetail, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.details(ctx, posts)
}

func (s *PostService) Get(ctx context.Context, id string) (*ports.PostDetail, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

// Create stores a post authored by who. The category must exist.
func (s *PostService) Create(ctx context.Context, who domain.Identity, in ports.CreatePostInput) (*ports.PostDetail, error) {
	p := &domain.Post{AuthorID: who.UserID}
	if err := domain.Authorize(who, p); err != nil {
		return nil, err
	}

	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.NewValidationError("content", "this field is required")
	}
	if err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = newID()
	p.Title = title
	p.Content = in.Content
	p.CategoryID = in.CategoryID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.posts.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Str("post_id", p.ID).Str("author_id", p.AuthorID).Str("category_id", p.CategoryID).Msg("post created")
	return s.detail(ctx, p)
}

// Update applies the non-nil fields of in. Only the author may call it.
func (s *PostService) Update(ctx context.Context, who domain.Identity, id string, in ports.UpdatePostInput) (*ports.PostDetail, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(who, p); err != nil {
		return nil, err
	}

	if in.Title != nil {
		title, err := validateTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		p.Title = title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, domain.NewValidationError("content", "this field may not be blank")
		}
		p.Content = *in.Content
	}
	if in.CategoryID != nil && *in.CategoryID != p.CategoryID {
		if err := s.requireCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return s.detail(ctx, p)
}

// Delete removes the post and its comments. Only the author may call it.
func (s *PostService) Delete(ctx context.Context, who domain.Identity, id string) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(who, p); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	n, err := s.comments.DeleteByPost(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("post_id", id).Msg("failed to delete comments of removed post")
	}

	s.logger.Info().Str("post_id", id).Int64("comments_removed", n).Msg("post deleted")
	return nil
}

// ListComments returns the post's comments oldest first. A post without
// comments yields an empty, non-nil slice.
func (s *PostService) ListComments(ctx context.Context, postID string) ([]ports.CommentDetail, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.List(ctx, ports.CommentFilter{PostID: postID})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return commentDetails(ctx, s.users, comments)
}

func (s *PostService) requireCategory(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("category_id", "this field is required")
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.NewValidationError("category_id", fmt.Sprintf("invalid pk %q - object does not exist", id))
		}
		return fmt.Errorf("find category: %w", err)
	}
	return nil
}

func (s *PostService) detail(ctx context.Context, p *domain.Post) (*ports.PostDetail, error) {
	out, err := s.details(ctx, []*domain.Post{p})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *PostService) details(ctx context.Context, posts []*domain.Post) ([]ports.PostDetail, error) {
	if len(posts) == 0 {
		return []ports.PostDetail{}, nil
	}

	authorIDs := make([]string, len(posts))
	categoryIDs := make([]string, len(posts))
	for i, p := range posts {
		authorIDs[i] = p.AuthorID
		categoryIDs[i] = p.CategoryID
	}

	authors, err := resolveAuthors(ctx, s.users, authorIDs)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindByIDs(ctx, unique(categoryIDs))
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}

	out := make([]ports.PostDetail, len(posts))
	for i, p := range posts {
		cat := ports.CategorySummary{ID: p.CategoryID}
		if c, ok := categories[p.CategoryID]; ok {
			cat.Name = c.Name
		}
		out[i] = ports.PostDetail{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			Author:    authors[p.AuthorID],
			Category:  cat,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}
	return out, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.NewValidationError("title", "this field is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", domain.NewValidationError("title", fmt.Sprintf("ensure this field has no more than %d characters", maxTitleLength))
	}
	return title, nil
}
