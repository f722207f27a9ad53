package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, logger: logger}
}

// List returns comments oldest first, optionally restricted to one post.
// An unknown post id simply matches nothing.
func (s *CommentService) List(ctx context.Context, filter ports.CommentFilter) ([]ports.CommentDetail, error) {
	comments, err := s.comments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return commentDetails(ctx, s.users, comments)
}

func (s *CommentService) Get(ctx context.Context, id string) (*ports.CommentDetail, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, c)
}

// Create stores a comment authored by who on an existing post.
func (s *CommentService) Create(ctx context.Context, who domain.Identity, in ports.CreateCommentInput) (*ports.CommentDetail, error) {
	c := &domain.Comment{AuthorID: who.UserID}
	if err := domain.Authorize(who, c); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.NewValidationError("content", "this field is required")
	}
	if in.PostID == "" {
		return nil, domain.NewValidationError("post_id", "this field is required")
	}
	if _, err := s.posts.FindByID(ctx, in.PostID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, domain.NewValidationError("post_id", fmt.Sprintf("invalid pk %q - object does not exist", in.PostID))
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	now := time.Now().UTC()
	c.ID = newID()
	c.PostID = in.PostID
	c.Content = in.Content
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.comments.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create comment")
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Info().Str("comment_id", c.ID).Str("post_id", c.PostID).Str("author_id", c.AuthorID).Msg("comment created")
	return s.detail(ctx, c)
}

// Update changes the comment content. Only the author may call it.
func (s *CommentService) Update(ctx context.Context, who domain.Identity, id string, in ports.UpdateCommentInput) (*ports.CommentDetail, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(who, c); err != nil {
		return nil, err
	}

	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, domain.NewValidationError("content", "this field may not be blank")
		}
		c.Content = *in.Content
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.comments.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return s.detail(ctx, c)
}

// Delete removes the comment. Only the author may call it.
func (s *CommentService) Delete(ctx context.Context, who domain.Identity, id string) error {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(who, c); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Msg("comment deleted")
	return nil
}

func (s *CommentService) detail(ctx context.Context, c *domain.Comment) (*ports.CommentDetail, error) {
	out, err := commentDetails(ctx, s.users, []*domain.Comment{c})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func commentDetails(ctx context.Context, users ports.UserRepository, comments []*domain.Comment) ([]ports.CommentDetail, error) {
	out := make([]ports.CommentDetail, len(comments))
	if len(comments) == 0 {
		return out, nil
	}

	authorIDs := make([]string, len(comments))
	for i, c := range comments {
		authorIDs[i] = c.AuthorID
	}
	authors, err := resolveAuthors(ctx, users, authorIDs)
	if err != nil {
		return nil, err
	}

	for i, c := range comments {
		out[i] = ports.CommentDetail{
			ID:        c.ID,
			PostID:    c.PostID,
			Author:    authors[c.AuthorID],
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return out, nil
}
