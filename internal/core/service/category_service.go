package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

const maxCategoryField = 200

type CategoryService struct {
	categories ports.CategoryRepository
	posts      ports.PostRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, posts ports.PostRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, posts: posts, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// Create stores a new category. Only admins may call it.
func (s *CategoryService) Create(ctx context.Context, who domain.Identity, in ports.CategoryInput) (*domain.Category, error) {
	if err := domain.Authorize(who, &domain.Category{}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Category{
		ID:        newID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyCategoryInput(c, in, true); err != nil {
		return nil, err
	}

	if err := s.categories.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.Info().Str("category_id", c.ID).Str("slug", c.Slug).Str("by", who.UserID).Msg("category created")
	return c, nil
}

// Update applies the non-nil fields of in. Only admins may call it.
func (s *CategoryService) Update(ctx context.Context, who domain.Identity, id string, in ports.CategoryInput) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(who, c); err != nil {
		return nil, err
	}

	if err := applyCategoryInput(c, in, false); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category that no post references. Only admins may call it.
func (s *CategoryService) Delete(ctx context.Context, who domain.Identity, id string) error {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(who, c); err != nil {
		return err
	}

	inUse, err := s.posts.ExistsInCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if inUse {
		return domain.ErrCategoryInUse
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("category_id", id).Str("by", who.UserID).Msg("category deleted")
	return nil
}

// applyCategoryInput copies in onto c. With create set, name and description
// are required and a missing slug is derived from the name.
func applyCategoryInput(c *domain.Category, in ports.CategoryInput, create bool) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.NewValidationError("name", "this field may not be blank")
		}
		if utf8.RuneCountInString(name) > maxCategoryField {
			return domain.NewValidationError("name", fmt.Sprintf("ensure this field has no more than %d characters", maxCategoryField))
		}
		c.Name = name
	} else if create {
		return domain.NewValidationError("name", "this field is required")
	}

	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return domain.NewValidationError("description", "this field may not be blank")
		}
		c.Description = desc
	} else if create {
		return domain.NewValidationError("description", "this field is required")
	}

	switch {
	case in.Slug != nil && *in.Slug != "":
		if !slug.IsSlug(*in.Slug) {
			return domain.NewValidationError("slug", "enter a valid slug consisting of lowercase letters, numbers, or hyphens")
		}
		if utf8.RuneCountInString(*in.Slug) > maxCategoryField {
			return domain.NewValidationError("slug", fmt.Sprintf("ensure this field has no more than %d characters", maxCategoryField))
		}
		c.Slug = *in.Slug
	case create || in.Slug != nil:
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
