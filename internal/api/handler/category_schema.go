package handler

import (
	"time"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// categoryRequest is the body of POST and PUT. slug may be omitted.
type categoryRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Slug        string `json:"slug"        validate:"max=200"`
	Description string `json:"description" validate:"required"`
}

// categoryPatchRequest is the body of PATCH; absent fields stay untouched.
type categoryPatchRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=200"`
	Slug        *string `json:"slug"        validate:"omitempty,max=200"`
	Description *string `json:"description"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r categoryRequest) input() ports.CategoryInput {
	return ports.CategoryInput{
		Name:        &r.Name,
		Slug:        &r.Slug,
		Description: &r.Description,
	}
}

func (r categoryPatchRequest) input() ports.CategoryInput {
	return ports.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
	}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(cs []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cs))
	for i, c := range cs {
		out[i] = toCategoryResponse(c)
	}
	return out
}
