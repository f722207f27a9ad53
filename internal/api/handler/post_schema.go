package handler

import (
	"time"

	"github.com/Error160/blog-api/internal/core/ports"
)

// postRequest is the body of POST and PUT. Author fields sent by the client
// are not part of it and are therefore ignored.
type postRequest struct {
	Title      string `json:"title"       validate:"required,max=200"`
	Content    string `json:"content"     validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

type postPatchRequest struct {
	Title      *string `json:"title"       validate:"omitempty,max=200"`
	Content    *string `json:"content"`
	CategoryID *string `json:"category_id"`
}

type postCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type postResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Author    authorResponse       `json:"author"`
	Category  postCategoryResponse `json:"category"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (r postRequest) update() ports.UpdatePostInput {
	return ports.UpdatePostInput{
		Title:      &r.Title,
		Content:    &r.Content,
		CategoryID: &r.CategoryID,
	}
}

func (r postPatchRequest) update() ports.UpdatePostInput {
	return ports.UpdatePostInput{
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
	}
}

func toAuthorResponse(a ports.AuthorSummary) authorResponse {
	return authorResponse{ID: a.ID, Username: a.Username, IsAdmin: a.IsAdmin}
}

func toPostResponse(p *ports.PostDetail) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    toAuthorResponse(p.Author),
		Category:  postCategoryResponse{ID: p.Category.ID, Name: p.Category.Name},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostResponses(ps []ports.PostDetail) []postResponse {
	out := make([]postResponse, len(ps))
	for i := range ps {
		out[i] = toPostResponse(&ps[i])
	}
	return out
}
