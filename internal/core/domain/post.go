package domain

import "time"

// Post is an article written by one user inside one category.
type Post struct {
	ID         string    `json:"id" bson:"_id"`
	Title      string    `json:"title" bson:"title"`
	Content    string    `json:"content" bson:"content"`
	AuthorID   string    `json:"author_id" bson:"author_id"`
	CategoryID string    `json:"category_id" bson:"category_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

func (p *Post) OwnerID() string { return p.AuthorID }

func (p *Post) AdminOnly() bool { return false }
