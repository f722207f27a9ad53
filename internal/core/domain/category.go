package domain

import "time"

// Category is a named, slugged bucket every post belongs to.
type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnerID is empty: categories have no author.
func (c *Category) OwnerID() string { return "" }

// AdminOnly reports that only admins may write categories.
func (c *Category) AdminOnly() bool { return true }
