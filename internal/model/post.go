// Package model defines the core data structures for the blog.
package model

import "time"

type PostID string

// Post is the sole persisted entity. Slug is assigned once at creation and is
// the post's permanent public identity; editing the title never changes it.
type Post struct {
	ID PostID `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`

	// Hash of the stored (compressed) content.
	// Used for cache busting on single-post responses.
	ContentHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostSummary is the listing projection: everything but the content, which
// can be arbitrarily large and is never shown on index pages.
type PostSummary struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary projects a post down to its listing fields.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		Title:     p.Title,
		Slug:      p.Slug,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
