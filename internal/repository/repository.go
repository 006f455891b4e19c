// Package repository implements the post store: keyed durable storage with a
// uniqueness constraint on the slug.
package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"inkwell/internal/model"
)

// Store errors. Callers branch on these with errors.Is.
var (
	ErrNotFound      = errors.New("post not found")
	ErrDuplicateSlug = errors.New("a post with this slug already exists")
)

// PostRepository is the storage port for posts.
//
// Insert must perform the slug uniqueness check and the write as one atomic
// unit: two concurrent inserts with the same slug must not both succeed.
type PostRepository interface {
	Insert(ctx context.Context, slug, title, content string) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context) ([]model.PostSummary, error)
	UpdateBySlug(ctx context.Context, slug, title, content string) (*model.Post, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

var repoLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}
