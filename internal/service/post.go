// Package service implements the post use cases: input validation, slug
// derivation and sequencing against the post store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"inkwell/internal/model"
	"inkwell/internal/repository"
	"inkwell/internal/slug"
)

var (
	// ErrValidation covers a missing or whitespace-only title or content,
	// and titles that derive to an empty slug.
	ErrValidation = errors.New("title and content are required")

	// ErrDuplicateTitle means another post's title already owns this slug.
	ErrDuplicateTitle = errors.New("a post with this title already exists")
)

var svcLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	svcLogger = l
}

type PostService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost derives the slug from the title and inserts the post. A slug
// collision surfaces as ErrDuplicateTitle: from the caller's point of view a
// post with an equivalent title already exists.
func (s *PostService) CreatePost(ctx context.Context, title, content string) (*model.Post, error) {
	if isBlank(title) || isBlank(content) {
		return nil, ErrValidation
	}

	postSlug, err := slug.Derive(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	post, err := s.repo.Insert(ctx, postSlug, title, content)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("create post %q: %w", title, ErrDuplicateTitle)
		}
		return nil, err
	}

	svcLogger.Info().Str("slug", post.Slug).Str("id", string(post.ID)).Msg("Post created")
	return post, nil
}

// UpdatePost replaces title and content. The slug is never re-derived from
// the new title: it is the post's permanent identity, even when the title
// drifts away from it over successive edits.
func (s *PostService) UpdatePost(ctx context.Context, postSlug, title, content string) (*model.Post, error) {
	if isBlank(title) || isBlank(content) {
		return nil, ErrValidation
	}

	post, err := s.repo.UpdateBySlug(ctx, postSlug, title, content)
	if err != nil {
		return nil, err
	}

	svcLogger.Info().Str("slug", post.Slug).Msg("Post updated")
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postSlug string) (*model.Post, error) {
	return s.repo.FindBySlug(ctx, postSlug)
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.PostSummary, error) {
	return s.repo.List(ctx)
}

func (s *PostService) DeletePost(ctx context.Context, postSlug string) error {
	if err := s.repo.DeleteBySlug(ctx, postSlug); err != nil {
		return err
	}

	svcLogger.Info().Str("slug", postSlug).Msg("Post deleted")
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
