package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/model"
)

// MemoryPostRepository keeps posts in process memory. It satisfies the same
// contract as the database-backed repository, including one-winner semantics
// for concurrent inserts on the same slug, so it can stand in for it in
// tests and development. Nothing survives a restart.
type MemoryPostRepository struct {
	mu    sync.Mutex
	posts map[string]*model.Post
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts: make(map[string]*model.Post),
	}
}

func (r *MemoryPostRepository) Insert(ctx context.Context, slug, title, content string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[slug]; exists {
		return nil, fmt.Errorf("insert post %q: %w", slug, ErrDuplicateSlug)
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:        model.PostID(uuid.New().String()),
		Title:     title,
		Content:   content,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.posts[slug] = post

	copied := *post
	return &copied, nil
}

func (r *MemoryPostRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[slug]
	if !ok {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}

	copied := *post
	return &copied, nil
}

func (r *MemoryPostRepository) List(ctx context.Context) ([]model.PostSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]model.PostSummary, 0, len(r.posts))
	for _, post := range r.posts {
		summaries = append(summaries, post.Summary())
	}

	slices.SortStableFunc(summaries, func(a, b model.PostSummary) int {
		return -a.CreatedAt.Compare(b.CreatedAt)
	})

	return summaries, nil
}

func (r *MemoryPostRepository) UpdateBySlug(ctx context.Context, slug, title, content string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[slug]
	if !ok {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now().UTC()

	copied := *post
	return &copied, nil
}

func (r *MemoryPostRepository) DeleteBySlug(ctx context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[slug]; !ok {
		return fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}

	delete(r.posts, slug)
	return nil
}
