package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"inkwell/internal/cache"
	"inkwell/internal/db"
	"inkwell/internal/model"
	"inkwell/internal/util"
	"inkwell/internal/util/compression"
)

type DbPostRepository struct { // implements PostRepository
	db         db.Db
	compressor compression.Compressor

	// Read cache keyed by slug. Filled on read, insert and update,
	// evicted on delete. The database stays the source of truth.
	posts *cache.Cache[string, *model.Post]
}

func NewDbPostRepository(db db.Db, compressor compression.Compressor) *DbPostRepository {
	return &DbPostRepository{
		db:         db,
		compressor: compressor,
		posts:      cache.NewCache[string, *model.Post](),
	}
}

func (r *DbPostRepository) Insert(ctx context.Context, slug, title, content string) (*model.Post, error) {
	compressed, err := r.compressor.Compress([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("error compressing content: %w", err)
	}

	post := &model.Post{
		ID:          model.PostID(uuid.New().String()),
		Title:       title,
		Content:     content,
		Slug:        slug,
		ContentHash: util.ContentHash(compressed),
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	// Single statement against the unique slug index. No check-then-write:
	// the constraint violation is the collision signal.
	_, err = r.db.Exec(ctx,
		`INSERT INTO posts (id, slug, title, content, content_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Slug, post.Title, compressed, post.ContentHash, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert post %q: %w", slug, ErrDuplicateSlug)
		}
		return nil, fmt.Errorf("error saving post: %w", err)
	}

	cached := *post
	r.posts.Set(slug, &cached)

	repoLogger.Debug().Str("slug", slug).Str("id", string(post.ID)).Msg("Post saved")

	return post, nil
}

func (r *DbPostRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	// Callers get their own copy: mutating a returned post must never
	// reach the cache or other callers.
	if post, ok := r.posts.Get(slug); ok {
		copied := *post
		return &copied, nil
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, slug, title, content, content_hash, created_at, updated_at FROM posts WHERE slug = ?`, slug)

	post, err := r.scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("error reading post: %w", err)
	}

	r.posts.Set(slug, post)

	copied := *post
	return &copied, nil
}

func (r *DbPostRepository) List(ctx context.Context) ([]model.PostSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT title, slug, created_at, updated_at FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.PostSummary, 0)
	for rows.Next() {
		var s model.PostSummary
		if err := rows.Scan(&s.Title, &s.Slug, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return summaries, nil
}

func (r *DbPostRepository) UpdateBySlug(ctx context.Context, slug, title, content string) (*model.Post, error) {
	compressed, err := r.compressor.Compress([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("error compressing content: %w", err)
	}

	contentHash := util.ContentHash(compressed)
	updatedAt := time.Now().UTC()

	// Slug, id and created_at are immutable. The title may drift from the
	// slug after edits; the slug is the post's permanent identity.
	res, err := r.db.Exec(ctx,
		`UPDATE posts SET title = ?, content = ?, content_hash = ?, updated_at = ? WHERE slug = ?`,
		title, compressed, contentHash, updatedAt, slug,
	)
	if err != nil {
		return nil, fmt.Errorf("error saving post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error saving post: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}

	r.posts.Delete(slug)
	return r.FindBySlug(ctx, slug)
}

func (r *DbPostRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}

	r.posts.Delete(slug)

	repoLogger.Debug().Str("slug", slug).Msg("Post deleted")
	return nil
}

func (r *DbPostRepository) scanPost(row *sql.Row) (*model.Post, error) {
	var post model.Post
	var compressed []byte

	err := row.Scan(&post.ID, &post.Slug, &post.Title, &compressed, &post.ContentHash, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}

	content, err := r.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("error decompressing content: %w", err)
	}
	post.Content = string(content)

	return &post, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
