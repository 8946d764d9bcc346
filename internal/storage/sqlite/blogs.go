package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ventoryhq/ventory/internal/models"
	"github.com/ventoryhq/ventory/internal/storage"
)

// CreateBlog inserts a new post, assigning a fresh UUID if none is set.
func (s *SQLiteStore) CreateBlog(ctx context.Context, blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	if blog.CreatedAt == 0 {
		blog.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO blogs (id, title, content, image, owner_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Image,
		blog.OwnerEmail,
		blog.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// GetBlog retrieves a post by its id.
func (s *SQLiteStore) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	query := `
		SELECT id, title, content, image, owner_email, created_at
		FROM blogs
		WHERE id = ?
	`

	blog := &models.Blog{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.Image,
		&blog.OwnerEmail,
		&blog.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return blog, nil
}

// ListBlogs returns every post, newest first.
func (s *SQLiteStore) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT id, title, content, image, owner_email, created_at
		FROM blogs
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Content,
			&blog.Image,
			&blog.OwnerEmail,
			&blog.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}
