// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/ventoryhq/ventory/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for all persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
type Store interface {
	ItemStore
	BlogStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// ItemStore defines persistence operations for inventory items.
type ItemStore interface {
	// CreateItem persists a new item and populates item.ID with the
	// store-assigned identifier.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by id. Returns ErrNotFound if absent.
	GetItem(ctx context.Context, id int64) (*models.Item, error)

	// ListItems returns every item in the store, oldest first.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ListItemsByOwner returns the items whose owner email matches,
	// oldest first.
	ListItemsByOwner(ctx context.Context, ownerEmail string) ([]models.Item, error)

	// ListTopItems returns up to limit items, newest first.
	ListTopItems(ctx context.Context, limit int) ([]models.Item, error)

	// UpdateItemQuantity sets the quantity of the item with the given id,
	// leaving every other field untouched. Returns ErrNotFound if the id
	// does not exist.
	UpdateItemQuantity(ctx context.Context, id int64, quantity int64) error

	// DeleteItem removes the item with the given id and returns the number
	// of records removed (0 or 1). A missing id is not an error.
	DeleteItem(ctx context.Context, id int64) (int64, error)
}

// BlogStore defines persistence operations for blog posts.
type BlogStore interface {
	// CreateBlog persists a new post. blog.ID will be populated by the
	// store.
	CreateBlog(ctx context.Context, blog *models.Blog) error

	// GetBlog retrieves a post by id. Returns ErrNotFound if absent.
	GetBlog(ctx context.Context, id string) (*models.Blog, error)

	// ListBlogs returns every post, newest first.
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}

// UserStore defines persistence operations for registered accounts.
type UserStore interface {
	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
