package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ventoryhq/ventory/internal/models"
	"github.com/ventoryhq/ventory/internal/storage"
)

const itemColumns = "id, name, image, price, quantity, supplier, description, owner_email, created_at"

// CreateItem inserts a new item and populates its store-assigned id.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO items (name, image, price, quantity, supplier, description, owner_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		item.Name,
		item.Image,
		item.Price,
		item.Quantity,
		item.Supplier,
		item.Description,
		item.OwnerEmail,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned item id: %w", err)
	}
	item.ID = id

	return nil
}

// GetItem retrieves an item by its id.
func (s *SQLiteStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	item := &models.Item{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Image,
		&item.Price,
		&item.Quantity,
		&item.Supplier,
		&item.Description,
		&item.OwnerEmail,
		&item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListItems returns every item in the store, oldest first.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id ASC`
	return s.queryItems(ctx, query)
}

// ListItemsByOwner returns the items owned by the given email, oldest first.
func (s *SQLiteStore) ListItemsByOwner(ctx context.Context, ownerEmail string) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_email = ? ORDER BY id ASC`
	return s.queryItems(ctx, query, ownerEmail)
}

// ListTopItems returns up to limit items ordered newest first. The id column
// is AUTOINCREMENT, so descending id is descending insertion order.
func (s *SQLiteStore) ListTopItems(ctx context.Context, limit int) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id DESC LIMIT ?`
	return s.queryItems(ctx, query, limit)
}

// UpdateItemQuantity sets the quantity of the item with the given id,
// leaving every other field untouched.
func (s *SQLiteStore) UpdateItemQuantity(ctx context.Context, id int64, quantity int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE items SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update item quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteItem removes the item with the given id and returns how many records
// were removed (0 or 1). A missing id is not an error.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return deleted, nil
}

// queryItems runs an item SELECT and scans the full result set.
func (s *SQLiteStore) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Image,
			&item.Price,
			&item.Quantity,
			&item.Supplier,
			&item.Description,
			&item.OwnerEmail,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}
