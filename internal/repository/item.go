package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/wearcast/wearcast/internal/model"
)

// ErrItemNotFound indicates the requested item does not exist.
var ErrItemNotFound = errors.New("item not found")

const itemColumns = "id, name, weather, image_url, owner_id, likes, created_at, updated_at"

// CreateItem inserts a new item into the database.
// The like set starts empty via the column default.
func (r *Repository) CreateItem(ctx context.Context, item *model.Item) error {
	query := `
		INSERT INTO items (id, name, weather, image_url, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		string(item.Weather),
		item.ImageURL,
		item.OwnerID,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetItemByID retrieves an item by its ID.
func (r *Repository) GetItemByID(ctx context.Context, id string) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	return item, nil
}

// ListItems retrieves all items, newest first.
func (r *Repository) ListItems(ctx context.Context) ([]*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// DeleteItem removes an item.
// Ownership must be checked by the caller before deletion.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// AddLike adds userID to the item's like set and returns the updated item.
// The mutation is a single conditional UPDATE, so it is atomic under
// concurrent likers and idempotent when the user is already present.
func (r *Repository) AddLike(ctx context.Context, itemID, userID string) (*model.Item, error) {
	query := `
		UPDATE items
		SET likes = CASE WHEN $2 = ANY (likes) THEN likes ELSE array_append(likes, $2) END
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, itemID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to add like: %w", err)
	}

	return item, nil
}

// RemoveLike removes userID from the item's like set and returns the updated
// item. Removing an absent user is a no-op, not an error.
func (r *Repository) RemoveLike(ctx context.Context, itemID, userID string) (*model.Item, error) {
	query := `
		UPDATE items
		SET likes = array_remove(likes, $2)
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, itemID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to remove like: %w", err)
	}

	return item, nil
}

// scanItem scans a single row into an Item model.
func scanItem(row pgx.Row) (*model.Item, error) {
	var item model.Item
	var weather string
	err := row.Scan(
		&item.ID,
		&item.Name,
		&weather,
		&item.ImageURL,
		&item.OwnerID,
		pq.Array(&item.Likes),
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Weather = model.Weather(weather)
	if item.Likes == nil {
		item.Likes = []string{}
	}
	return &item, nil
}
