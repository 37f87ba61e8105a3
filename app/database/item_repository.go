package database

import (
	"database/sql"
	"fmt"

	"github.com/newslens/newslens/app/feed"
)

// ItemRepository archives fetched news items. It satisfies feed.Archive so
// detail lookups can fall back to previously seen items after the live
// listing has rotated.
type ItemRepository struct {
	db *DB
}

var _ feed.Archive = (*ItemRepository)(nil)

func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) UpsertItems(items []feed.Item) error {
	for _, item := range items {
		_, err := r.db.Exec(`
			INSERT INTO news_items (item_id, link, title, summary, category, source, published_at, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (item_id, link) DO UPDATE SET
				title = excluded.title,
				summary = excluded.summary,
				category = excluded.category,
				source = excluded.source,
				published_at = excluded.published_at,
				fetched_at = CURRENT_TIMESTAMP
		`, item.ID, item.Link, item.Title, item.Summary, item.Category, item.Source, item.PublishedAt)

		if err != nil {
			return fmt.Errorf("failed to upsert item: %w", err)
		}
	}

	return nil
}

// GetItem returns the most recently fetched item with the given id, or nil
// when the archive has never seen it.
func (r *ItemRepository) GetItem(itemID int) (*feed.Item, error) {
	var item feed.Item

	err := r.db.QueryRow(`
		SELECT item_id, link, title, summary, category, source, published_at
		FROM news_items
		WHERE item_id = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, itemID).Scan(&item.ID, &item.Link, &item.Title, &item.Summary,
		&item.Category, &item.Source, &item.PublishedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (r *ItemRepository) GetItemCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM news_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
