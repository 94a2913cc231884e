package store_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"scholarly/domain"
	"scholarly/utils/logger"

	"github.com/google/uuid"
)

// FetchHistoryByUser returns the user's reading history, most recently
// viewed first.
func (r *StoreRepository) FetchHistoryByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, article_id, article_data, viewed_at
		FROM history
		WHERE user_id = $1
		ORDER BY viewed_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var articleData []byte
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.ArticleID, &articleData, &entry.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if err := json.Unmarshal(articleData, &entry.Article); err != nil {
			logger.SafeWarnContext(ctx, "skipping history entry with corrupt article snapshot",
				"history_id", entry.ID, "error", err)
			continue
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}

// UpsertHistory records a view. A repeat view advances viewed_at on the
// existing row instead of appending; the unique constraint keeps this
// at one row per (user, article) even under concurrent views.
func (r *StoreRepository) UpsertHistory(ctx context.Context, userID uuid.UUID, article *domain.Article) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	articleData, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article snapshot: %w", err)
	}

	query := `
		INSERT INTO history (user_id, article_id, article_data)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id) DO UPDATE
		SET viewed_at = CURRENT_TIMESTAMP
	`

	if _, err := r.pool.Exec(ctx, query, userID, article.ID, articleData); err != nil {
		return fmt.Errorf("failed to upsert history entry: %w", err)
	}

	return nil
}
