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

// FetchFavoritesByUser returns the user's favorites, newest first.
func (r *StoreRepository) FetchFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FavoriteEntry, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, article_id, article_data, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FavoriteEntry
	for rows.Next() {
		var entry domain.FavoriteEntry
		var articleData []byte
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.ArticleID, &articleData, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		if err := json.Unmarshal(articleData, &entry.Article); err != nil {
			// A corrupt snapshot should not hide the rest of the list.
			logger.SafeWarnContext(ctx, "skipping favorite with corrupt article snapshot",
				"favorite_id", entry.ID, "error", err)
			continue
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorite rows: %w", err)
	}

	return entries, nil
}

// InsertFavorite stores a favorite with a full article snapshot. The
// (user_id, article_id) unique constraint makes concurrent duplicate
// inserts collapse into one row.
func (r *StoreRepository) InsertFavorite(ctx context.Context, userID uuid.UUID, article *domain.Article) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	articleData, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article snapshot: %w", err)
	}

	query := `
		INSERT INTO favorites (user_id, article_id, article_data)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, userID, article.ID, articleData); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

// DeleteFavorite removes the user's favorite for an article. Deleting
// a favorite that does not exist is not an error.
func (r *StoreRepository) DeleteFavorite(ctx context.Context, userID uuid.UUID, articleID string) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `DELETE FROM favorites WHERE user_id = $1 AND article_id = $2`

	if _, err := r.pool.Exec(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}
