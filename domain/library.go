package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteEntry wraps one Article snapshot taken at favoriting time.
// At most one entry exists per (user, article) pair.
type FavoriteEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ArticleID string    `json:"article_id"`
	Article   Article   `json:"article_data"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records the most recent view of an article. Viewing an
// already-recorded article advances ViewedAt in place; this is not an
// append log.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ArticleID string    `json:"article_id"`
	Article   Article   `json:"article_data"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// Comment belongs to one user and one article, by article identifier.
// Deletable only by its author.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ArticleID string    `json:"article_id"`
	UserEmail string    `json:"user_email"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the public profile row materialized by the identity
// provider's registration webhook. Usernames are globally unique.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
