package library_port

import (
	"context"

	"github.com/google/uuid"

	"scholarly/domain"
)

//go:generate mockgen -source=library_port.go -destination=../../mocks/mock_library_port.go -package=mocks

// FavoritePort persists per-user favorite snapshots. Adding an already
// favorited article is a no-op at the storage level.
type FavoritePort interface {
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.FavoriteEntry, error)
	AddFavorite(ctx context.Context, userID uuid.UUID, article *domain.Article) error
	RemoveFavorite(ctx context.Context, userID uuid.UUID, articleID string) error
}

// HistoryPort persists per-user view history, one row per article with
// the view timestamp advanced on repeat views.
type HistoryPort interface {
	ListHistory(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error)
	RecordView(ctx context.Context, userID uuid.UUID, article *domain.Article) error
}

// CommentPort persists article comments.
type CommentPort interface {
	ListCommentsByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error)
	AddComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	RemoveComment(ctx context.Context, commentID, userID uuid.UUID) error
}
