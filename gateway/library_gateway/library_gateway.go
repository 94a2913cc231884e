package library_gateway

import (
	"context"

	"github.com/google/uuid"

	"scholarly/domain"
	"scholarly/driver/store_db"
	apperrors "scholarly/utils/errors"
)

// LibraryGateway backs the favorite, history and comment ports with
// the store repository. The unique (user, article) constraints live in
// the schema; this layer translates store failures into coded errors.
// Not-found conditions pass through as domain sentinels.
type LibraryGateway struct {
	storeRepo *store_db.StoreRepository
}

func NewLibraryGateway(storeRepo *store_db.StoreRepository) *LibraryGateway {
	return &LibraryGateway{
		storeRepo: storeRepo,
	}
}

func (g *LibraryGateway) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.FavoriteEntry, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	favorites, err := g.storeRepo.FetchFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch favorites", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return favorites, nil
}

func (g *LibraryGateway) AddFavorite(ctx context.Context, userID uuid.UUID, article *domain.Article) error {
	if g.storeRepo == nil {
		return noStoreError()
	}
	if err := g.storeRepo.InsertFavorite(ctx, userID, article); err != nil {
		return apperrors.DatabaseError("failed to add favorite", err, map[string]interface{}{
			"user_id":    userID,
			"article_id": article.ID,
		})
	}
	return nil
}

func (g *LibraryGateway) RemoveFavorite(ctx context.Context, userID uuid.UUID, articleID string) error {
	if g.storeRepo == nil {
		return noStoreError()
	}
	if err := g.storeRepo.DeleteFavorite(ctx, userID, articleID); err != nil {
		return apperrors.DatabaseError("failed to remove favorite", err, map[string]interface{}{
			"user_id":    userID,
			"article_id": articleID,
		})
	}
	return nil
}

func (g *LibraryGateway) ListHistory(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	history, err := g.storeRepo.FetchHistoryByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch history", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return history, nil
}

func (g *LibraryGateway) RecordView(ctx context.Context, userID uuid.UUID, article *domain.Article) error {
	if g.storeRepo == nil {
		return noStoreError()
	}
	if err := g.storeRepo.UpsertHistory(ctx, userID, article); err != nil {
		return apperrors.DatabaseError("failed to record view", err, map[string]interface{}{
			"user_id":    userID,
			"article_id": article.ID,
		})
	}
	return nil
}

func (g *LibraryGateway) ListCommentsByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	comments, err := g.storeRepo.FetchCommentsByArticle(ctx, articleID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to fetch comments", err, map[string]interface{}{
			"article_id": articleID,
		})
	}
	return comments, nil
}

func (g *LibraryGateway) AddComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	created, err := g.storeRepo.InsertComment(ctx, comment)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to add comment", err, map[string]interface{}{
			"article_id": comment.ArticleID,
		})
	}
	return created, nil
}

// GetComment and RemoveComment return the driver's error untouched:
// domain.ErrCommentNotFound drives ownership and 404 handling upstream.
func (g *LibraryGateway) GetComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	return g.storeRepo.FetchCommentByID(ctx, commentID)
}

func (g *LibraryGateway) RemoveComment(ctx context.Context, commentID, userID uuid.UUID) error {
	if g.storeRepo == nil {
		return noStoreError()
	}
	return g.storeRepo.DeleteComment(ctx, commentID, userID)
}

func noStoreError() *apperrors.AppError {
	return apperrors.DatabaseError("database connection not available", nil, nil)
}
