// Package library_usecase holds the per-user library state: favorites,
// view history and comments. Reads are served from an in-memory
// snapshot per user; every mutation goes to storage first and then
// reloads the snapshot, so the snapshot never drifts from the store.
package library_usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"scholarly/domain"
	"scholarly/port/library_port"
	"scholarly/port/profile_port"
)

// userSnapshot is one user's materialized library view.
type userSnapshot struct {
	favorites   []*domain.FavoriteEntry
	history     []*domain.HistoryEntry
	favoriteIDs map[string]bool
}

type LibraryUsecase struct {
	favoritePort library_port.FavoritePort
	historyPort  library_port.HistoryPort
	commentPort  library_port.CommentPort
	profilePort  profile_port.ProfilePort
	logger       *slog.Logger

	mu        sync.RWMutex
	snapshots map[uuid.UUID]*userSnapshot

	// toggles collapses concurrent toggle requests for the same
	// (user, article) pair into one storage round trip.
	toggles singleflight.Group
}

func NewLibraryUsecase(
	favoritePort library_port.FavoritePort,
	historyPort library_port.HistoryPort,
	commentPort library_port.CommentPort,
	profilePort profile_port.ProfilePort,
) *LibraryUsecase {
	return &LibraryUsecase{
		favoritePort: favoritePort,
		historyPort:  historyPort,
		commentPort:  commentPort,
		profilePort:  profilePort,
		logger:       slog.Default(),
		snapshots:    make(map[uuid.UUID]*userSnapshot),
	}
}

// ListFavorites returns the user's favorites, newest first, loading
// the snapshot on first access.
func (u *LibraryUsecase) ListFavorites(ctx context.Context) ([]*domain.FavoriteEntry, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := u.snapshotFor(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return snap.favorites, nil
}

// ListHistory returns the user's view history, most recent first.
func (u *LibraryUsecase) ListHistory(ctx context.Context) ([]*domain.HistoryEntry, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := u.snapshotFor(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return snap.history, nil
}

// IsFavorited reports whether the article is in the user's favorites.
func (u *LibraryUsecase) IsFavorited(ctx context.Context, articleID string) (bool, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return false, err
	}

	snap, err := u.snapshotFor(ctx, user.UserID)
	if err != nil {
		return false, err
	}
	return snap.favoriteIDs[articleID], nil
}

// ToggleFavorite flips the favorite state of one article and returns
// the state after the flip. Concurrent toggles of the same article by
// the same user share a single execution, so a double-click cannot
// produce two inserts or a delete racing an insert.
func (u *LibraryUsecase) ToggleFavorite(ctx context.Context, article *domain.Article) (bool, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return false, err
	}

	key := user.UserID.String() + ":" + article.ID
	result, err, _ := u.toggles.Do(key, func() (interface{}, error) {
		snap, err := u.snapshotFor(ctx, user.UserID)
		if err != nil {
			return false, err
		}

		nowFavorited := !snap.favoriteIDs[article.ID]
		if nowFavorited {
			err = u.favoritePort.AddFavorite(ctx, user.UserID, article)
		} else {
			err = u.favoritePort.RemoveFavorite(ctx, user.UserID, article.ID)
		}
		if err != nil {
			return false, err
		}

		if err := u.reloadSnapshot(ctx, user.UserID); err != nil {
			return false, err
		}
		return nowFavorited, nil
	})
	if err != nil {
		u.logger.Error("favorite toggle failed",
			"error", err, "user_id", user.UserID, "article_id", article.ID)
		return false, err
	}

	return result.(bool), nil
}

// RecordView upserts the article into the user's history. Repeat views
// advance the timestamp of the existing row; they never add rows.
func (u *LibraryUsecase) RecordView(ctx context.Context, article *domain.Article) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.historyPort.RecordView(ctx, user.UserID, article); err != nil {
		u.logger.Error("failed to record view",
			"error", err, "user_id", user.UserID, "article_id", article.ID)
		return err
	}

	return u.reloadSnapshot(ctx, user.UserID)
}

// ListComments returns all comments on an article, newest first.
// Comments are public; no user context is required.
func (u *LibraryUsecase) ListComments(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	return u.commentPort.ListCommentsByArticle(ctx, articleID)
}

// PostComment stores a new comment authored by the current user. The
// display name prefers the profile username and falls back to the
// session username, then to the email local part.
func (u *LibraryUsecase) PostComment(ctx context.Context, articleID, content string) (*domain.Comment, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	comment := &domain.Comment{
		UserID:    user.UserID,
		ArticleID: articleID,
		UserEmail: user.Email,
		Username:  u.displayName(ctx, user),
		Content:   content,
	}

	created, err := u.commentPort.AddComment(ctx, comment)
	if err != nil {
		u.logger.Error("failed to post comment",
			"error", err, "user_id", user.UserID, "article_id", articleID)
		return nil, err
	}

	return created, nil
}

// DeleteComment removes a comment owned by the current user. Deleting
// another user's comment fails with ErrNotCommentOwner.
func (u *LibraryUsecase) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := u.commentPort.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if existing.UserID != user.UserID {
		return domain.ErrNotCommentOwner
	}

	return u.commentPort.RemoveComment(ctx, commentID, user.UserID)
}

// Evict drops a user's snapshot. Called when the user's session ends
// or fails validation; the next authenticated access reloads.
func (u *LibraryUsecase) Evict(userID uuid.UUID) {
	u.mu.Lock()
	delete(u.snapshots, userID)
	u.mu.Unlock()
}

func (u *LibraryUsecase) displayName(ctx context.Context, user *domain.UserContext) string {
	if profile, err := u.profilePort.GetProfileByUserID(ctx, user.UserID); err == nil && profile.Username != "" {
		return profile.Username
	}
	if user.Username != "" {
		return user.Username
	}
	if at := strings.Index(user.Email, "@"); at > 0 {
		return user.Email[:at]
	}
	return user.Email
}

func (u *LibraryUsecase) snapshotFor(ctx context.Context, userID uuid.UUID) (*userSnapshot, error) {
	u.mu.RLock()
	snap, ok := u.snapshots[userID]
	u.mu.RUnlock()
	if ok {
		return snap, nil
	}

	if err := u.reloadSnapshot(ctx, userID); err != nil {
		return nil, err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshots[userID], nil
}

// reloadSnapshot rebuilds one user's snapshot from storage. Mutations
// call this after writing, so readers always observe the post-write
// state instead of a locally patched guess.
func (u *LibraryUsecase) reloadSnapshot(ctx context.Context, userID uuid.UUID) error {
	favorites, err := u.favoritePort.ListFavorites(ctx, userID)
	if err != nil {
		return err
	}
	history, err := u.historyPort.ListHistory(ctx, userID)
	if err != nil {
		return err
	}

	favoriteIDs := make(map[string]bool, len(favorites))
	for _, fav := range favorites {
		favoriteIDs[fav.ArticleID] = true
	}

	u.mu.Lock()
	u.snapshots[userID] = &userSnapshot{
		favorites:   favorites,
		history:     history,
		favoriteIDs: favoriteIDs,
	}
	u.mu.Unlock()

	return nil
}
