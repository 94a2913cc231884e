package library_usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"scholarly/domain"
	"scholarly/mocks"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		Username:  "reader",
		SessionID: "sess-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

type fixture struct {
	favorites *mocks.MockFavoritePort
	history   *mocks.MockHistoryPort
	comments  *mocks.MockCommentPort
	profiles  *mocks.MockProfilePort
	usecase   *LibraryUsecase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		favorites: mocks.NewMockFavoritePort(ctrl),
		history:   mocks.NewMockHistoryPort(ctrl),
		comments:  mocks.NewMockCommentPort(ctrl),
		profiles:  mocks.NewMockProfilePort(ctrl),
	}
	f.usecase = NewLibraryUsecase(f.favorites, f.history, f.comments, f.profiles)
	return f
}

func TestToggleFavorite_SelfInverse(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	article := &domain.Article{ID: "http://arxiv.org/abs/1706.03762v7", Title: "Attention Is All You Need"}

	entry := &domain.FavoriteEntry{
		ID:        uuid.New(),
		UserID:    userID,
		ArticleID: article.ID,
		Article:   *article,
	}

	gomock.InOrder(
		// First access loads an empty snapshot, then the add runs and
		// the snapshot reloads with the new row.
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
		f.favorites.EXPECT().AddFavorite(gomock.Any(), userID, article).Return(nil),
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return([]*domain.FavoriteEntry{entry}, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
		// Second toggle sees the favorited snapshot and removes.
		f.favorites.EXPECT().RemoveFavorite(gomock.Any(), userID, article.ID).Return(nil),
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
	)

	favorited, err := f.usecase.ToggleFavorite(ctx, article)
	if err != nil {
		t.Fatalf("first toggle error: %v", err)
	}
	if !favorited {
		t.Fatal("first toggle should favorite")
	}

	favorited, err = f.usecase.ToggleFavorite(ctx, article)
	if err != nil {
		t.Fatalf("second toggle error: %v", err)
	}
	if favorited {
		t.Fatal("second toggle should unfavorite")
	}

	// Back to the initial state.
	isFav, err := f.usecase.IsFavorited(ctx, article.ID)
	if err != nil {
		t.Fatalf("IsFavorited error: %v", err)
	}
	if isFav {
		t.Error("article still favorited after toggle pair")
	}
}

func TestToggleFavorite_StorageErrorLeavesSnapshotUntouched(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	article := &domain.Article{ID: "http://arxiv.org/abs/9999.00001v1"}

	storageErr := errors.New("connection reset")

	gomock.InOrder(
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
		f.favorites.EXPECT().AddFavorite(gomock.Any(), userID, article).Return(storageErr),
	)

	if _, err := f.usecase.ToggleFavorite(ctx, article); !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}

	isFav, err := f.usecase.IsFavorited(ctx, article.ID)
	if err != nil {
		t.Fatalf("IsFavorited error: %v", err)
	}
	if isFav {
		t.Error("failed add must not mark the article favorited")
	}
}

func TestRecordView_ReloadsSnapshot(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	article := &domain.Article{ID: "http://arxiv.org/abs/1706.03762v7"}

	entry := &domain.HistoryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		ArticleID: article.ID,
		Article:   *article,
		ViewedAt:  time.Now(),
	}

	gomock.InOrder(
		f.history.EXPECT().RecordView(gomock.Any(), userID, article).Return(nil),
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return([]*domain.HistoryEntry{entry}, nil),
	)

	if err := f.usecase.RecordView(ctx, article); err != nil {
		t.Fatalf("RecordView error: %v", err)
	}

	history, err := f.usecase.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory error: %v", err)
	}
	if len(history) != 1 || history[0].ArticleID != article.ID {
		t.Errorf("unexpected history after view: %+v", history)
	}
}

func TestListFavorites_RequiresUserContext(t *testing.T) {
	f := newFixture(t)
	if _, err := f.usecase.ListFavorites(context.Background()); err == nil {
		t.Error("expected error without user context")
	}
}

func TestPostComment(t *testing.T) {
	userID := uuid.New()
	articleID := "http://arxiv.org/abs/1706.03762v7"

	t.Run("empty content rejected before the port", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.PostComment(authedContext(userID), articleID, "   ")
		if !errors.Is(err, domain.ErrEmptyComment) {
			t.Fatalf("expected ErrEmptyComment, got %v", err)
		}
	})

	t.Run("profile username preferred", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().GetProfileByUserID(gomock.Any(), userID).
			Return(&domain.UserProfile{UserID: userID, Username: "profile_name"}, nil)
		f.comments.EXPECT().AddComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
				if c.Username != "profile_name" {
					t.Errorf("comment username = %q, want profile_name", c.Username)
				}
				if c.Content != "great paper" {
					t.Errorf("content not trimmed/preserved: %q", c.Content)
				}
				return c, nil
			})

		if _, err := f.usecase.PostComment(authedContext(userID), articleID, " great paper "); err != nil {
			t.Fatalf("PostComment error: %v", err)
		}
	})

	t.Run("session username fallback when profile missing", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().GetProfileByUserID(gomock.Any(), userID).
			Return(nil, domain.ErrProfileNotFound)
		f.comments.EXPECT().AddComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
				if c.Username != "reader" {
					t.Errorf("comment username = %q, want session fallback reader", c.Username)
				}
				return c, nil
			})

		if _, err := f.usecase.PostComment(authedContext(userID), articleID, "nice"); err != nil {
			t.Fatalf("PostComment error: %v", err)
		}
	})
}

func TestDeleteComment_Ownership(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	commentID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().GetComment(gomock.Any(), commentID).
			Return(&domain.Comment{ID: commentID, UserID: userID}, nil)
		f.comments.EXPECT().RemoveComment(gomock.Any(), commentID, userID).Return(nil)

		if err := f.usecase.DeleteComment(authedContext(userID), commentID); err != nil {
			t.Fatalf("DeleteComment error: %v", err)
		}
	})

	t.Run("non-owner rejected without touching storage", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().GetComment(gomock.Any(), commentID).
			Return(&domain.Comment{ID: commentID, UserID: otherID}, nil)

		err := f.usecase.DeleteComment(authedContext(userID), commentID)
		if !errors.Is(err, domain.ErrNotCommentOwner) {
			t.Fatalf("expected ErrNotCommentOwner, got %v", err)
		}
	})

	t.Run("missing comment propagates not found", func(t *testing.T) {
		f := newFixture(t)
		f.comments.EXPECT().GetComment(gomock.Any(), commentID).
			Return(nil, domain.ErrCommentNotFound)

		err := f.usecase.DeleteComment(authedContext(userID), commentID)
		if !errors.Is(err, domain.ErrCommentNotFound) {
			t.Fatalf("expected ErrCommentNotFound, got %v", err)
		}
	})
}

// Rapid repeated toggles of one (user, article) pair must collapse
// into a single store mutation: one insert, no delete racing it, and
// every caller observing the shared outcome.
func TestToggleFavorite_ConcurrentTogglesCollapse(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	article := &domain.Article{ID: "http://arxiv.org/abs/1706.03762v7", Title: "Attention Is All You Need"}

	// Stateful fake store: a duplicate insert or a delete of a missing
	// row means the serialization broke.
	var storeMu sync.Mutex
	favorited := false
	var adds, removes int32
	release := make(chan struct{})

	f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).DoAndReturn(
		func(context.Context, uuid.UUID) ([]*domain.FavoriteEntry, error) {
			storeMu.Lock()
			defer storeMu.Unlock()
			if favorited {
				return []*domain.FavoriteEntry{{UserID: userID, ArticleID: article.ID, Article: *article}}, nil
			}
			return nil, nil
		}).AnyTimes()
	f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	f.favorites.EXPECT().AddFavorite(gomock.Any(), userID, article).DoAndReturn(
		func(context.Context, uuid.UUID, *domain.Article) error {
			<-release
			storeMu.Lock()
			defer storeMu.Unlock()
			if favorited {
				return errors.New("duplicate favorite row")
			}
			favorited = true
			atomic.AddInt32(&adds, 1)
			return nil
		}).AnyTimes()
	f.favorites.EXPECT().RemoveFavorite(gomock.Any(), userID, article.ID).DoAndReturn(
		func(context.Context, uuid.UUID, string) error {
			storeMu.Lock()
			defer storeMu.Unlock()
			if !favorited {
				return errors.New("delete of missing favorite row")
			}
			favorited = false
			atomic.AddInt32(&removes, 1)
			return nil
		}).AnyTimes()

	const callers = 8
	results := make([]bool, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.usecase.ToggleFavorite(ctx, article)
		}(i)
	}

	// Hold the insert open long enough for every caller to join the
	// in-flight toggle, then let it finish.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if !results[i] {
			t.Errorf("caller %d observed favorited=false, want the shared insert outcome", i)
		}
	}
	if got := atomic.LoadInt32(&adds); got != 1 {
		t.Errorf("adds = %d, want exactly 1", got)
	}
	if got := atomic.LoadInt32(&removes); got != 0 {
		t.Errorf("removes = %d, want 0", got)
	}

	isFav, err := f.usecase.IsFavorited(ctx, article.ID)
	if err != nil {
		t.Fatalf("IsFavorited error: %v", err)
	}
	if !isFav {
		t.Error("article should be favorited after the collapsed toggles")
	}
}

func TestEvict_DropsSnapshot(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	// First access loads, eviction forces a second load.
	gomock.InOrder(
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
		f.favorites.EXPECT().ListFavorites(gomock.Any(), userID).Return(nil, nil),
		f.history.EXPECT().ListHistory(gomock.Any(), userID).Return(nil, nil),
	)

	if _, err := f.usecase.ListFavorites(ctx); err != nil {
		t.Fatalf("first ListFavorites error: %v", err)
	}
	// Cached: no further port calls expected.
	if _, err := f.usecase.ListFavorites(ctx); err != nil {
		t.Fatalf("cached ListFavorites error: %v", err)
	}

	f.usecase.Evict(userID)

	if _, err := f.usecase.ListFavorites(ctx); err != nil {
		t.Fatalf("post-evict ListFavorites error: %v", err)
	}
}
