package store_db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarly/domain"
)

func testArticle(id string) *domain.Article {
	return &domain.Article{
		ID:         id,
		Title:      "Attention Is All You Need",
		Summary:    "The dominant sequence transduction models...",
		Authors:    []string{"Ashish Vaswani"},
		Categories: []string{"cs.CL"},
		Link:       "http://arxiv.org/abs/1706.03762v7",
	}
}

func articleJSON(t *testing.T, id string) []byte {
	t.Helper()
	data, err := json.Marshal(testArticle(id))
	require.NoError(t, err)
	return data
}

func TestFetchFavoritesByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreRepository(mock)
	userID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "article_id", "article_data", "created_at"}).
		AddRow(uuid.New(), userID, "http://arxiv.org/abs/1706.03762v7", articleJSON(t, "http://arxiv.org/abs/1706.03762v7"), now).
		AddRow(uuid.New(), userID, "http://arxiv.org/abs/2005.14165v4", articleJSON(t, "http://arxiv.org/abs/2005.14165v4"), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, article_id, article_data, created_at").
		WithArgs(userID).
		WillReturnRows(rows)

	entries, err := repo.FetchFavoritesByUser(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v7", entries[0].ArticleID)
	assert.Equal(t, "Attention Is All You Need", entries[0].Article.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFavoritesByUser_SkipsCorruptSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreRepository(mock)
	userID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "user_id", "article_id", "article_data", "created_at"}).
		AddRow(uuid.New(), userID, "article-corrupt", []byte("{not json"), time.Now()).
		AddRow(uuid.New(), userID, "http://arxiv.org/abs/1706.03762v7", articleJSON(t, "http://arxiv.org/abs/1706.03762v7"), time.Now())

	mock.ExpectQuery("SELECT id, user_id, article_id, article_data, created_at").
		WithArgs(userID).
		WillReturnRows(rows)

	entries, err := repo.FetchFavoritesByUser(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v7", entries[0].ArticleID)
}

func TestInsertFavorite(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreRepository(mock)
	userID := uuid.New()
	article := testArticle("http://arxiv.org/abs/1706.03762v7")

	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(userID, article.ID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.InsertFavorite(context.Background(), userID, article)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFavorite_DuplicateIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreRepository(mock)
	userID := uuid.New()
	article := testArticle("http://arxiv.org/abs/1706.03762v7")

	// ON CONFLICT DO NOTHING: zero rows affected is still success.
	mock.ExpectExec("INSERT INTO favorites").
		WithArgs(userID, article.ID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = repo.InsertFavorite(context.Background(), userID, article)

	assert.NoError(t, err)
}

func TestDeleteFavorite(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStoreRepository(mock)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(userID, "http://arxiv.org/abs/1706.03762v7").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.DeleteFavorite(context.Background(), userID, "http://arxiv.org/abs/1706.03762v7")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavorites_NilPool(t *testing.T) {
	repo := NewStoreRepository(nil)

	_, err := repo.FetchFavoritesByUser(context.Background(), uuid.New())
	assert.Error(t, err)

	err = repo.InsertFavorite(context.Background(), uuid.New(), testArticle("x"))
	assert.Error(t, err)
}
