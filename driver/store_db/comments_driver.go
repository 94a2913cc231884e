package store_db

import (
	"context"
	"errors"
	"fmt"

	"scholarly/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchCommentsByArticle returns all comments for an article, newest
// first. Comment reads are not scoped to the current user.
func (r *StoreRepository) FetchCommentsByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, article_id, user_email, username, content, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.ArticleID, &c.UserEmail, &c.Username, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, nil
}

// InsertComment stores a comment and returns it with the store-assigned
// id and creation timestamp.
func (r *StoreRepository) InsertComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		INSERT INTO comments (user_id, article_id, user_email, username, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		comment.UserID, comment.ArticleID, comment.UserEmail, comment.Username, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// FetchCommentByID returns a single comment or domain.ErrCommentNotFound.
func (r *StoreRepository) FetchCommentByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, article_id, user_email, username, content, created_at
		FROM comments
		WHERE id = $1
	`

	var c domain.Comment
	err := r.pool.QueryRow(ctx, query, commentID).Scan(
		&c.ID, &c.UserID, &c.ArticleID, &c.UserEmail, &c.Username, &c.Content, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return &c, nil
}

// DeleteComment removes a comment. The user_id predicate holds the
// author-only invariant at the store even if a caller skips the
// ownership check.
func (r *StoreRepository) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `DELETE FROM comments WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, commentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}
