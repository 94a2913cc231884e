package store_db

import (
	"context"
	"errors"
	"fmt"

	"scholarly/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FetchProfileByUserID returns the public profile row for an identity,
// or domain.ErrProfileNotFound. The row itself is materialized by the
// identity provider's registration webhook, never by this service.
func (r *StoreRepository) FetchProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `
		SELECT id, user_id, username, email, created_at
		FROM users
		WHERE user_id = $1
	`

	var p domain.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Username, &p.Email, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &p, nil
}

// FetchEmailByUsername resolves a username to the account email for the
// login fallback chain. Usernames are unique, so at most one row matches.
func (r *StoreRepository) FetchEmailByUsername(ctx context.Context, username string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("database connection not available")
	}

	query := `SELECT email FROM users WHERE username = $1`

	var email string
	err := r.pool.QueryRow(ctx, query, username).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrProfileNotFound
		}
		return "", fmt.Errorf("failed to look up username: %w", err)
	}

	return email, nil
}

// UsernameExists reports whether a username is already reserved.
func (r *StoreRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}
