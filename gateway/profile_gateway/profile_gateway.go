package profile_gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"scholarly/domain"
	"scholarly/driver/store_db"
	apperrors "scholarly/utils/errors"
)

// ProfileGateway exposes the users table to the auth flows. A missing
// row stays domain.ErrProfileNotFound; everything else is a store
// failure.
type ProfileGateway struct {
	storeRepo *store_db.StoreRepository
}

func NewProfileGateway(storeRepo *store_db.StoreRepository) *ProfileGateway {
	return &ProfileGateway{
		storeRepo: storeRepo,
	}
}

func (g *ProfileGateway) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if g.storeRepo == nil {
		return nil, noStoreError()
	}
	profile, err := g.storeRepo.FetchProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, apperrors.DatabaseError("failed to fetch profile", err, map[string]interface{}{
			"user_id": userID,
		})
	}
	return profile, nil
}

func (g *ProfileGateway) ResolveEmailByUsername(ctx context.Context, username string) (string, error) {
	if g.storeRepo == nil {
		return "", noStoreError()
	}
	email, err := g.storeRepo.FetchEmailByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", err
		}
		return "", apperrors.DatabaseError("failed to resolve username", err, map[string]interface{}{
			"username": username,
		})
	}
	return email, nil
}

func (g *ProfileGateway) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	if g.storeRepo == nil {
		return false, noStoreError()
	}
	taken, err := g.storeRepo.UsernameExists(ctx, username)
	if err != nil {
		return false, apperrors.DatabaseError("failed to check username", err, map[string]interface{}{
			"username": username,
		})
	}
	return taken, nil
}

func noStoreError() *apperrors.AppError {
	return apperrors.DatabaseError("database connection not available", nil, nil)
}
