package profile_port

import (
	"context"

	"github.com/google/uuid"

	"scholarly/domain"
)

//go:generate mockgen -source=profile_port.go -destination=../../mocks/mock_profile_port.go -package=mocks

// ProfilePort reads the public profile table. Profiles are written by
// the identity provider's registration webhook, never by this service.
type ProfilePort interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	ResolveEmailByUsername(ctx context.Context, username string) (string, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
}
