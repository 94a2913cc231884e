package auth_port

import (
	"context"

	"scholarly/domain"
)

//go:generate mockgen -source=auth_port.go -destination=../../mocks/mock_auth_port.go -package=mocks

// AuthPort defines the interface for identity provider operations.
// Each call maps to exactly one provider round trip; identifier
// fallback and availability checks are usecase policy, not port
// behavior.
type AuthPort interface {
	// LoginWithIdentifier authenticates one identifier/password pair.
	LoginWithIdentifier(ctx context.Context, identifier, password string) (*domain.AuthSession, error)

	// Register creates a new identity with email and username traits.
	Register(ctx context.Context, email, username, password string) (*domain.AuthSession, error)

	// ValidateSession resolves a session token to its current state.
	ValidateSession(ctx context.Context, token string) (*domain.AuthSession, error)

	// Logout revokes the session behind a token.
	Logout(ctx context.Context, token string) error
}
