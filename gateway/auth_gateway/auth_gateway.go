package auth_gateway

import (
	"context"
	"errors"

	"scholarly/domain"
	"scholarly/driver/kratos"
)

// AuthGateway adapts the Kratos driver to the auth port. The driver
// already returns domain sessions and domain error sentinels, so this
// layer stays thin.
type AuthGateway struct {
	kratosClient *kratos.Client
}

func NewAuthGateway(kratosClient *kratos.Client) *AuthGateway {
	return &AuthGateway{
		kratosClient: kratosClient,
	}
}

func (g *AuthGateway) LoginWithIdentifier(ctx context.Context, identifier, password string) (*domain.AuthSession, error) {
	if g.kratosClient == nil {
		return nil, errors.New("identity provider not available")
	}
	return g.kratosClient.SubmitPasswordLogin(ctx, identifier, password)
}

func (g *AuthGateway) Register(ctx context.Context, email, username, password string) (*domain.AuthSession, error) {
	if g.kratosClient == nil {
		return nil, errors.New("identity provider not available")
	}
	return g.kratosClient.SubmitPasswordRegistration(ctx, email, username, password)
}

func (g *AuthGateway) ValidateSession(ctx context.Context, token string) (*domain.AuthSession, error) {
	if g.kratosClient == nil {
		return nil, errors.New("identity provider not available")
	}
	return g.kratosClient.ValidateToken(ctx, token)
}

func (g *AuthGateway) Logout(ctx context.Context, token string) error {
	if g.kratosClient == nil {
		return errors.New("identity provider not available")
	}
	return g.kratosClient.RevokeToken(ctx, token)
}
