package kratos

import (
	"context"
	"fmt"

	kratosclient "github.com/ory/kratos-client-go"

	"scholarly/domain"
	"scholarly/utils/logger"
)

// SubmitPasswordLogin runs a full native login flow against Kratos with
// the given identifier (email or username) and password. The caller
// decides what the identifier is; this method does no fallback.
func (c *Client) SubmitPasswordLogin(ctx context.Context, identifier, password string) (*domain.AuthSession, error) {
	flow, httpResp, err := c.publicAPI.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		logger.SafeErrorContext(ctx, "kratos login flow creation failed",
			"error", err, "http_status", getHTTPStatus(httpResp))
		return nil, mapKratosError(err, httpResp, "login_flow_create")
	}

	body := kratosclient.NewUpdateLoginFlowWithPasswordMethod(identifier, "password", password)

	result, httpResp, err := c.publicAPI.FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(body)).
		Execute()
	if err != nil {
		logger.SafeWarnContext(ctx, "kratos login flow submission failed",
			"flow_id", flow.Id, "http_status", getHTTPStatus(httpResp))
		return nil, mapKratosError(err, httpResp, "login_flow_submit")
	}

	token := ""
	if result.SessionToken != nil {
		token = *result.SessionToken
	}

	return sessionToDomain(&result.Session, token)
}

// SubmitPasswordRegistration runs a full native registration flow. The
// identity traits carry both the email and the display username.
func (c *Client) SubmitPasswordRegistration(ctx context.Context, email, username, password string) (*domain.AuthSession, error) {
	flow, httpResp, err := c.publicAPI.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		logger.SafeErrorContext(ctx, "kratos registration flow creation failed",
			"error", err, "http_status", getHTTPStatus(httpResp))
		return nil, mapKratosError(err, httpResp, "registration_flow_create")
	}

	traits := map[string]interface{}{
		"email":    email,
		"username": username,
	}
	body := kratosclient.NewUpdateRegistrationFlowWithPasswordMethod("password", password, traits)

	result, httpResp, err := c.publicAPI.FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(body)).
		Execute()
	if err != nil {
		logger.SafeWarnContext(ctx, "kratos registration flow submission failed",
			"flow_id", flow.Id, "http_status", getHTTPStatus(httpResp))
		return nil, mapKratosError(err, httpResp, "registration_flow_submit")
	}

	token := ""
	if result.SessionToken != nil {
		token = *result.SessionToken
	}
	if result.Session == nil {
		// Kratos omits the session when the flow requires verification
		// before issuing one. Surface the registered identity without a
		// usable session; the caller treats it as unconfirmed.
		return identityToUnconfirmedSession(&result.Identity)
	}

	return sessionToDomain(result.Session, token)
}

// ValidateToken resolves a session token to the current session state.
func (c *Client) ValidateToken(ctx context.Context, token string) (*domain.AuthSession, error) {
	sess, httpResp, err := c.publicAPI.FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		return nil, mapKratosError(err, httpResp, "whoami")
	}

	return sessionToDomain(sess, token)
}

// RevokeToken invalidates the session behind a token. Unknown tokens
// are treated as already revoked.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	logoutBody := kratosclient.NewPerformNativeLogoutBody(token)

	httpResp, err := c.publicAPI.FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*logoutBody).
		Execute()
	if err != nil {
		if httpResp != nil && httpResp.StatusCode == 401 {
			return nil
		}
		logger.SafeErrorContext(ctx, "kratos logout failed",
			"error", err, "http_status", getHTTPStatus(httpResp))
		return mapKratosError(err, httpResp, "logout")
	}

	return nil
}

// sessionToDomain flattens a Kratos session into the domain view used
// by the rest of the service.
func sessionToDomain(sess *kratosclient.Session, token string) (*domain.AuthSession, error) {
	if sess == nil || sess.Identity == nil {
		return nil, fmt.Errorf("kratos session without identity")
	}

	out := &domain.AuthSession{
		Token:     token,
		SessionID: sess.Id,
	}
	if sess.Active != nil {
		out.Active = *sess.Active
	}
	if sess.ExpiresAt != nil {
		out.ExpiresAt = *sess.ExpiresAt
	}

	if err := fillIdentity(out, sess.Identity); err != nil {
		return nil, err
	}

	return out, nil
}

// identityToUnconfirmedSession builds an inactive, unverified session
// view from a bare identity.
func identityToUnconfirmedSession(identity *kratosclient.Identity) (*domain.AuthSession, error) {
	out := &domain.AuthSession{}
	if err := fillIdentity(out, identity); err != nil {
		return nil, err
	}
	return out, nil
}

func fillIdentity(out *domain.AuthSession, identity *kratosclient.Identity) error {
	if identity == nil {
		return fmt.Errorf("kratos identity missing")
	}

	identityID, err := parseIdentityID(identity.Id)
	if err != nil {
		return err
	}
	out.IdentityID = identityID

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			out.Email = email
		}
		if username, ok := traits["username"].(string); ok {
			out.Username = username
		}
	}

	// Email confirmation state lives on the verifiable address, not
	// the identity itself.
	for _, addr := range identity.VerifiableAddresses {
		if addr.Value != out.Email {
			continue
		}
		out.EmailVerified = addr.Verified
		if addr.VerifiedAt != nil {
			verifiedAt := *addr.VerifiedAt
			out.EmailVerifiedAt = &verifiedAt
		}
		break
	}

	return nil
}
