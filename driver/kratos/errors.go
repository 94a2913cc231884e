package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"scholarly/domain"
)

// Kratos UI message IDs that matter to us. 4000010 is "account not
// active yet, verify your email"; 4000006 is the generic bad
// credentials message.
const (
	kratosMsgAccountNotActive   = 4000010
	kratosMsgInvalidCredentials = 4000006
)

// mapKratosError translates Kratos API errors into domain sentinels so
// upper layers never see provider-specific error shapes.
func mapKratosError(err error, httpResp *http.Response, operation string) error {
	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if mapped := classifyErrorBody(kratosErr.Body(), operation); mapped != nil {
			return mapped
		}
	}

	if httpResp != nil {
		switch httpResp.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			if operation == "login_flow_submit" {
				return domain.ErrInvalidCredentials
			}
			if operation == "whoami" {
				return domain.ErrUnauthorized
			}
		case http.StatusConflict:
			return domain.ErrEmailTaken
		}
	}

	return fmt.Errorf("kratos %s failed: %w", operation, err)
}

// classifyErrorBody inspects the JSON error payload for the UI message
// IDs and texts Kratos uses for the cases we distinguish. Returns nil
// when nothing matched.
func classifyErrorBody(body []byte, operation string) error {
	if len(body) == 0 {
		return nil
	}

	var payload struct {
		UI struct {
			Messages []struct {
				ID   int64  `json:"id"`
				Text string `json:"text"`
			} `json:"messages"`
		} `json:"ui"`
		Error struct {
			ID      string `json:"id"`
			Message string `json:"message"`
			Reason  string `json:"reason"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	for _, msg := range payload.UI.Messages {
		switch msg.ID {
		case kratosMsgAccountNotActive:
			return domain.ErrEmailNotConfirmed
		case kratosMsgInvalidCredentials:
			return domain.ErrInvalidCredentials
		}
		lower := strings.ToLower(msg.Text)
		if strings.Contains(lower, "verify") && strings.Contains(lower, "address") {
			return domain.ErrEmailNotConfirmed
		}
		if strings.Contains(lower, "exists already") || strings.Contains(lower, "already exists") {
			return domain.ErrEmailTaken
		}
	}

	if payload.Error.ID == "session_inactive" {
		return domain.ErrUnauthorized
	}
	reason := strings.ToLower(payload.Error.Reason + " " + payload.Error.Message)
	if strings.Contains(reason, "no active session") || strings.Contains(reason, "credentials are invalid") {
		if operation == "whoami" {
			return domain.ErrUnauthorized
		}
		return domain.ErrInvalidCredentials
	}

	return nil
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func parseIdentityID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed identity id %q: %w", raw, err)
	}
	return id, nil
}
