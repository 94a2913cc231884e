package kratos

import (
	"errors"
	"net/http"
	"testing"

	"scholarly/domain"
)

func TestClassifyErrorBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		operation string
		want      error
	}{
		{
			name:      "account not active message id",
			body:      `{"ui":{"messages":[{"id":4000010,"text":"Account not active yet. Did you forget to verify your email address?"}]}}`,
			operation: "login_flow_submit",
			want:      domain.ErrEmailNotConfirmed,
		},
		{
			name:      "invalid credentials message id",
			body:      `{"ui":{"messages":[{"id":4000006,"text":"The provided credentials are invalid."}]}}`,
			operation: "login_flow_submit",
			want:      domain.ErrInvalidCredentials,
		},
		{
			name:      "verify address text without known id",
			body:      `{"ui":{"messages":[{"id":9999999,"text":"Please verify your email address first."}]}}`,
			operation: "login_flow_submit",
			want:      domain.ErrEmailNotConfirmed,
		},
		{
			name:      "duplicate identifier text",
			body:      `{"ui":{"messages":[{"id":4000007,"text":"An account with the same identifier (email, phone, username, ...) exists already."}]}}`,
			operation: "registration_flow_submit",
			want:      domain.ErrEmailTaken,
		},
		{
			name:      "inactive session error id",
			body:      `{"error":{"id":"session_inactive","message":"The session is inactive"}}`,
			operation: "whoami",
			want:      domain.ErrUnauthorized,
		},
		{
			name:      "no active session reason on whoami",
			body:      `{"error":{"message":"unauthorized","reason":"No active session was found in this request."}}`,
			operation: "whoami",
			want:      domain.ErrUnauthorized,
		},
		{
			name:      "credentials reason outside whoami",
			body:      `{"error":{"message":"The provided credentials are invalid."}}`,
			operation: "login_flow_submit",
			want:      domain.ErrInvalidCredentials,
		},
		{
			name:      "empty body",
			body:      "",
			operation: "login_flow_submit",
			want:      nil,
		},
		{
			name:      "non json body",
			body:      "upstream exploded",
			operation: "login_flow_submit",
			want:      nil,
		},
		{
			name:      "unrelated message",
			body:      `{"ui":{"messages":[{"id":1010001,"text":"Sign in"}]}}`,
			operation: "login_flow_submit",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyErrorBody([]byte(tt.body), tt.operation)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyErrorBody() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKratosError_HTTPFallback(t *testing.T) {
	upstream := errors.New("400 Bad Request")

	tests := []struct {
		name      string
		status    int
		operation string
		want      error
	}{
		{"bad request on login", http.StatusBadRequest, "login_flow_submit", domain.ErrInvalidCredentials},
		{"unauthorized on login", http.StatusUnauthorized, "login_flow_submit", domain.ErrInvalidCredentials},
		{"unauthorized on whoami", http.StatusUnauthorized, "whoami", domain.ErrUnauthorized},
		{"conflict on registration", http.StatusConflict, "registration_flow_submit", domain.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status}
			got := mapKratosError(upstream, resp, tt.operation)
			if !errors.Is(got, tt.want) {
				t.Errorf("mapKratosError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKratosError_UnknownWrapsOriginal(t *testing.T) {
	upstream := errors.New("connection refused")

	got := mapKratosError(upstream, nil, "login_flow")
	if !errors.Is(got, upstream) {
		t.Errorf("unknown errors must keep the original cause, got %v", got)
	}
	if errors.Is(got, domain.ErrInvalidCredentials) || errors.Is(got, domain.ErrUnauthorized) {
		t.Errorf("unknown error must not map to a domain sentinel: %v", got)
	}
}

func TestMapKratosError_ServerErrorNotMapped(t *testing.T) {
	upstream := errors.New("500 Internal Server Error")
	resp := &http.Response{StatusCode: http.StatusInternalServerError}

	got := mapKratosError(upstream, resp, "login_flow_submit")
	if errors.Is(got, domain.ErrInvalidCredentials) {
		t.Errorf("server errors must not look like bad credentials: %v", got)
	}
}

func TestParseIdentityID(t *testing.T) {
	if _, err := parseIdentityID("not-a-uuid"); err == nil {
		t.Error("expected error for malformed identity id")
	}
	id, err := parseIdentityID("a2aecf4c-5d6b-4d37-9d21-6e174f4c75d6")
	if err != nil {
		t.Fatalf("parseIdentityID error: %v", err)
	}
	if id.String() != "a2aecf4c-5d6b-4d37-9d21-6e174f4c75d6" {
		t.Errorf("round trip mismatch: %s", id)
	}
}
