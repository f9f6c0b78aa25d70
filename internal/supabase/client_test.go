// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/types"
)

func newTestClient(url, key string) *Client {
	logger := logging.NewNoopLogger()
	return NewClient(url, key, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestClient_VerifyToken(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantUserID string
		wantErr    bool
	}{
		{
			name:       "valid token",
			status:     http.StatusOK,
			body:       `{"id":"caller-1","email":"admin@example.com","role":"authenticated"}`,
			wantUserID: "caller-1",
		},
		{
			name:    "expired token",
			status:  http.StatusUnauthorized,
			body:    `{"code":401,"error_code":"bad_jwt","msg":"invalid JWT: unable to parse or verify signature, token has invalid claims: token is expired"}`,
			wantErr: true,
		},
		{
			name:    "no user id",
			status:  http.StatusOK,
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet || r.URL.Path != "/auth/v1/user" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if r.Header.Get("apikey") != "anon-key" {
					t.Errorf("expected anon key, got %q", r.Header.Get("apikey"))
				}
				if r.Header.Get("Authorization") != "Bearer caller-token" {
					t.Errorf("expected caller bearer, got %q", r.Header.Get("Authorization"))
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			userID, err := newTestClient(srv.URL, "anon-key").VerifyToken(context.Background(), "caller-token")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if userID != tt.wantUserID {
				t.Errorf("expected user %q, got %q", tt.wantUserID, userID)
			}
		})
	}
}

func TestClient_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
	}{
		{
			name:   "created",
			status: http.StatusOK,
			body:   `{"id":"user-2","email":"maria@example.com","email_confirmed_at":"2026-03-01T10:00:00Z","user_metadata":{"nome":"Maria"}}`,
		},
		{
			name:        "duplicate email",
			status:      http.StatusUnprocessableEntity,
			body:        `{"code":422,"error_code":"email_exists","msg":"A user with this email address has already been registered"}`,
			wantErr:     true,
			wantMessage: "A user with this email address has already been registered",
		},
		{
			name:        "legacy error shape",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid_request","error_description":"Password should be at least 6 characters"}`,
			wantErr:     true,
			wantMessage: "Password should be at least 6 characters",
		},
		{
			name:        "non json error",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable",
			wantErr:     true,
			wantMessage: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/auth/v1/admin/users" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer service-key" || r.Header.Get("apikey") != "service-key" {
					t.Errorf("expected service key credentials")
				}

				attrs := new(AdminUserAttributes)
				if err := json.NewDecoder(r.Body).Decode(attrs); err != nil {
					t.Errorf("failed to decode body: %v", err)
				}
				if !attrs.EmailConfirm || attrs.UserMetadata["nome"] != "Maria" {
					t.Errorf("unexpected attributes %+v", attrs)
				}

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			user, err := newTestClient(srv.URL+"/", "service-key").CreateUser(
				context.Background(),
				&types.NewUser{
					Email:          "maria@example.com",
					Password:       "s3cret!",
					EmailConfirmed: true,
					Metadata:       map[string]interface{}{"nome": "Maria"},
				},
			)

			if tt.wantErr {
				apiErr := new(APIError)
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %v", err)
				}
				if apiErr.ProviderMessage() != tt.wantMessage {
					t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.ProviderMessage())
				}
				if apiErr.StatusCode != tt.status {
					t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != "user-2" || !user.EmailConfirmed {
				t.Errorf("unexpected user %+v", user)
			}
		})
	}
}

func TestClient_ProfileRole(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantRole string
		wantErr  bool
	}{
		{
			name:     "admin",
			status:   http.StatusOK,
			body:     `{"role":"admin"}`,
			wantRole: "admin",
		},
		{
			name:     "null role",
			status:   http.StatusOK,
			body:     `{"role":null}`,
			wantRole: "",
		},
		{
			name:    "no row",
			status:  http.StatusNotAcceptable,
			body:    `{"code":"PGRST116","details":"The result contains 0 rows","hint":null,"message":"JSON object requested, multiple (or no) rows returned"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rest/v1/profiles" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.URL.Query().Get("id") != "eq.caller-1" || r.URL.Query().Get("select") != "role" {
					t.Errorf("unexpected query %s", r.URL.RawQuery)
				}
				if r.Header.Get("Accept") != singleObjectMediaType {
					t.Errorf("expected single object accept header, got %q", r.Header.Get("Accept"))
				}
				if r.Header.Get("Authorization") != "Bearer caller-token" {
					t.Errorf("expected caller bearer, got %q", r.Header.Get("Authorization"))
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			role, err := newTestClient(srv.URL, "anon-key").ProfileRole(context.Background(), "caller-token", "caller-1")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.wantRole {
				t.Errorf("expected role %q, got %q", tt.wantRole, role)
			}
		})
	}
}

func TestClient_UpdateProfileRole(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantNoRow bool
	}{
		{
			name:   "updated",
			status: http.StatusOK,
			body:   `[{"id":"user-2"}]`,
		},
		{
			name:      "profile missing",
			status:    http.StatusOK,
			body:      `[]`,
			wantErr:   true,
			wantNoRow: true,
		},
		{
			name:    "rejected",
			status:  http.StatusForbidden,
			body:    `{"code":"42501","message":"permission denied for table profiles"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPatch || r.URL.Query().Get("id") != "eq.user-2" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.String())
				}
				body, _ := io.ReadAll(r.Body)
				if string(body) != `{"role":"user"}` {
					t.Errorf("unexpected body %s", body)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(srv.URL, "service-key").UpdateProfileRole(context.Background(), "user-2", "user")

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if tt.wantNoRow != errors.Is(err, ErrNoRows) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestClient_InsertMembership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/v1/usuarios" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Prefer") != "return=minimal" {
			t.Errorf("unexpected prefer header %q", r.Header.Get("Prefer"))
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		want := map[string]string{"user_id": "user-2", "nome": "Maria", "email": "maria@example.com", "role": "user"}
		for k, v := range want {
			if body[k] != v {
				t.Errorf("expected %s=%q, got %q", k, v, body[k])
			}
		}
		if len(body) != len(want) {
			t.Errorf("unexpected fields in %v", body)
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, "service-key").InsertMembership(
		context.Background(),
		&types.Membership{UserID: "user-2", Nome: "Maria", Email: "maria@example.com", Role: "user"},
	)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Ping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/v1/health" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"version":"v2.170.0","name":"GoTrue"}`))
			}))
			defer srv.Close()

			err := newTestClient(srv.URL, "anon-key").Ping(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
