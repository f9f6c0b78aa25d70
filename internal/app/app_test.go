// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/canonical/team-member-service/internal/config"
	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
)

const (
	anonKey    = "anon-key"
	serviceKey = "service-role-key"
	callerJWT  = "caller-jwt"

	emailExists = "A user with this email address has already been registered"
)

// fakeSupabase serves the subset of the auth and REST APIs used by the service.
// Without a canned createStatus it registers users and rejects repeated emails.
type fakeSupabase struct {
	mu sync.Mutex

	callerRole    string
	createStatus  int
	createBody    string
	patchedRows   string
	users         map[string]string
	memberships   []map[string]interface{}
	profileWrites int
}

func (f *fakeSupabase) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email        string                 `json:"email"`
		UserMetadata map[string]interface{} `json:"user_metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if f.users == nil {
		f.users = make(map[string]string)
	}

	if _, ok := f.users[req.Email]; ok {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"email_exists","msg":"` + emailExists + `"}`))
		return
	}

	id := fmt.Sprintf("new-%d", len(f.users)+1)
	f.users[req.Email] = id

	b, _ := json.Marshal(map[string]interface{}{
		"id":                 id,
		"email":              req.Email,
		"email_confirmed_at": "2026-03-01T10:00:00Z",
		"user_metadata":      req.UserMetadata,
	})
	_, _ = w.Write(b)
}

func (f *fakeSupabase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/auth/v1/user":
		if r.Header.Get("apikey") != anonKey || r.Header.Get("Authorization") != "Bearer "+callerJWT {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"error_code":"bad_jwt","msg":"invalid JWT"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"caller-1","email":"admin@example.com"}`))
	case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/profiles":
		if r.Header.Get("Authorization") != "Bearer "+callerJWT || r.URL.Query().Get("id") != "eq.caller-1" {
			w.WriteHeader(http.StatusNotAcceptable)
			_, _ = w.Write([]byte(`{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`))
			return
		}
		_, _ = w.Write([]byte(`{"role":"` + f.callerRole + `"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/admin/users":
		if r.Header.Get("Authorization") != "Bearer "+serviceKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if f.createStatus == 0 {
			f.createUser(w, r)
			return
		}
		w.WriteHeader(f.createStatus)
		_, _ = w.Write([]byte(f.createBody))
	case r.Method == http.MethodPatch && r.URL.Path == "/rest/v1/profiles":
		f.profileWrites++
		_, _ = w.Write([]byte(f.patchedRows))
	case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/usuarios":
		m := make(map[string]interface{})
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &m)
		f.memberships = append(f.memberships, m)
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestApp(specs *config.EnvSpec) *App {
	logger := logging.NewNoopLogger()
	return New(context.Background(), specs, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func supabaseSpecs(url string) *config.EnvSpec {
	return &config.EnvSpec{
		SupabaseURL:            url,
		SupabaseServiceRoleKey: serviceKey,
		SupabaseAnonKey:        anonKey,
		IdentityProvider:       config.IdentityProviderSupabase,
		DataStore:              config.DataStoreREST,
		AllowedRoles:           []string{"super_admin", "admin", "user"},
		CORSAllowedOrigins:     []string{"*"},
	}
}

func TestApp_CreateTeamMember(t *testing.T) {
	created := `{"id":"new-1","email":"ana@example.com","email_confirmed_at":"2026-03-01T10:00:00Z","user_metadata":{"nome":"Ana"}}`
	body := `{"email":"ana@example.com","password":"s3cret!","nome":"Ana","role":"user"}`

	tests := []struct {
		name            string
		callerRole      string
		authorization   string
		createStatus    int
		createBody      string
		patchedRows     string
		wantStatus      int
		wantBody        map[string]interface{}
		wantMemberships int
	}{
		{
			name:          "admin creates a member",
			callerRole:    "admin",
			authorization: "Bearer " + callerJWT,
			createStatus:  http.StatusOK,
			createBody:    created,
			patchedRows:   `[{"id":"new-1"}]`,
			wantStatus:    http.StatusOK,
			wantBody: map[string]interface{}{
				"success": true,
				"user_id": "new-1",
				"message": "Membro Ana criado com sucesso. Login: ana@example.com, Senha: s3cret!",
			},
			wantMemberships: 1,
		},
		{
			name:            "lowercase bearer scheme",
			callerRole:      "admin",
			authorization:   "bearer " + callerJWT,
			createStatus:    http.StatusOK,
			createBody:      created,
			patchedRows:     `[{"id":"new-1"}]`,
			wantStatus:      http.StatusOK,
			wantBody:        map[string]interface{}{"success": true, "user_id": "new-1"},
			wantMemberships: 1,
		},
		{
			name:            "uppercase bearer scheme",
			callerRole:      "admin",
			authorization:   "BEARER " + callerJWT,
			createStatus:    http.StatusOK,
			createBody:      created,
			patchedRows:     `[{"id":"new-1"}]`,
			wantStatus:      http.StatusOK,
			wantBody:        map[string]interface{}{"success": true, "user_id": "new-1"},
			wantMemberships: 1,
		},
		{
			name:            "missing profile does not fail the creation",
			callerRole:      "super_admin",
			authorization:   "Bearer " + callerJWT,
			createStatus:    http.StatusOK,
			createBody:      created,
			patchedRows:     `[]`,
			wantStatus:      http.StatusOK,
			wantBody:        map[string]interface{}{"success": true, "user_id": "new-1"},
			wantMemberships: 1,
		},
		{
			name:          "email already registered",
			callerRole:    "admin",
			authorization: "Bearer " + callerJWT,
			createStatus:  http.StatusUnprocessableEntity,
			createBody:    `{"code":422,"error_code":"email_exists","msg":"` + emailExists + `"}`,
			wantStatus:    http.StatusBadRequest,
			wantBody:      map[string]interface{}{"error": emailExists},
		},
		{
			name:          "regular user",
			callerRole:    "user",
			authorization: "Bearer " + callerJWT,
			wantStatus:    http.StatusForbidden,
			wantBody:      map[string]interface{}{"error": "Access denied. Only admins can create team members."},
		},
		{
			name:          "invalid token",
			callerRole:    "admin",
			authorization: "Bearer forged",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      map[string]interface{}{"error": "Unauthorized"},
		},
		{
			name:       "no token",
			callerRole: "admin",
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]interface{}{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSupabase{
				callerRole:   tt.callerRole,
				createStatus: tt.createStatus,
				createBody:   tt.createBody,
				patchedRows:  tt.patchedRows,
			}
			srv := httptest.NewServer(fake)
			defer srv.Close()

			a := newTestApp(supabaseSpecs(srv.URL))
			defer a.Close()

			req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-team-member", strings.NewReader(body))
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			a.Handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			got := make(map[string]interface{})
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			for k, v := range tt.wantBody {
				if got[k] != v {
					t.Errorf("expected %s to be %v, got %v", k, v, got[k])
				}
			}

			fake.mu.Lock()
			defer fake.mu.Unlock()

			if len(fake.memberships) != tt.wantMemberships {
				t.Fatalf("expected %d membership rows, got %d", tt.wantMemberships, len(fake.memberships))
			}

			for _, m := range fake.memberships {
				if m["user_id"] != "new-1" || m["nome"] != "Ana" || m["email"] != "ana@example.com" || m["role"] != "user" {
					t.Errorf("unexpected membership row %v", m)
				}
			}
		})
	}
}

func TestApp_CreateTeamMemberTwice(t *testing.T) {
	body := `{"email":"ana@example.com","password":"s3cret!","nome":"Ana","role":"user"}`

	fake := &fakeSupabase{callerRole: "admin", patchedRows: `[{"id":"new-1"}]`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a := newTestApp(supabaseSpecs(srv.URL))
	defer a.Close()

	steps := []struct {
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			wantStatus: http.StatusOK,
			wantBody:   map[string]interface{}{"success": true, "user_id": "new-1"},
		},
		{
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]interface{}{"error": emailExists},
		},
	}

	for i, step := range steps {
		req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-team-member", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+callerJWT)
		w := httptest.NewRecorder()

		a.Handler.ServeHTTP(w, req)

		if w.Code != step.wantStatus {
			t.Fatalf("request %d: expected status %d, got %d: %s", i+1, step.wantStatus, w.Code, w.Body.String())
		}

		got := make(map[string]interface{})
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("request %d: failed to decode response: %v", i+1, err)
		}

		for k, v := range step.wantBody {
			if got[k] != v {
				t.Errorf("request %d: expected %s to be %v, got %v", i+1, k, v, got[k])
			}
		}
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()

	if len(fake.memberships) != 1 {
		t.Fatalf("expected 1 membership row, got %d", len(fake.memberships))
	}

	if fake.profileWrites != 1 {
		t.Errorf("expected 1 profile update, got %d", fake.profileWrites)
	}

	if len(fake.users) != 1 {
		t.Errorf("expected 1 registered user, got %d", len(fake.users))
	}
}

func TestApp_MissingConfiguration(t *testing.T) {
	fake := new(fakeSupabase)
	srv := httptest.NewServer(fake)
	defer srv.Close()

	specs := supabaseSpecs(srv.URL)
	specs.SupabaseServiceRoleKey = ""

	a := newTestApp(specs)
	defer a.Close()

	req := httptest.NewRequest(http.MethodPost, "/create-team-member", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+callerJWT)
	w := httptest.NewRecorder()

	a.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	if !strings.Contains(w.Body.String(), `"error":"Server configuration error"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	if fake.profileWrites != 0 || len(fake.memberships) != 0 {
		t.Errorf("expected no remote writes")
	}
}
