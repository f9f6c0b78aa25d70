// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
)

func validSupabase() PlatformSpec {
	return PlatformSpec{
		IdentityProvider:       IdentityProviderSupabase,
		DataStore:              DataStoreREST,
		SupabaseURL:            "http://localhost:54321",
		SupabaseServiceRoleKey: "service-key",
		SupabaseAnonKey:        "anon-key",
	}
}

func TestPlatformSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    func() PlatformSpec
		wantErr bool
	}{
		{
			name:    "supabase complete",
			spec:    validSupabase,
			wantErr: false,
		},
		{
			name: "missing url",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.SupabaseURL = ""
				return p
			},
			wantErr: true,
		},
		{
			name: "missing service role key",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.SupabaseServiceRoleKey = ""
				return p
			},
			wantErr: true,
		},
		{
			name: "missing anon key",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.SupabaseAnonKey = ""
				return p
			},
			wantErr: true,
		},
		{
			name: "malformed url",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.SupabaseURL = "not a url"
				return p
			},
			wantErr: true,
		},
		{
			name: "kratos with postgres does not need supabase",
			spec: func() PlatformSpec {
				return PlatformSpec{
					IdentityProvider: IdentityProviderKratos,
					DataStore:        DataStorePostgres,
					KratosPublicURL:  "http://kratos:4433",
					KratosAdminURL:   "http://kratos:4434",
					DSN:              "postgres://localhost/members",
				}
			},
			wantErr: false,
		},
		{
			name: "kratos with rest store still needs supabase",
			spec: func() PlatformSpec {
				return PlatformSpec{
					IdentityProvider: IdentityProviderKratos,
					DataStore:        DataStoreREST,
					KratosPublicURL:  "http://kratos:4433",
					KratosAdminURL:   "http://kratos:4434",
				}
			},
			wantErr: true,
		},
		{
			name: "postgres without dsn",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.DataStore = DataStorePostgres
				return p
			},
			wantErr: true,
		},
		{
			name: "unknown identity provider",
			spec: func() PlatformSpec {
				p := validSupabase()
				p.IdentityProvider = "firebase"
				return p
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec().Validate()

			if tt.wantErr && err == nil {
				t.Fatal("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEnvSpecDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", specs.Port)
	}
	if specs.IdentityProvider != IdentityProviderSupabase || specs.DataStore != DataStoreREST {
		t.Errorf("unexpected backends %s/%s", specs.IdentityProvider, specs.DataStore)
	}
	if len(specs.AllowedRoles) != 3 {
		t.Errorf("expected 3 default roles, got %v", specs.AllowedRoles)
	}

	if err := specs.Platform().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnvSpecMissingPlatformDoesNotFail(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := specs.Platform().Validate(); err == nil {
		t.Fatal("expected platform validation error")
	}
}
