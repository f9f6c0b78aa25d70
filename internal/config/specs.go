// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// platform settings are not marked as required, a missing value is reported
	// per request as a configuration error instead of preventing startup
	SupabaseURL            string `envconfig:"supabase_url"`
	SupabaseServiceRoleKey string `envconfig:"supabase_service_role_key"`
	SupabaseAnonKey        string `envconfig:"supabase_anon_key"`
	SupabaseJWKSURL        string `envconfig:"supabase_jwks_url"`
	SupabaseJWTAudience    string `envconfig:"supabase_jwt_audience" default:"authenticated"`

	IdentityProvider string `envconfig:"identity_provider" default:"supabase"`
	KratosPublicURL  string `envconfig:"kratos_public_url"`
	KratosAdminURL   string `envconfig:"kratos_admin_url"`
	KratosAdminToken string `envconfig:"kratos_admin_token"`

	DataStore string `envconfig:"data_store" default:"rest"`
	DSN       string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	StrictRoles  bool     `envconfig:"strict_roles" default:"false"`
	AllowedRoles []string `envconfig:"allowed_roles" default:"super_admin,admin,user"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}

// Platform returns the settings the team member operation depends on
func (s *EnvSpec) Platform() PlatformSpec {
	return PlatformSpec{
		IdentityProvider:       s.IdentityProvider,
		DataStore:              s.DataStore,
		SupabaseURL:            s.SupabaseURL,
		SupabaseServiceRoleKey: s.SupabaseServiceRoleKey,
		SupabaseAnonKey:        s.SupabaseAnonKey,
		KratosPublicURL:        s.KratosPublicURL,
		KratosAdminURL:         s.KratosAdminURL,
		DSN:                    s.DSN,
	}
}
