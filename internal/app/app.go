// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/canonical/team-member-service/internal/config"
	"github.com/canonical/team-member-service/internal/db"
	"github.com/canonical/team-member-service/internal/kratos"
	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/platform"
	"github.com/canonical/team-member-service/internal/storage"
	"github.com/canonical/team-member-service/internal/supabase"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/pkg/authentication"
	"github.com/canonical/team-member-service/pkg/members"
	"github.com/canonical/team-member-service/pkg/status"
	"github.com/canonical/team-member-service/pkg/web"
)

const authPath = "/auth/v1"

// App holds the HTTP handler and the resources that need releasing on shutdown
type App struct {
	Handler http.Handler

	dbClient *db.DBClient
}

func (a *App) Close() {
	if a.dbClient != nil {
		a.dbClient.Close()
	}
}

// backends are the capability sources chosen by configuration
type backends struct {
	verifier   authentication.TokenVerifierInterface
	profiles   platform.ProfileReaderInterface
	identities platform.IdentityAdminInterface
	data       platform.DataAdminInterface

	dependencies map[string]status.DependencyInterface
	dbClient     *db.DBClient
}

func newBackends(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*backends, error) {
	b := new(backends)
	b.dependencies = make(map[string]status.DependencyInterface)

	var (
		anon  *supabase.Client
		admin *supabase.Client
	)

	if specs.SupabaseURL != "" {
		anon = supabase.NewClient(specs.SupabaseURL, specs.SupabaseAnonKey, tracer, monitor, logger)
		admin = supabase.NewClient(specs.SupabaseURL, specs.SupabaseServiceRoleKey, tracer, monitor, logger)
	}

	switch specs.IdentityProvider {
	case config.IdentityProviderKratos:
		k := kratos.NewClient(specs.KratosPublicURL, specs.KratosAdminURL, specs.KratosAdminToken, tracer, monitor, logger)
		b.verifier = k
		b.identities = k
		b.dependencies["kratos"] = k
		logger.Info("Using Kratos identity provider")
	default:
		b.verifier = anon
		b.identities = admin
		b.dependencies["supabase_auth"] = admin

		if specs.SupabaseJWKSURL != "" {
			verifier, err := authentication.NewJWTAuthenticator(
				ctx,
				strings.TrimSuffix(specs.SupabaseURL, "/")+authPath,
				specs.SupabaseJWKSURL,
				specs.SupabaseJWTAudience,
				tracer,
				monitor,
				logger,
			)
			if err != nil {
				return nil, err
			}
			b.verifier = verifier
		}
	}

	switch specs.DataStore {
	case config.DataStorePostgres:
		dbClient, err := db.NewDBClient(
			ctx,
			db.Config{
				DSN:             specs.DSN,
				MaxConns:        specs.DBMaxConns,
				MinConns:        specs.DBMinConns,
				MaxConnLifetime: specs.DBMaxConnLifetime,
				MaxConnIdleTime: specs.DBMaxConnIdleTime,
				TracingEnabled:  specs.TracingEnabled,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, err
		}

		s := storage.NewStorage(dbClient, tracer, monitor, logger)
		b.profiles = s
		b.data = s
		b.dbClient = dbClient
		b.dependencies["database"] = dbClient
		logger.Info("Using Postgres data store")
	default:
		b.profiles = anon
		b.data = admin
	}

	return b, nil
}

// New assembles the application from the environment specs.
// An incomplete platform configuration still yields a working App, the team
// member endpoint then answers every request with a configuration error.
func New(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *App {
	a := new(App)

	spec := specs.Platform()

	var (
		callers      members.CallerFactory
		admin        members.AdminInterface
		dependencies map[string]status.DependencyInterface
	)

	if err := spec.Validate(); err != nil {
		logger.Errorf("missing environment variables: %v", err)
	} else if b, err := newBackends(ctx, specs, tracer, monitor, logger); err != nil {
		logger.Errorf("failed to initialize platform backends: %v", err)
	} else {
		callerFactory := platform.NewCallerFactory(b.verifier, b.profiles, tracer, monitor, logger)
		callers = func(credential string) members.CallerInterface {
			return callerFactory.ForCredential(credential)
		}
		admin = platform.NewAdmin(b.identities, b.data, tracer, monitor, logger)
		dependencies = b.dependencies
		a.dbClient = b.dbClient
	}

	service := members.NewService(
		spec,
		callers,
		admin,
		members.RolePolicy{Strict: specs.StrictRoles, Allowed: specs.AllowedRoles},
		tracer,
		monitor,
		logger,
	)

	a.Handler = web.NewRouter(
		members.NewAPI(service, tracer, monitor, logger),
		dependencies,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)

	return a
}
