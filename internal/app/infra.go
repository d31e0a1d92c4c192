package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/medvault/medvault-cli/config"
	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/notify"
	"github.com/medvault/medvault-cli/pkg/observability"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideAPIClient),
	fx.Provide(ProvideSessionStore),
	fx.Provide(ProvideIdentity),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideNotifier),
	fx.Provide(ProvideLocation),
	fx.Provide(ProvideOTel),
)

func ProvideAPIClient(cfg *config.Config) *api.Client {
	return api.New(cfg.API, slog.Default())
}

func ProvideSessionStore(cfg *config.Config) (*session.Store, error) {
	return session.NewStore(cfg.Session)
}

// ProvideIdentity loads the persisted login. Commands that require a session
// fail fast here with ErrNoSession instead of partway through a request.
func ProvideIdentity(store *session.Store) (session.Identity, error) {
	id, err := store.Load()
	if err != nil {
		return session.Identity{}, err
	}
	return *id, nil
}

func ProvideAuthorization(cfg *config.Config) (authorize.IAuthorization, error) {
	enforcer, err := authorize.NewEnforcer()
	if err != nil {
		return nil, err
	}
	auth, err := authorize.NewAuthorization(enforcer)
	if err != nil {
		return nil, err
	}
	if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
		return nil, err
	}
	if cfg.Authorization.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	return auth, nil
}

func ProvideNotifier() notify.Notifier {
	return notify.NewWriter(os.Stderr, slog.Default())
}

// ProvideLocation resolves the configured display timezone, falling back to
// the host zone.
func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	if cfg.Locale.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(cfg.Locale.Timezone)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Environment,
		TracingEnabled: cfg.Observability.Tracing.Enabled,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
		MetricsEnabled: cfg.Observability.Metrics.Enabled,
		MetricsListen:  cfg.Observability.Metrics.Listen,
		MetricsPath:    cfg.Observability.Metrics.Path,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
		"metrics_listen", cfg.Observability.Metrics.Listen,
	)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := provider.ServeMetrics(); err != nil {
					slog.Error("metrics endpoint failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
