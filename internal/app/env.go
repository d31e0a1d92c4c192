package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/medvault/medvault-cli/config"
	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/logs"
	"github.com/medvault/medvault-cli/pkg/notify"
)

// Env bundles the dependencies one-shot commands need. Watch mode builds the
// same graph through fx instead; both paths share the Provide* constructors.
type Env struct {
	Cfg      *config.Config
	Client   *api.Client
	Store    *session.Store
	Notifier notify.Notifier
	Auth     authorize.IAuthorization
	Location *time.Location
}

// NewEnv reads configuration, installs the structured logger and builds the
// shared infrastructure.
func NewEnv(cfgPath string) (*Env, error) {
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logs.New(cfg))

	store, err := ProvideSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	auth, err := ProvideAuthorization(cfg)
	if err != nil {
		return nil, err
	}
	loc, err := ProvideLocation(cfg)
	if err != nil {
		return nil, err
	}

	return &Env{
		Cfg:      cfg,
		Client:   ProvideAPIClient(cfg),
		Store:    store,
		Notifier: ProvideNotifier(),
		Auth:     auth,
		Location: loc,
	}, nil
}

// Identity loads the persisted login, failing with session.ErrNoSession when
// nobody is logged in.
func (e *Env) Identity() (session.Identity, error) {
	return ProvideIdentity(e.Store)
}

// Authorize runs the local policy check for the identity's role before any
// network call is attempted.
func (e *Env) Authorize(ctx context.Context, id session.Identity, obj authorize.Resource, act authorize.Action) error {
	return e.Auth.MustEnforce(ctx, id.Role, obj, act)
}
