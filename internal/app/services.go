package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/medvault/medvault-cli/config"
	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/appointment"
	"github.com/medvault/medvault-cli/internal/dashboard"
	"github.com/medvault/medvault-cli/internal/docperm"
	"github.com/medvault/medvault-cli/internal/emergency"
	"github.com/medvault/medvault-cli/internal/profile"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/internal/slot"
	"github.com/medvault/medvault-cli/internal/verification"
	"github.com/medvault/medvault-cli/pkg/notify"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideProfileService,
		ProvideAppointmentAggregator,
		ProvideSlotService,
		ProvideEmergencyService,
		ProvideDocPermService,
		ProvideVerificationService,
		ProvideDashboardService,
	),
)

func ProvideProfileService(client *api.Client, notifier notify.Notifier) profile.Service {
	return profile.New(client, notifier, nil)
}

func ProvideAppointmentAggregator(client *api.Client, id session.Identity, loc *time.Location) appointment.Aggregator {
	return appointment.New(client, id, loc, nil, nil)
}

func ProvideSlotService(client *api.Client, profiles profile.Service, id session.Identity, notifier notify.Notifier) slot.Service {
	return slot.New(client, profiles, id, notifier, nil, nil)
}

func ProvideEmergencyService(client *api.Client, id session.Identity, notifier notify.Notifier, cfg *config.Config) emergency.Service {
	return emergency.New(client, id, notifier, cfg.Locale.DefaultRegion, nil)
}

func ProvideDocPermService(client *api.Client, id session.Identity, notifier notify.Notifier) docperm.Service {
	return docperm.New(client, id, notifier, nil, nil)
}

func ProvideVerificationService(client *api.Client, notifier notify.Notifier) verification.Service {
	return verification.New(client, notifier, nil)
}

func ProvideDashboardService(client *api.Client, id session.Identity, loc *time.Location) dashboard.Service {
	return dashboard.New(client, id, loc, nil, nil)
}
