package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/medvault/medvault-cli/config"
	"github.com/medvault/medvault-cli/internal/appointment"
	"github.com/medvault/medvault-cli/internal/docperm"
	"github.com/medvault/medvault-cli/internal/emergency"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/refresh"
)

// WorkerModule registers the background refresh pollers used by watch mode.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Identity     session.Identity
	Appointments appointment.Aggregator
	Emergency    emergency.Service
	DocPerms     docperm.Service
}

// RegisterWorkers wires one refresh scheduler per server-owned list the
// identity's role cares about. SIGHUP triggers an immediate refresh of every
// scheduler, the terminal equivalent of refetch-on-focus.
func RegisterWorkers(p WorkerParams) {
	var schedulers []*refresh.Scheduler

	apptInterval := time.Duration(p.Cfg.Refresh.AppointmentIntervalSeconds) * time.Second
	emergInterval := time.Duration(p.Cfg.Refresh.EmergencyIntervalSeconds) * time.Second
	permInterval := time.Duration(p.Cfg.Refresh.PermissionIntervalSeconds) * time.Second

	switch p.Identity.Role {
	case authorize.RoleDoctor:
		schedulers = append(schedulers,
			refresh.NewScheduler("appointments", apptInterval, p.Appointments.Refresh, nil),
			refresh.NewScheduler("emergency_pending", emergInterval, func(ctx context.Context) error {
				_, err := p.Emergency.PendingRequests(ctx)
				return err
			}, nil),
		)
	case authorize.RolePatient:
		schedulers = append(schedulers,
			refresh.NewScheduler("appointments", apptInterval, p.Appointments.Refresh, nil),
			refresh.NewScheduler("emergency_own", emergInterval, func(ctx context.Context) error {
				_, err := p.Emergency.MyRequests(ctx)
				return err
			}, nil),
			refresh.NewScheduler("permission_requests", permInterval, func(ctx context.Context) error {
				_, err := p.DocPerms.MyRequests(ctx)
				return err
			}, nil),
		)
	default:
		slog.Info("no background pollers for role", "role", p.Identity.Role)
		return
	}

	runCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, s := range schedulers {
				wg.Add(1)
				go func(s *refresh.Scheduler) {
					defer wg.Done()
					s.Run(runCtx)
				}(s)
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				watchReload(runCtx, schedulers)
			}()
			slog.Info("refresh pollers started", "count", len(schedulers), "role", p.Identity.Role)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}

// watchReload forwards SIGHUP to every scheduler as a manual trigger.
func watchReload(ctx context.Context, schedulers []*refresh.Scheduler) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			slog.Debug("reload signal received, triggering refresh")
			for _, s := range schedulers {
				s.Trigger()
			}
		}
	}
}
