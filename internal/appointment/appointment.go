// Package appointment aggregates the role-scoped appointment list and
// derives the upcoming/past partition plus the next appointment. The
// aggregator holds the latest committed snapshot; refreshes run through the
// coalescing scheduler so a superseded fetch never overwrites a newer one.
package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/localdate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Snapshot is one committed view of the appointment list. Upcoming and Past
// partition All: disjoint, exhaustive. Next is the earliest upcoming by
// (date, timeFrom), nil iff Upcoming is empty.
type Snapshot struct {
	All      []api.Appointment
	Upcoming []api.Appointment
	Past     []api.Appointment
	Next     *api.Appointment
	At       time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this aggregator consumes.
type API interface {
	GetPatientAppointments(ctx context.Context, patientID string) ([]api.Appointment, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) ([]api.Appointment, error)
}

type Aggregator interface {
	// Refresh fetches the role-scoped list and commits a new snapshot. A
	// cancelled context never commits.
	Refresh(ctx context.Context) error

	// Snapshot returns the latest committed snapshot, or nil before the
	// first successful refresh.
	Snapshot() *Snapshot
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type aggregator struct {
	api      API
	identity session.Identity
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// New creates an aggregator for the given identity. loc is the zone used to
// interpret appointment dates; now is injectable for tests and defaults to
// time.Now.
func New(apiClient API, id session.Identity, loc *time.Location, now func() time.Time, logger *slog.Logger) Aggregator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &aggregator{api: apiClient, identity: id, loc: loc, now: now, logger: logger}
}

func (a *aggregator) Refresh(ctx context.Context) error {
	appts, err := a.fetch(ctx)
	if err != nil {
		return err
	}

	snap := Partition(appts, a.now(), a.loc)

	// A superseded refresh was cancelled mid-flight; its result must not
	// overwrite the newer snapshot.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	a.mu.Lock()
	a.snap = snap
	a.mu.Unlock()

	a.logger.Debug("appointments refreshed",
		"role", a.identity.Role, "total", len(snap.All), "upcoming", len(snap.Upcoming))
	return nil
}

func (a *aggregator) fetch(ctx context.Context) ([]api.Appointment, error) {
	switch a.identity.Role {
	case authorize.RolePatient:
		appts, err := a.api.GetPatientAppointments(ctx, a.identity.Username)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return appts, nil

	case authorize.RoleDoctor:
		appts, err := a.api.GetDoctorAppointments(ctx, a.identity.Username)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		// Doctor schedule views show confirmed bookings only.
		filtered := appts[:0:0]
		for _, appt := range appts {
			if appt.Status == api.AppointmentApproved {
				filtered = append(filtered, appt)
			}
		}
		return filtered, nil

	default:
		return nil, fmt.Errorf("%w: role %q has no appointment list", ErrNoIdentity, a.identity.Role)
	}
}

func (a *aggregator) Snapshot() *Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// ---------------------------------------------------------------------------
// Derivations
// ---------------------------------------------------------------------------

// IsUpcoming reports whether the appointment's start (date + timeFrom in loc)
// is at or after now. Unparseable dates count as past so they never surface
// in the schedule.
func IsUpcoming(appt api.Appointment, now time.Time, loc *time.Location) bool {
	start, err := localdate.Combine(appt.Date, appt.TimeFrom, loc)
	if err != nil {
		return false
	}
	return !start.Before(now)
}

// Partition splits appointments into upcoming and past and computes the next
// appointment. Input order is irrelevant; Upcoming comes out sorted by
// (date, timeFrom) ascending.
func Partition(appts []api.Appointment, now time.Time, loc *time.Location) *Snapshot {
	snap := &Snapshot{All: appts, At: now}
	for _, appt := range appts {
		if IsUpcoming(appt, now, loc) {
			snap.Upcoming = append(snap.Upcoming, appt)
		} else {
			snap.Past = append(snap.Past, appt)
		}
	}

	sort.SliceStable(snap.Upcoming, func(i, j int) bool {
		a, b := snap.Upcoming[i], snap.Upcoming[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.TimeFrom < b.TimeFrom
	})

	if len(snap.Upcoming) > 0 {
		next := snap.Upcoming[0]
		snap.Next = &next
	}
	return snap
}
