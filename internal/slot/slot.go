// Package slot manages a doctor's bookable time slots: batch generation from
// an availability window and deletion of still-available slots. All input
// validation happens locally before any network call.
package slot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/profile"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/localdate"
	"github.com/medvault/medvault-cli/pkg/notify"
)

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 120
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateSlotsRequest is one availability window. Date is a local calendar
// day (YYYY-MM-DD) and Timezone the IANA zone the window belongs to; the
// server decomposes the window into discrete slots of Duration minutes.
type CreateSlotsRequest struct {
	Date     string
	TimeFrom string
	TimeTo   string
	Duration int
	Timezone string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this service consumes.
type API interface {
	GenerateTimeSlots(ctx context.Context, req api.GenerateSlotsRequest) ([]api.TimeSlot, error)
	GetDoctorSlots(ctx context.Context, doctorID string) ([]api.TimeSlot, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]api.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, id string) error
}

type Service interface {
	// CreateTimeSlots validates the window locally, runs the profile warning
	// gate and submits the window for decomposition. Validation or gate
	// failures never reach the network.
	CreateTimeSlots(ctx context.Context, req CreateSlotsRequest) ([]api.TimeSlot, error)

	// ListSlots returns the doctor's own slots.
	ListSlots(ctx context.Context) ([]api.TimeSlot, error)

	// AvailableSlots returns a doctor's bookable slots on one date
	// (patient-facing).
	AvailableSlots(ctx context.Context, doctorID, date string) ([]api.TimeSlot, error)

	// DeleteSlot removes a slot. Booked slots (isAvailable=false) are
	// refused locally; deletion of a booked slot is never attempted.
	DeleteSlot(ctx context.Context, id string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type slotService struct {
	api      API
	profiles profile.Service
	identity session.Identity
	notifier notify.Notifier
	now      func() time.Time
	logger   *slog.Logger
}

func New(apiClient API, profiles profile.Service, id session.Identity, notifier notify.Notifier, now func() time.Time, logger *slog.Logger) Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &slotService{
		api:      apiClient,
		profiles: profiles,
		identity: id,
		notifier: notifier,
		now:      now,
		logger:   logger,
	}
}

func (s *slotService) CreateTimeSlots(ctx context.Context, req CreateSlotsRequest) ([]api.TimeSlot, error) {
	if err := s.validate(req); err != nil {
		notify.Warn(s.notifier, "Invalid Slot Window", err.Error())
		return nil, err
	}

	snap, err := s.profiles.Resolve(ctx, &s.identity)
	if err != nil {
		return nil, err
	}
	if s.profiles.ShowProfileWarning(snap) {
		return nil, ErrProfileBlocked
	}

	slots, err := s.api.GenerateTimeSlots(ctx, api.GenerateSlotsRequest{
		DoctorID: s.identity.Username,
		Date:     req.Date,
		TimeFrom: req.TimeFrom,
		TimeTo:   req.TimeTo,
		Duration: req.Duration,
		Timezone: req.Timezone,
	})
	if err != nil {
		notify.Error(s.notifier, "Slot Creation Failed", "Could not create time slots. Please try again.")
		return nil, fmt.Errorf("generate slots: %w", err)
	}

	notify.Success(s.notifier, "Slots Created", fmt.Sprintf("Created %d time slots for %s.", len(slots), req.Date))
	return slots, nil
}

// validate enforces the client-side rules: parseable inputs, ordered time
// range, duration bounds and no past dates, all relative to the window's own
// timezone.
func (s *slotService) validate(req CreateSlotsRequest) error {
	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	date, err := localdate.Parse(req.Date)
	if err != nil {
		return err
	}

	minutes, err := localdate.MinutesBetween(req.TimeFrom, req.TimeTo)
	if err != nil {
		return err
	}
	if minutes <= 0 {
		return ErrInvalidTimeRange
	}

	if req.Duration < MinDurationMinutes || req.Duration > MaxDurationMinutes {
		return ErrInvalidDuration
	}

	if date.Before(localdate.FromTime(s.now().In(loc))) {
		return ErrPastDate
	}
	return nil
}

func (s *slotService) ListSlots(ctx context.Context) ([]api.TimeSlot, error) {
	slots, err := s.api.GetDoctorSlots(ctx, s.identity.Username)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *slotService) AvailableSlots(ctx context.Context, doctorID, date string) ([]api.TimeSlot, error) {
	if _, err := localdate.Parse(date); err != nil {
		return nil, err
	}
	slots, err := s.api.GetAvailableSlots(ctx, doctorID, date)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("available slots: %w", err)
	}
	return slots, nil
}

func (s *slotService) DeleteSlot(ctx context.Context, id string) error {
	slots, err := s.api.GetDoctorSlots(ctx, s.identity.Username)
	if err != nil {
		return fmt.Errorf("list slots: %w", err)
	}

	var target *api.TimeSlot
	for i := range slots {
		if slots[i].ID == id {
			target = &slots[i]
			break
		}
	}
	if target == nil {
		return ErrSlotNotFound
	}
	if !target.IsAvailable {
		notify.Warn(s.notifier, "Slot Booked", "Booked slots cannot be deleted.")
		return ErrSlotBooked
	}

	if err := s.api.DeleteTimeSlot(ctx, id); err != nil {
		notify.Error(s.notifier, "Delete Failed", "Could not delete the time slot. Please try again.")
		return fmt.Errorf("delete slot: %w", err)
	}
	notify.Success(s.notifier, "Slot Deleted", "The time slot was removed.")
	return nil
}
