package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/profile"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/notify"
)

type fakeAPI struct {
	slots         []api.TimeSlot
	generateCalls int
	deleteCalls   int
}

func (f *fakeAPI) GenerateTimeSlots(ctx context.Context, req api.GenerateSlotsRequest) ([]api.TimeSlot, error) {
	f.generateCalls++
	return []api.TimeSlot{{ID: "S1", DoctorID: req.DoctorID, Date: req.Date}}, nil
}

func (f *fakeAPI) GetDoctorSlots(ctx context.Context, doctorID string) ([]api.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeAPI) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]api.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeAPI) DeleteTimeSlot(ctx context.Context, id string) error {
	f.deleteCalls++
	return nil
}

// fakeProfiles returns a fixed snapshot, standing in for the resolver.
type fakeProfiles struct {
	snap *profile.Snapshot
	rec  *notify.Recorder
}

func (f *fakeProfiles) Resolve(ctx context.Context, id *session.Identity) (*profile.Snapshot, error) {
	return f.snap, nil
}

func (f *fakeProfiles) ShowProfileWarning(s *profile.Snapshot) bool {
	if s.CanBookAppointments() {
		return false
	}
	notify.Warn(f.rec, "Profile Pending Approval", "blocked")
	return true
}

func approvedDoctor() *profile.Snapshot {
	return &profile.Snapshot{
		Kind: profile.KindDoctor, Exists: true,
		Doctor: &api.DoctorProfile{IsProfileComplete: true, Status: api.ProfileApproved},
	}
}

func pendingDoctor() *profile.Snapshot {
	return &profile.Snapshot{
		Kind: profile.KindDoctor, Exists: true,
		Doctor: &api.DoctorProfile{IsProfileComplete: true, Status: api.ProfilePending},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
}

func newService(fakeAPIClient *fakeAPI, snap *profile.Snapshot, rec *notify.Recorder) Service {
	profiles := &fakeProfiles{snap: snap, rec: rec}
	id := session.Identity{Username: "doc", Role: authorize.RoleDoctor}
	return New(fakeAPIClient, profiles, id, rec, fixedNow, nil)
}

func TestCreateTimeSlotsValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateSlotsRequest
		wantErr error
	}{
		{
			"reversed time range",
			CreateSlotsRequest{Date: "2026-09-01", TimeFrom: "17:00", TimeTo: "09:00", Duration: 30, Timezone: "UTC"},
			ErrInvalidTimeRange,
		},
		{
			"zero-length window",
			CreateSlotsRequest{Date: "2026-09-01", TimeFrom: "09:00", TimeTo: "09:00", Duration: 30, Timezone: "UTC"},
			ErrInvalidTimeRange,
		},
		{
			"duration too short",
			CreateSlotsRequest{Date: "2026-09-01", TimeFrom: "09:00", TimeTo: "17:00", Duration: 10, Timezone: "UTC"},
			ErrInvalidDuration,
		},
		{
			"duration too long",
			CreateSlotsRequest{Date: "2026-09-01", TimeFrom: "09:00", TimeTo: "17:00", Duration: 180, Timezone: "UTC"},
			ErrInvalidDuration,
		},
		{
			"past date",
			CreateSlotsRequest{Date: "2026-08-28", TimeFrom: "09:00", TimeTo: "17:00", Duration: 30, Timezone: "UTC"},
			ErrPastDate,
		},
		{
			"unknown timezone",
			CreateSlotsRequest{Date: "2026-09-01", TimeFrom: "09:00", TimeTo: "17:00", Duration: 30, Timezone: "Mars/Olympus"},
			ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeClient := &fakeAPI{}
			svc := newService(fakeClient, approvedDoctor(), &notify.Recorder{})

			_, err := svc.CreateTimeSlots(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if fakeClient.generateCalls != 0 {
				t.Error("invalid request reached the network")
			}
		})
	}
}

func TestCreateTimeSlotsTodayIsAllowed(t *testing.T) {
	fakeClient := &fakeAPI{}
	svc := newService(fakeClient, approvedDoctor(), &notify.Recorder{})

	_, err := svc.CreateTimeSlots(context.Background(), CreateSlotsRequest{
		Date: "2026-08-29", TimeFrom: "14:00", TimeTo: "17:00", Duration: 30, Timezone: "UTC",
	})
	if err != nil {
		t.Fatalf("CreateTimeSlots failed for today's date: %v", err)
	}
	if fakeClient.generateCalls != 1 {
		t.Errorf("generate calls = %d, want 1", fakeClient.generateCalls)
	}
}

func TestPendingDoctorBlockedBeforeNetwork(t *testing.T) {
	fakeClient := &fakeAPI{}
	rec := &notify.Recorder{}
	svc := newService(fakeClient, pendingDoctor(), rec)

	_, err := svc.CreateTimeSlots(context.Background(), CreateSlotsRequest{
		Date: "2026-09-01", TimeFrom: "09:00", TimeTo: "17:00", Duration: 30, Timezone: "UTC",
	})
	if !errors.Is(err, ErrProfileBlocked) {
		t.Fatalf("error = %v, want ErrProfileBlocked", err)
	}
	if fakeClient.generateCalls != 0 {
		t.Error("blocked doctor's request reached the network")
	}
	notices := rec.Notices()
	if len(notices) != 1 || notices[0].Title != "Profile Pending Approval" {
		t.Errorf("notices = %+v, want pending-approval warning", notices)
	}
}

func TestDeleteSlotGuards(t *testing.T) {
	fakeClient := &fakeAPI{slots: []api.TimeSlot{
		{ID: "free", IsAvailable: true},
		{ID: "booked", IsAvailable: false},
	}}
	svc := newService(fakeClient, approvedDoctor(), &notify.Recorder{})

	t.Run("booked slot refused locally", func(t *testing.T) {
		err := svc.DeleteSlot(context.Background(), "booked")
		if !errors.Is(err, ErrSlotBooked) {
			t.Fatalf("error = %v, want ErrSlotBooked", err)
		}
		if fakeClient.deleteCalls != 0 {
			t.Error("delete of a booked slot reached the network")
		}
	})

	t.Run("unknown slot", func(t *testing.T) {
		if err := svc.DeleteSlot(context.Background(), "nope"); !errors.Is(err, ErrSlotNotFound) {
			t.Errorf("error = %v, want ErrSlotNotFound", err)
		}
	})

	t.Run("available slot deleted", func(t *testing.T) {
		if err := svc.DeleteSlot(context.Background(), "free"); err != nil {
			t.Fatalf("DeleteSlot failed: %v", err)
		}
		if fakeClient.deleteCalls != 1 {
			t.Errorf("delete calls = %d, want 1", fakeClient.deleteCalls)
		}
	})
}
