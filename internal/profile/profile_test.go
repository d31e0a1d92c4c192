package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/notify"
)

type fakeAPI struct {
	doctor     *api.DoctorProfile
	patient    *api.PatientProfile
	err        error
	fetchCalls int
}

func (f *fakeAPI) GetDoctorProfile(ctx context.Context, username string) (*api.DoctorProfile, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doctor, nil
}

func (f *fakeAPI) GetPatientProfile(ctx context.Context, username string) (*api.PatientProfile, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.patient, nil
}

func notFoundErr() error {
	return &api.APIError{Err: api.ErrNotFound, Message: "profile not found", HTTPStatus: 404}
}

func TestResolveDoctor(t *testing.T) {
	fake := &fakeAPI{doctor: &api.DoctorProfile{
		ID: "D1", FirstName: "Ada", LastName: "Osei",
		IsProfileComplete: true, Status: api.ProfileApproved,
	}}
	svc := New(fake, &notify.Recorder{}, nil)

	snap, err := svc.Resolve(context.Background(), &session.Identity{Username: "ada", Role: authorize.RoleDoctor})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if snap.Kind != KindDoctor || !snap.Exists {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !snap.CanBookAppointments() {
		t.Error("approved complete doctor should be able to book")
	}
}

func TestResolveMissingProfileIsEmptyState(t *testing.T) {
	rec := &notify.Recorder{}
	fake := &fakeAPI{err: notFoundErr()}
	svc := New(fake, rec, nil)

	snap, err := svc.Resolve(context.Background(), &session.Identity{Username: "pat", Role: authorize.RolePatient})
	if err != nil {
		t.Fatalf("missing profile must not be an error, got %v", err)
	}
	if snap.Exists {
		t.Error("snapshot should not exist")
	}
	if len(rec.Notices()) != 0 {
		t.Errorf("missing profile surfaced %d notices, want 0", len(rec.Notices()))
	}
}

func TestResolveTransientFailureSurfacesNotice(t *testing.T) {
	rec := &notify.Recorder{}
	fake := &fakeAPI{err: &api.APIError{Err: api.ErrTransient, Message: "boom", HTTPStatus: 500}}
	svc := New(fake, rec, nil)

	_, err := svc.Resolve(context.Background(), &session.Identity{Username: "pat", Role: authorize.RolePatient})
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	notices := rec.Notices()
	if len(notices) != 1 || notices[0].Level != notify.LevelError {
		t.Errorf("expected one error notice, got %+v", notices)
	}
}

func TestPatientCompletenessNeedsNames(t *testing.T) {
	tests := []struct {
		name    string
		profile api.PatientProfile
		want    bool
	}{
		{"flag and names set", api.PatientProfile{IsProfileComplete: true, FirstName: "A", LastName: "B"}, true},
		{"flag set but no last name", api.PatientProfile{IsProfileComplete: true, FirstName: "A"}, false},
		{"names set but flag false", api.PatientProfile{FirstName: "A", LastName: "B"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			snap := &Snapshot{Kind: KindPatient, Exists: true, Patient: &p}
			if got := snap.IsComplete(); got != tt.want {
				t.Errorf("IsComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShowProfileWarning(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   *Snapshot
		wantBlock  bool
		wantTitle  string
	}{
		{
			"missing profile blocks",
			&Snapshot{Kind: KindDoctor, Exists: false},
			true, "Profile Incomplete",
		},
		{
			"pending blocks",
			&Snapshot{Kind: KindDoctor, Exists: true, Doctor: &api.DoctorProfile{
				IsProfileComplete: true, Status: api.ProfilePending,
			}},
			true, "Profile Pending Approval",
		},
		{
			"rejected blocks",
			&Snapshot{Kind: KindDoctor, Exists: true, Doctor: &api.DoctorProfile{
				IsProfileComplete: true, Status: api.ProfileRejected,
			}},
			true, "Profile Rejected",
		},
		{
			"complete approved passes",
			&Snapshot{Kind: KindDoctor, Exists: true, Doctor: &api.DoctorProfile{
				IsProfileComplete: true, Status: api.ProfileApproved,
			}},
			false, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &notify.Recorder{}
			svc := New(&fakeAPI{}, rec, nil)

			if got := svc.ShowProfileWarning(tt.snapshot); got != tt.wantBlock {
				t.Fatalf("ShowProfileWarning = %v, want %v", got, tt.wantBlock)
			}
			notices := rec.Notices()
			if !tt.wantBlock {
				if len(notices) != 0 {
					t.Errorf("unexpected notices: %+v", notices)
				}
				return
			}
			if len(notices) != 1 || notices[0].Title != tt.wantTitle {
				t.Errorf("notices = %+v, want title %q", notices, tt.wantTitle)
			}
		})
	}
}
