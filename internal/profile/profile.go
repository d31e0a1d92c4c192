// Package profile resolves the role-specific profile for the authenticated
// user and derives the predicates that gate booking and slot creation.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/notify"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Kind string

const (
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

// Snapshot is the resolved profile as a tagged variant: exactly one of
// Doctor/Patient is set, matching Kind. Exists is false when the profile has
// not been created yet, which is an empty state, not an error.
type Snapshot struct {
	Kind    Kind
	Exists  bool
	Doctor  *api.DoctorProfile
	Patient *api.PatientProfile
}

// Status returns the verification tri-state, or ProfilePending when the
// profile does not exist yet.
func (s *Snapshot) Status() api.ProfileStatus {
	switch {
	case s.Doctor != nil:
		return s.Doctor.Status
	case s.Patient != nil:
		return s.Patient.Status
	default:
		return api.ProfilePending
	}
}

// IsComplete reports profile completeness. Patients additionally need first
// and last name present; the flag alone is not trusted for them.
func (s *Snapshot) IsComplete() bool {
	switch {
	case s.Doctor != nil:
		return s.Doctor.IsProfileComplete
	case s.Patient != nil:
		return s.Patient.IsProfileComplete && s.Patient.FirstName != "" && s.Patient.LastName != ""
	default:
		return false
	}
}

func (s *Snapshot) IsApproved() bool { return s.Exists && s.Status() == api.ProfileApproved }
func (s *Snapshot) IsPending() bool  { return s.Exists && s.Status() == api.ProfilePending }
func (s *Snapshot) IsRejected() bool { return s.Exists && s.Status() == api.ProfileRejected }

// CanBookAppointments gates booking and slot creation: the profile must be
// complete and approved.
func (s *Snapshot) CanBookAppointments() bool {
	return s.IsComplete() && s.IsApproved()
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this service consumes.
type API interface {
	GetDoctorProfile(ctx context.Context, username string) (*api.DoctorProfile, error)
	GetPatientProfile(ctx context.Context, username string) (*api.PatientProfile, error)
}

type Service interface {
	// Resolve fetches the profile matching the identity's role. A missing
	// profile resolves to a non-existent Snapshot without surfacing a notice.
	Resolve(ctx context.Context, id *session.Identity) (*Snapshot, error)

	// ShowProfileWarning surfaces a notice and returns true when the profile
	// state must block the caller's action (incomplete, pending or rejected).
	// Callers abort on true.
	ShowProfileWarning(s *Snapshot) bool
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type profileService struct {
	api      API
	notifier notify.Notifier
	logger   *slog.Logger
}

func New(apiClient API, notifier notify.Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &profileService{api: apiClient, notifier: notifier, logger: logger}
}

func (p *profileService) Resolve(ctx context.Context, id *session.Identity) (*Snapshot, error) {
	if id == nil {
		return nil, ErrNoIdentity
	}

	switch id.Role {
	case authorize.RoleDoctor:
		doc, err := p.api.GetDoctorProfile(ctx, id.Username)
		if err != nil {
			return p.resolveErr(KindDoctor, err)
		}
		return &Snapshot{Kind: KindDoctor, Exists: true, Doctor: doc}, nil

	case authorize.RolePatient:
		pat, err := p.api.GetPatientProfile(ctx, id.Username)
		if err != nil {
			return p.resolveErr(KindPatient, err)
		}
		return &Snapshot{Kind: KindPatient, Exists: true, Patient: pat}, nil

	default:
		return nil, fmt.Errorf("%w: role %q has no profile", ErrNoIdentity, id.Role)
	}
}

// resolveErr maps a fetch failure: not-found is the benign not-yet-created
// state, anything else surfaces a generic notice and an error flag.
func (p *profileService) resolveErr(kind Kind, err error) (*Snapshot, error) {
	if api.IsNotFound(err) {
		return &Snapshot{Kind: kind, Exists: false}, nil
	}
	p.logger.Warn("profile fetch failed", "kind", kind, "err", err)
	notify.Error(p.notifier, "Profile", "Could not load your profile. Please try again.")
	return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
}

func (p *profileService) ShowProfileWarning(s *Snapshot) bool {
	switch {
	case s == nil || !s.Exists || !s.IsComplete():
		notify.Warn(p.notifier, "Profile Incomplete", "Complete your profile before using this feature.")
		return true
	case s.IsPending():
		notify.Warn(p.notifier, "Profile Pending Approval", "Your profile is awaiting admin verification.")
		return true
	case s.IsRejected():
		notify.Error(p.notifier, "Profile Rejected", "Your profile was rejected. Contact support for details.")
		return true
	default:
		return false
	}
}
