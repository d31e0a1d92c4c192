// Package verification is the admin workflow over pending profiles: list
// PENDING doctor and patient profiles as a tagged variant and approve or
// reject them one at a time. No batch operation, no undo, no retry.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/notify"
)

var ErrVerifyFailed = errors.New("verification failed")

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Kind string

const (
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

// PendingProfile is one entry in the admin's verification queue. Exactly one
// of Doctor/Patient is set, matching Kind; consumers switch on Kind rather
// than probing pointers.
type PendingProfile struct {
	Kind    Kind
	Doctor  *api.DoctorProfile
	Patient *api.PatientProfile
}

// ID returns the profile id regardless of variant.
func (p PendingProfile) ID() string {
	switch p.Kind {
	case KindDoctor:
		return p.Doctor.ID
	case KindPatient:
		return p.Patient.ID
	default:
		return ""
	}
}

// Name returns a display name regardless of variant.
func (p PendingProfile) Name() string {
	switch p.Kind {
	case KindDoctor:
		return p.Doctor.FirstName + " " + p.Doctor.LastName
	case KindPatient:
		return p.Patient.FirstName + " " + p.Patient.LastName
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this service consumes.
type API interface {
	GetPendingDoctors(ctx context.Context) ([]api.DoctorProfile, error)
	GetPendingPatients(ctx context.Context) ([]api.PatientProfile, error)
	VerifyDoctorProfile(ctx context.Context, id string, isVerified bool) error
	VerifyPatientProfile(ctx context.Context, id string, isVerified bool) error
}

type Service interface {
	// ListPending fetches the pending queue for one kind. An empty queue is
	// an empty state, not an error.
	ListPending(ctx context.Context, kind Kind) ([]PendingProfile, error)

	// Verify approves (isVerified=true) or rejects a pending profile. On
	// success the item leaves the local queue and a success notice is shown;
	// on failure the item stays and a generic notice is surfaced.
	Verify(ctx context.Context, kind Kind, id string, isVerified bool) error

	// Pending returns the locally held queue for one kind.
	Pending(kind Kind) []PendingProfile
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type verificationService struct {
	api      API
	notifier notify.Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[Kind][]PendingProfile
}

func New(apiClient API, notifier notify.Notifier, logger *slog.Logger) Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &verificationService{
		api:      apiClient,
		notifier: notifier,
		logger:   logger,
		pending:  make(map[Kind][]PendingProfile),
	}
}

func (v *verificationService) ListPending(ctx context.Context, kind Kind) ([]PendingProfile, error) {
	var out []PendingProfile

	switch kind {
	case KindDoctor:
		docs, err := v.api.GetPendingDoctors(ctx)
		if err != nil && !api.IsNotFound(err) {
			return nil, fmt.Errorf("list pending doctors: %w", err)
		}
		for i := range docs {
			out = append(out, PendingProfile{Kind: KindDoctor, Doctor: &docs[i]})
		}

	case KindPatient:
		pats, err := v.api.GetPendingPatients(ctx)
		if err != nil && !api.IsNotFound(err) {
			return nil, fmt.Errorf("list pending patients: %w", err)
		}
		for i := range pats {
			out = append(out, PendingProfile{Kind: KindPatient, Patient: &pats[i]})
		}

	default:
		return nil, fmt.Errorf("unknown profile kind %q", kind)
	}

	v.mu.Lock()
	v.pending[kind] = out
	v.mu.Unlock()
	return out, nil
}

func (v *verificationService) Verify(ctx context.Context, kind Kind, id string, isVerified bool) error {
	var err error
	switch kind {
	case KindDoctor:
		err = v.api.VerifyDoctorProfile(ctx, id, isVerified)
	case KindPatient:
		err = v.api.VerifyPatientProfile(ctx, id, isVerified)
	default:
		return fmt.Errorf("unknown profile kind %q", kind)
	}

	if err != nil {
		// The item stays in the queue; the admin retries by re-invoking.
		v.logger.Warn("profile verification failed", "kind", kind, "id", id, "err", err)
		notify.Error(v.notifier, "Verification Failed", "Could not update the profile. Please try again.")
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	v.removePending(kind, id)
	if isVerified {
		notify.Success(v.notifier, "Profile Approved", "The user can now access the platform.")
	} else {
		notify.Success(v.notifier, "Profile Rejected", "The user has been notified.")
	}
	return nil
}

func (v *verificationService) removePending(kind Kind, id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	queue := v.pending[kind]
	kept := queue[:0]
	for _, p := range queue {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	v.pending[kind] = kept
}

func (v *verificationService) Pending(kind Kind) []PendingProfile {
	v.mu.Lock()
	defer v.mu.Unlock()
	queue := v.pending[kind]
	out := make([]PendingProfile, len(queue))
	copy(out, queue)
	return out
}
