// Package emergency drives the urgent-care request lifecycle:
// PENDING→ACCEPTED→COMPLETED, PENDING→REJECTED (terminal) and the doctor
// availability toggle. Creation is validated locally; accept/reject remove a
// request from the pending view only after the server confirms, while the
// availability toggle flips optimistically and rolls back on failure.
package emergency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/notify"
	"github.com/medvault/medvault-cli/pkg/optimistic"
	"github.com/medvault/medvault-cli/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Symptoms     string
	UrgencyLevel api.UrgencyLevel
	Location     string
	Notes        string
	ContactPhone string
}

// RejectionReason is the reason-capture value the reject flow routes
// through. Reject is never issued without one being constructed first, even
// when the free text is empty.
type RejectionReason struct {
	Text string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this service consumes.
type API interface {
	CreateEmergencyRequest(ctx context.Context, req api.CreateEmergencyRequest) (*api.EmergencyRequest, error)
	GetPatientEmergencyRequests(ctx context.Context, patientID string) ([]api.EmergencyRequest, error)
	GetPendingEmergencyRequests(ctx context.Context, doctorID string) ([]api.EmergencyRequest, error)
	AcceptEmergencyRequest(ctx context.Context, doctorID, requestID, notes string) (*api.EmergencyRequest, error)
	RejectEmergencyRequest(ctx context.Context, doctorID, requestID, reason string) (*api.EmergencyRequest, error)
	CompleteEmergencyRequest(ctx context.Context, requestID string) (*api.EmergencyRequest, error)
	GetDoctorAvailability(ctx context.Context, doctorID string) (*api.DoctorAvailability, error)
	SetDoctorAvailability(ctx context.Context, doctorID string, isAvailable bool) (*api.DoctorAvailability, error)
}

type Service interface {
	// Create validates symptoms, location and urgency locally; an invalid
	// request never reaches the network.
	Create(ctx context.Context, req CreateRequest) (*api.EmergencyRequest, error)

	// MyRequests lists the patient's own requests.
	MyRequests(ctx context.Context) ([]api.EmergencyRequest, error)

	// PendingRequests lists requests awaiting this doctor. Results are held
	// locally so accept/reject can remove confirmed items from the view.
	PendingRequests(ctx context.Context) ([]api.EmergencyRequest, error)

	// Accept and Reject confirm with the server before the item leaves the
	// pending view. Reject routes through a RejectionReason.
	Accept(ctx context.Context, requestID, notes string) error
	Reject(ctx context.Context, requestID string, reason RejectionReason) error

	// Complete marks an accepted (or still pending) request finished;
	// patient-initiated.
	Complete(ctx context.Context, requestID string) error

	// Availability reads the doctor's current toggle state.
	Availability(ctx context.Context) (bool, error)

	// SetAvailability flips the toggle optimistically and rolls back to the
	// prior value when the server call fails.
	SetAvailability(ctx context.Context, available bool) error

	// IsAvailable returns the locally held toggle value.
	IsAvailable() bool
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type emergencyService struct {
	api           API
	identity      session.Identity
	notifier      notify.Notifier
	defaultRegion string
	logger        *slog.Logger

	mu        sync.Mutex
	pending   []api.EmergencyRequest
	available bool
}

func New(apiClient API, id session.Identity, notifier notify.Notifier, defaultRegion string, logger *slog.Logger) Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &emergencyService{
		api:           apiClient,
		identity:      id,
		notifier:      notifier,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

func (e *emergencyService) Create(ctx context.Context, req CreateRequest) (*api.EmergencyRequest, error) {
	if err := validateCreate(req); err != nil {
		notify.Warn(e.notifier, "Missing Information", err.Error())
		return nil, err
	}

	body := api.CreateEmergencyRequest{
		PatientID:    e.identity.Username,
		Symptoms:     strings.TrimSpace(req.Symptoms),
		UrgencyLevel: req.UrgencyLevel,
		Location:     strings.TrimSpace(req.Location),
		Notes:        req.Notes,
	}

	if req.ContactPhone != "" {
		normalized, err := phone.Normalize(req.ContactPhone, e.defaultRegion)
		if err != nil {
			notify.Warn(e.notifier, "Invalid Phone Number", "Check the contact number and try again.")
			return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
		}
		body.Notes = appendContact(body.Notes, normalized)
	}

	created, err := e.api.CreateEmergencyRequest(ctx, body)
	if err != nil {
		notify.Error(e.notifier, "Request Failed", "Could not submit the emergency request. Please try again.")
		return nil, fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	notify.Success(e.notifier, "Request Submitted", "Available doctors have been notified.")
	return created, nil
}

func validateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.Symptoms) == "" {
		return ErrSymptomsRequired
	}
	if strings.TrimSpace(req.Location) == "" {
		return ErrLocationRequired
	}
	switch req.UrgencyLevel {
	case api.UrgencyHigh, api.UrgencyMedium, api.UrgencyLow:
		return nil
	default:
		return ErrInvalidUrgency
	}
}

func appendContact(notes, phoneNumber string) string {
	if notes == "" {
		return "Contact: " + phoneNumber
	}
	return notes + "\nContact: " + phoneNumber
}

func (e *emergencyService) MyRequests(ctx context.Context) ([]api.EmergencyRequest, error) {
	reqs, err := e.api.GetPatientEmergencyRequests(ctx, e.identity.Username)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list emergency requests: %w", err)
	}
	return reqs, nil
}

func (e *emergencyService) PendingRequests(ctx context.Context) ([]api.EmergencyRequest, error) {
	reqs, err := e.api.GetPendingEmergencyRequests(ctx, e.identity.Username)
	if err != nil {
		if api.IsNotFound(err) {
			reqs = nil
		} else {
			return nil, fmt.Errorf("list pending requests: %w", err)
		}
	}
	e.mu.Lock()
	e.pending = reqs
	e.mu.Unlock()
	return reqs, nil
}

func (e *emergencyService) Accept(ctx context.Context, requestID, notes string) error {
	if _, err := e.api.AcceptEmergencyRequest(ctx, e.identity.Username, requestID, notes); err != nil {
		notify.Error(e.notifier, "Accept Failed", "Could not accept the request. Please try again.")
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	e.removePending(requestID)
	notify.Success(e.notifier, "Request Accepted", "The patient has been notified.")
	return nil
}

func (e *emergencyService) Reject(ctx context.Context, requestID string, reason RejectionReason) error {
	if _, err := e.api.RejectEmergencyRequest(ctx, e.identity.Username, requestID, reason.Text); err != nil {
		notify.Error(e.notifier, "Reject Failed", "Could not reject the request. Please try again.")
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	e.removePending(requestID)
	notify.Success(e.notifier, "Request Rejected", "The request was declined.")
	return nil
}

// removePending drops the confirmed item from the local pending view. Only
// called after a successful server response; there is no optimistic removal
// here.
func (e *emergencyService) removePending(requestID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.pending[:0]
	for _, r := range e.pending {
		if r.ID != requestID {
			kept = append(kept, r)
		}
	}
	e.pending = kept
}

func (e *emergencyService) Complete(ctx context.Context, requestID string) error {
	if _, err := e.api.CompleteEmergencyRequest(ctx, requestID); err != nil {
		notify.Error(e.notifier, "Complete Failed", "Could not complete the request. Please try again.")
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	notify.Success(e.notifier, "Request Completed", "Thank you for confirming.")
	return nil
}

func (e *emergencyService) Availability(ctx context.Context) (bool, error) {
	av, err := e.api.GetDoctorAvailability(ctx, e.identity.Username)
	if err != nil {
		return false, fmt.Errorf("get availability: %w", err)
	}
	e.mu.Lock()
	e.available = av.IsAvailable
	e.mu.Unlock()
	return av.IsAvailable, nil
}

func (e *emergencyService) SetAvailability(ctx context.Context, available bool) error {
	err := optimistic.Update(ctx,
		func() bool {
			e.mu.Lock()
			defer e.mu.Unlock()
			return e.available
		},
		func(v bool) {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.available = v
		},
		available,
		func(ctx context.Context) error {
			_, err := e.api.SetDoctorAvailability(ctx, e.identity.Username, available)
			return err
		},
	)
	if err != nil {
		notify.Error(e.notifier, "Availability Unchanged", "Could not update availability. Please try again.")
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	if available {
		notify.Info(e.notifier, "Availability Updated", "You will now receive emergency requests.")
	} else {
		notify.Info(e.notifier, "Availability Updated", "You will no longer receive emergency requests.")
	}
	return nil
}

func (e *emergencyService) IsAvailable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}
