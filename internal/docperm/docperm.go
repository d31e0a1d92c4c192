// Package docperm runs the document-permission workflow: a doctor requests
// access to one patient document, the patient approves (granting a 12-hour
// window) or rejects, and an approved grant can be revoked while still live.
// Expiry is derived from (status, expiresAt, now) at read time; nothing
// stores an expired flag.
package docperm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/notify"
)

// AccessWindow is the grant lifetime the server stamps on approval.
const AccessWindow = 12 * time.Hour

// ---------------------------------------------------------------------------
// Derivations
// ---------------------------------------------------------------------------

// IsExpired reports whether an approved grant has lapsed. Only APPROVED
// requests carry expiresAt; anything else never counts as expired, it is
// simply not granted.
func IsExpired(status api.PermissionStatus, expiresAt string, now time.Time) bool {
	if status != api.PermissionApproved || expiresAt == "" {
		return false
	}
	exp, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}

// AccessGranted is the single permission check shared by view and download:
// status APPROVED and now strictly before expiresAt.
func AccessGranted(status api.PermissionStatus, expiresAt string, now time.Time) bool {
	return status == api.PermissionApproved && expiresAt != "" && !IsExpired(status, expiresAt, now)
}

// Revocable reports whether the patient may still revoke: approved and not
// yet expired.
func Revocable(req api.DocumentPermissionRequest, now time.Time) bool {
	return AccessGranted(req.Status, req.ExpiresAt, now)
}

// FormatRemaining renders the server-reported remaining seconds on a grant
// as a short duration like "1h30m" or "45s". Non-positive values render as
// "expired".
func FormatRemaining(seconds int) string {
	if seconds <= 0 {
		return "expired"
	}
	d := time.Duration(seconds) * time.Second
	return d.Truncate(time.Second).String()
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this service consumes.
type API interface {
	RequestDocumentPermission(ctx context.Context, req api.RequestDocumentPermission) (*api.DocumentPermissionRequest, error)
	RespondToPermissionRequest(ctx context.Context, permissionID string, resp api.PermissionResponse) (*api.DocumentPermissionRequest, error)
	RevokeDocumentPermission(ctx context.Context, permissionID string) error
	GetPatientPermissionRequests(ctx context.Context, patientID string) ([]api.DocumentPermissionRequest, error)
	CheckDocumentAccess(ctx context.Context, documentID, appointmentID string) (*api.DocumentAccess, error)
	GetDocumentFile(ctx context.Context, documentID string) ([]byte, string, error)
}

type Service interface {
	// Request creates a PENDING permission request (doctor side). The
	// message is optional free text shown to the patient.
	Request(ctx context.Context, appointmentID, documentID, message string) (*api.DocumentPermissionRequest, error)

	// Respond approves or rejects a pending request (patient side).
	Respond(ctx context.Context, permissionID string, approve bool, message string) (*api.DocumentPermissionRequest, error)

	// Revoke withdraws a live grant. Refused locally unless the request is
	// APPROVED and unexpired.
	Revoke(ctx context.Context, req api.DocumentPermissionRequest) error

	// MyRequests lists the patient's incoming permission requests.
	MyRequests(ctx context.Context) ([]api.DocumentPermissionRequest, error)

	// FetchDocument retrieves the document bytes after the shared permission
	// check passes. View and download both come through here.
	FetchDocument(ctx context.Context, documentID, appointmentID string) ([]byte, string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type docpermService struct {
	api      API
	identity session.Identity
	notifier notify.Notifier
	now      func() time.Time
	logger   *slog.Logger
}

func New(apiClient API, id session.Identity, notifier notify.Notifier, now func() time.Time, logger *slog.Logger) Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &docpermService{api: apiClient, identity: id, notifier: notifier, now: now, logger: logger}
}

func (d *docpermService) Request(ctx context.Context, appointmentID, documentID, message string) (*api.DocumentPermissionRequest, error) {
	req, err := d.api.RequestDocumentPermission(ctx, api.RequestDocumentPermission{
		AppointmentID:  appointmentID,
		DocumentID:     documentID,
		RequestMessage: message,
	})
	if err != nil {
		notify.Error(d.notifier, "Request Failed", "Could not send the permission request. Please try again.")
		return nil, fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	notify.Success(d.notifier, "Permission Requested", "The patient has been asked for access.")
	return req, nil
}

func (d *docpermService) Respond(ctx context.Context, permissionID string, approve bool, message string) (*api.DocumentPermissionRequest, error) {
	response := api.PermissionRejected
	if approve {
		response = api.PermissionApproved
	}

	req, err := d.api.RespondToPermissionRequest(ctx, permissionID, api.PermissionResponse{
		Response:        response,
		ResponseMessage: message,
	})
	if err != nil {
		notify.Error(d.notifier, "Response Failed", "Could not submit your response. Please try again.")
		return nil, fmt.Errorf("%w: %v", ErrActionFailed, err)
	}

	if approve {
		notify.Success(d.notifier, "Access Granted", "The doctor can view the document for 12 hours.")
	} else {
		notify.Success(d.notifier, "Access Denied", "The request was rejected.")
	}
	return req, nil
}

func (d *docpermService) Revoke(ctx context.Context, req api.DocumentPermissionRequest) error {
	if !Revocable(req, d.now()) {
		notify.Warn(d.notifier, "Cannot Revoke", "Only active approvals can be revoked.")
		return ErrNotRevocable
	}

	if err := d.api.RevokeDocumentPermission(ctx, req.ID); err != nil {
		notify.Error(d.notifier, "Revoke Failed", "Could not revoke access. Please try again.")
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	notify.Success(d.notifier, "Access Revoked", "The doctor can no longer view the document.")
	return nil
}

func (d *docpermService) MyRequests(ctx context.Context) ([]api.DocumentPermissionRequest, error) {
	reqs, err := d.api.GetPatientPermissionRequests(ctx, d.identity.Username)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list permission requests: %w", err)
	}
	return reqs, nil
}

func (d *docpermService) FetchDocument(ctx context.Context, documentID, appointmentID string) ([]byte, string, error) {
	access, err := d.api.CheckDocumentAccess(ctx, documentID, appointmentID)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, "", ErrAccessDenied
		}
		return nil, "", fmt.Errorf("check access: %w", err)
	}
	if !access.CanView || !AccessGranted(api.PermissionApproved, access.ExpiresAt, d.now()) {
		notify.Warn(d.notifier, "Access Expired", "Your permission for this document has lapsed.")
		return nil, "", ErrAccessDenied
	}

	data, contentType, err := d.api.GetDocumentFile(ctx, documentID)
	if err != nil {
		notify.Error(d.notifier, "Download Failed", "Could not fetch the document. Please try again.")
		return nil, "", fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	return data, contentType, nil
}
