package api

import "context"

type PermissionStatus string

const (
	PermissionPending  PermissionStatus = "PENDING"
	PermissionApproved PermissionStatus = "APPROVED"
	PermissionRejected PermissionStatus = "REJECTED"
)

// DocumentPermissionRequest is a doctor's time-boxed grant request for one
// patient document tied to an appointment. ExpiresAt is stamped by the
// server on approval (respondedAt + 12h); whether access is still live is
// derived at read time, never stored here.
type DocumentPermissionRequest struct {
	ID             string           `json:"id"`
	AppointmentID  string           `json:"appointmentId"`
	DoctorID       string           `json:"doctorId"`
	DoctorName     string           `json:"doctorName,omitempty"`
	PatientID      string           `json:"patientId"`
	DocumentID     string           `json:"documentId"`
	DocumentName   string           `json:"documentName,omitempty"`
	DocumentType   string           `json:"documentType,omitempty"`
	RequestMessage string           `json:"requestMessage,omitempty"`
	Status         PermissionStatus `json:"status"`
	RequestedAt    string           `json:"requestedAt"`
	RespondedAt    string           `json:"respondedAt,omitempty"`
	ExpiresAt      string           `json:"expiresAt,omitempty"`
}

type RequestDocumentPermission struct {
	AppointmentID  string `json:"appointmentId"`
	DocumentID     string `json:"documentId"`
	RequestMessage string `json:"requestMessage,omitempty"`
}

type PermissionResponse struct {
	Response        PermissionStatus `json:"response"`
	ResponseMessage string           `json:"responseMessage,omitempty"`
}

// DocumentAccess is the server's view of a doctor's live access to one
// document within an appointment.
type DocumentAccess struct {
	DocumentID    string `json:"documentId"`
	PermissionID  string `json:"permissionId"`
	CanView       bool   `json:"canView"`
	ExpiresAt     string `json:"expiresAt,omitempty"`
	TimeRemaining int    `json:"timeRemaining,omitempty"`
}

func (c *Client) RequestDocumentPermission(ctx context.Context, req RequestDocumentPermission) (*DocumentPermissionRequest, error) {
	var out DocumentPermissionRequest
	if err := c.post(ctx, "/document-permissions/request", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RespondToPermissionRequest(ctx context.Context, permissionID string, resp PermissionResponse) (*DocumentPermissionRequest, error) {
	var out DocumentPermissionRequest
	if err := c.post(ctx, "/document-permissions/"+permissionID+"/respond", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RevokeDocumentPermission(ctx context.Context, permissionID string) error {
	return c.post(ctx, "/document-permissions/"+permissionID+"/revoke", nil, nil)
}

func (c *Client) GetPatientPermissionRequests(ctx context.Context, patientID string) ([]DocumentPermissionRequest, error) {
	var out []DocumentPermissionRequest
	if err := c.get(ctx, "/document-permissions/patient/"+patientID+"/requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorDocumentAccess(ctx context.Context, appointmentID string) ([]DocumentAccess, error) {
	var out []DocumentAccess
	if err := c.get(ctx, "/document-permissions/doctor/appointment/"+appointmentID+"/access", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CheckDocumentAccess(ctx context.Context, documentID, appointmentID string) (*DocumentAccess, error) {
	var out DocumentAccess
	if err := c.get(ctx, "/document-permissions/check-access/"+documentID+"/"+appointmentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocumentFile fetches the shared document itself as an opaque blob.
// View and download are the caller's choice; both go through the same
// permission check server-side.
func (c *Client) GetDocumentFile(ctx context.Context, documentID string) ([]byte, string, error) {
	return c.getBlob(ctx, "/document-permissions/documents/"+documentID)
}
