package api

import "context"

type EmergencyStatus string

const (
	EmergencyPending   EmergencyStatus = "PENDING"
	EmergencyAccepted  EmergencyStatus = "ACCEPTED"
	EmergencyRejected  EmergencyStatus = "REJECTED"
	EmergencyCompleted EmergencyStatus = "COMPLETED"
)

type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "HIGH"
	UrgencyMedium UrgencyLevel = "MEDIUM"
	UrgencyLow    UrgencyLevel = "LOW"
)

type EmergencyRequest struct {
	ID           string          `json:"id"`
	PatientID    string          `json:"patientId"`
	PatientName  string          `json:"patientName,omitempty"`
	PatientPhone string          `json:"patientPhone,omitempty"`
	Symptoms     string          `json:"symptoms"`
	UrgencyLevel UrgencyLevel    `json:"urgencyLevel"`
	Location     string          `json:"location"`
	Status       EmergencyStatus `json:"status"`
	DoctorID     string          `json:"doctorId,omitempty"`
	DoctorName   string          `json:"doctorName,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}

type CreateEmergencyRequest struct {
	PatientID    string       `json:"patientId"`
	Symptoms     string       `json:"symptoms"`
	UrgencyLevel UrgencyLevel `json:"urgencyLevel"`
	Location     string       `json:"location"`
	Notes        string       `json:"notes,omitempty"`
}

type DoctorAvailability struct {
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	IsAvailable     bool   `json:"isAvailable"`
	CurrentLocation string `json:"currentLocation,omitempty"`
}

type EmergencyStats struct {
	TotalRequests       int     `json:"totalRequests"`
	PendingRequests     int     `json:"pendingRequests"`
	AcceptedRequests    int     `json:"acceptedRequests"`
	CompletedRequests   int     `json:"completedRequests"`
	AverageResponseTime float64 `json:"averageResponseTime"`
}

func (c *Client) CreateEmergencyRequest(ctx context.Context, req CreateEmergencyRequest) (*EmergencyRequest, error) {
	var out EmergencyRequest
	if err := c.post(ctx, "/emergency/request", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPatientEmergencyRequests(ctx context.Context, patientID string) ([]EmergencyRequest, error) {
	var out []EmergencyRequest
	if err := c.get(ctx, "/emergency/patient/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPendingEmergencyRequests(ctx context.Context, doctorID string) ([]EmergencyRequest, error) {
	var out []EmergencyRequest
	if err := c.get(ctx, "/emergency/doctor/"+doctorID+"/requests/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorEmergencyRequests(ctx context.Context, doctorID string) ([]EmergencyRequest, error) {
	var out []EmergencyRequest
	if err := c.get(ctx, "/emergency/doctor/"+doctorID+"/requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AcceptEmergencyRequest(ctx context.Context, doctorID, requestID string, notes string) (*EmergencyRequest, error) {
	var out EmergencyRequest
	body := struct {
		Notes string `json:"notes,omitempty"`
	}{Notes: notes}
	if err := c.patch(ctx, "/emergency/doctor/"+doctorID+"/request/"+requestID+"/accept", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RejectEmergencyRequest(ctx context.Context, doctorID, requestID string, reason string) (*EmergencyRequest, error) {
	var out EmergencyRequest
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}
	if err := c.patch(ctx, "/emergency/doctor/"+doctorID+"/request/"+requestID+"/reject", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteEmergencyRequest(ctx context.Context, requestID string) (*EmergencyRequest, error) {
	var out EmergencyRequest
	if err := c.patch(ctx, "/emergency/request/"+requestID+"/complete", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelEmergencyRequest deletes a request outright. Exposed by the backend
// but not surfaced in any command tree; the patient-facing flow completes
// requests instead.
func (c *Client) CancelEmergencyRequest(ctx context.Context, requestID string) error {
	return c.delete(ctx, "/emergency/request/"+requestID)
}

func (c *Client) GetDoctorAvailability(ctx context.Context, doctorID string) (*DoctorAvailability, error) {
	var out DoctorAvailability
	if err := c.get(ctx, "/emergency/doctor/"+doctorID+"/availability", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetDoctorAvailability(ctx context.Context, doctorID string, isAvailable bool) (*DoctorAvailability, error) {
	var out DoctorAvailability
	body := struct {
		IsAvailable bool `json:"isAvailable"`
	}{IsAvailable: isAvailable}
	if err := c.patch(ctx, "/emergency/doctor/"+doctorID+"/availability", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
