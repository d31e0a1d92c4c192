package api

import "context"

type PrescriptionItem struct {
	MedicationName string `json:"medicationName"`
	Dose           string `json:"dose,omitempty"`
	Frequency      string `json:"frequency,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
}

// Prescription is created once per appointment by the doctor and immutable
// afterwards in this client.
type Prescription struct {
	ID            string             `json:"id"`
	AppointmentID string             `json:"appointmentId"`
	DoctorID      string             `json:"doctorId"`
	DoctorName    string             `json:"doctorName,omitempty"`
	PatientID     string             `json:"patientId"`
	Items         []PrescriptionItem `json:"items"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     string             `json:"createdAt,omitempty"`
}

type CreatePrescriptionRequest struct {
	AppointmentID string             `json:"appointmentId"`
	DoctorID      string             `json:"doctorId"`
	PatientID     string             `json:"patientId"`
	Items         []PrescriptionItem `json:"items"`
	Notes         string             `json:"notes,omitempty"`
}

func (c *Client) CreatePrescription(ctx context.Context, req CreatePrescriptionRequest) (*Prescription, error) {
	var out Prescription
	if err := c.post(ctx, "/prescriptions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAppointmentPrescription(ctx context.Context, appointmentID string) (*Prescription, error) {
	var out Prescription
	if err := c.get(ctx, "/prescriptions/appointment/"+appointmentID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPatientPrescriptions(ctx context.Context, patientID string) ([]Prescription, error) {
	var out []Prescription
	if err := c.get(ctx, "/prescriptions/patient/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorPrescriptions(ctx context.Context, doctorID string) ([]Prescription, error) {
	var out []Prescription
	if err := c.get(ctx, "/prescriptions/doctor/"+doctorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}
