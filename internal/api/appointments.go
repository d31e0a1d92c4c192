package api

import "context"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentApproved  AppointmentStatus = "APPROVED"
	AppointmentRejected  AppointmentStatus = "REJECTED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
)

type Appointment struct {
	ID              string            `json:"id"`
	PatientID       string            `json:"patientId"`
	DoctorID        string            `json:"doctorId"`
	TimeSlotID      string            `json:"timeSlotId"`
	Date            string            `json:"date"`
	TimeFrom        string            `json:"timeFrom"`
	TimeTo          string            `json:"timeTo"`
	Status          AppointmentStatus `json:"status"`
	DoctorName      string            `json:"doctorName,omitempty"`
	PatientName     string            `json:"patientName,omitempty"`
	Specialization  string            `json:"specialization,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	RescheduleCount int               `json:"rescheduleCount,omitempty"`
}

type BookAppointmentRequest struct {
	PatientID  string `json:"patientId"`
	DoctorID   string `json:"doctorId"`
	TimeSlotID string `json:"timeSlotId"`
	Notes      string `json:"notes,omitempty"`
}

type RescheduleRequest struct {
	TimeSlotID string `json:"timeSlotId"`
}

func (c *Client) BookAppointment(ctx context.Context, req BookAppointmentRequest) (*Appointment, error) {
	var a Appointment
	if err := c.post(ctx, "/appointments", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	var a Appointment
	if err := c.get(ctx, "/appointments/"+id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GetPatientAppointments(ctx context.Context, patientID string) ([]Appointment, error) {
	var out []Appointment
	if err := c.get(ctx, "/appointments/patient/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorAppointments(ctx context.Context, doctorID string) ([]Appointment, error) {
	var out []Appointment
	if err := c.get(ctx, "/appointments/doctor/"+doctorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAppointmentStatus advances an appointment through its lifecycle
// (approve, reject, complete). The server owns the legality of the
// transition; this layer just submits it.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error) {
	var a Appointment
	body := struct {
		Status AppointmentStatus `json:"status"`
	}{Status: status}
	if err := c.patch(ctx, "/appointments/"+id+"/status", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// RescheduleAppointment moves a booking to a new slot. The server enforces
// the at-most-once, >=2h-before-start rule; the client only relays it.
func (c *Client) RescheduleAppointment(ctx context.Context, id string, req RescheduleRequest) (*Appointment, error) {
	var a Appointment
	if err := c.patch(ctx, "/appointments/"+id+"/reschedule", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id string) error {
	return c.delete(ctx, "/appointments/"+id)
}
