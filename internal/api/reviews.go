package api

import "context"

type Review struct {
	ID              string `json:"id"`
	AppointmentID   string `json:"appointmentId"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName,omitempty"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName,omitempty"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

type CreateReviewRequest struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

type DoctorRating struct {
	DoctorID      string  `json:"doctorId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	var out Review
	if err := c.post(ctx, "/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDoctorReviews(ctx context.Context, doctorID string) ([]Review, error) {
	var out []Review
	if err := c.get(ctx, "/reviews/doctor/"+doctorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPatientReviews(ctx context.Context, patientID string) ([]Review, error) {
	var out []Review
	if err := c.get(ctx, "/reviews/patient/"+patientID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDoctorRating(ctx context.Context, doctorID string) (*DoctorRating, error) {
	var out DoctorRating
	if err := c.get(ctx, "/reviews/doctor/"+doctorID+"/rating", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CanReviewAppointment reports whether the appointment is COMPLETED and not
// yet reviewed. One review per appointment is enforced server-side.
func (c *Client) CanReviewAppointment(ctx context.Context, appointmentID string) (bool, error) {
	var resp struct {
		CanReview bool `json:"canReview"`
	}
	if err := c.get(ctx, "/reviews/appointment/"+appointmentID+"/can-review", &resp); err != nil {
		return false, err
	}
	return resp.CanReview, nil
}
