package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListParams drives the admin account listings: 1-based page, page size and
// an optional free-text search filter.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q.Encode()
}

type DoctorPage struct {
	Items      []DoctorProfile `json:"items"`
	TotalItems int             `json:"totalItems"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type PatientPage struct {
	Items      []PatientProfile `json:"items"`
	TotalItems int              `json:"totalItems"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

func (c *Client) ListDoctors(ctx context.Context, params ListParams) (*DoctorPage, error) {
	var out DoctorPage
	if err := c.get(ctx, "/admin/doctors?"+params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPatients(ctx context.Context, params ListParams) (*PatientPage, error) {
	var out PatientPage
	if err := c.get(ctx, "/admin/patients?"+params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveDoctor deletes the whole account, a different operation from profile
// rejection.
func (c *Client) RemoveDoctor(ctx context.Context, doctorID string) error {
	return c.delete(ctx, "/admin/doctors/"+doctorID)
}

func (c *Client) RemovePatient(ctx context.Context, patientID string) error {
	return c.delete(ctx, "/admin/patients/"+patientID)
}
