package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medvault/medvault-cli/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(config.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, nil)
	return c, srv
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
		class  string
	}{
		{"not found is benign class", http.StatusNotFound, `{"message":"profile not found"}`, IsNotFound, "not_found"},
		{"bad request is validation", http.StatusBadRequest, `{"message":"timeFrom must be before timeTo"}`, IsValidation, "validation"},
		{"conflict is validation", http.StatusConflict, `{"message":"slot already booked"}`, IsValidation, "validation"},
		{"server error is transient", http.StatusInternalServerError, ``, IsTransient, "transient"},
		{"bad gateway is transient", http.StatusBadGateway, ``, IsTransient, "transient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := c.GetDoctorProfile(context.Background(), "drwho")
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("error %v not classified as %s", err, tt.class)
			}
		})
	}
}

func TestErrorCarriesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"duration out of range"}`))
	}))

	_, err := c.GenerateTimeSlots(context.Background(), GenerateSlotsRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "duration out of range" {
		t.Errorf("message = %q, want server message", apiErr.Message)
	}
}

func TestRequestCarriesRequestID(t *testing.T) {
	var gotID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(User{Username: "pat"})
	}))

	if _, err := c.Login(context.Background(), LoginRequest{Username: "pat", Password: "pw"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if gotID == "" {
		t.Error("request was sent without X-Request-ID")
	}
}

func TestGetPatientAppointmentsDecodes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/appointments/patient/P1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Appointment{
			{ID: "A1", PatientID: "P1", Date: "2026-09-01", TimeFrom: "09:00", Status: AppointmentApproved},
			{ID: "A2", PatientID: "P1", Date: "2026-09-02", TimeFrom: "10:00", Status: AppointmentPending},
		})
	}))

	appts, err := c.GetPatientAppointments(context.Background(), "P1")
	if err != nil {
		t.Fatalf("GetPatientAppointments failed: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("got %d appointments, want 2", len(appts))
	}
	if appts[0].Status != AppointmentApproved {
		t.Errorf("status = %s, want APPROVED", appts[0].Status)
	}
}

func TestUpdateAppointmentStatusBody(t *testing.T) {
	var body map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(Appointment{ID: "A1", Status: AppointmentApproved})
	}))

	if _, err := c.UpdateAppointmentStatus(context.Background(), "A1", AppointmentApproved); err != nil {
		t.Fatalf("UpdateAppointmentStatus failed: %v", err)
	}
	if body["status"] != "APPROVED" {
		t.Errorf("status in body = %q, want APPROVED", body["status"])
	}
}

func TestGetDocumentFileBlob(t *testing.T) {
	content := []byte("%PDF-1.4 fake report")
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(content)
	}))

	data, contentType, err := c.GetDocumentFile(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetDocumentFile failed: %v", err)
	}
	if string(data) != string(content) {
		t.Error("blob content mismatch")
	}
	if contentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", contentType)
	}
}

func TestUploadProfileDocumentMultipart(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		f, hdr, err := r.FormFile("license")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "license.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "/files/license.pdf"})
	}))

	url, err := c.UploadProfileDocument(context.Background(), "license", "license.pdf", []byte("data"))
	if err != nil {
		t.Fatalf("UploadProfileDocument failed: %v", err)
	}
	if url != "/files/license.pdf" {
		t.Errorf("url = %q", url)
	}
}

func TestListDoctorsQuery(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "5" || q.Get("search") != "smith" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(DoctorPage{TotalItems: 23, Page: 2, Limit: 5})
	}))

	page, err := c.ListDoctors(context.Background(), ListParams{Page: 2, Limit: 5, Search: "smith"})
	if err != nil {
		t.Fatalf("ListDoctors failed: %v", err)
	}
	if page.TotalItems != 23 {
		t.Errorf("totalItems = %d, want 23", page.TotalItems)
	}
}
