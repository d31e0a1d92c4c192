package emergency

import (
	"context"
	"errors"
	"testing"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/notify"
)

type fakeAPI struct {
	pending       []api.EmergencyRequest
	createCalls   int
	acceptCalls   int
	rejectCalls   int
	setAvailCalls int
	lastReason    string
	failAccept    bool
	failSetAvail  bool
	serverAvail   bool
}

func (f *fakeAPI) CreateEmergencyRequest(ctx context.Context, req api.CreateEmergencyRequest) (*api.EmergencyRequest, error) {
	f.createCalls++
	return &api.EmergencyRequest{ID: "E1", Symptoms: req.Symptoms, Status: api.EmergencyPending}, nil
}

func (f *fakeAPI) GetPatientEmergencyRequests(ctx context.Context, patientID string) ([]api.EmergencyRequest, error) {
	return nil, nil
}

func (f *fakeAPI) GetPendingEmergencyRequests(ctx context.Context, doctorID string) ([]api.EmergencyRequest, error) {
	return f.pending, nil
}

func (f *fakeAPI) AcceptEmergencyRequest(ctx context.Context, doctorID, requestID, notes string) (*api.EmergencyRequest, error) {
	f.acceptCalls++
	if f.failAccept {
		return nil, &api.APIError{Err: api.ErrTransient, Message: "boom"}
	}
	return &api.EmergencyRequest{ID: requestID, Status: api.EmergencyAccepted}, nil
}

func (f *fakeAPI) RejectEmergencyRequest(ctx context.Context, doctorID, requestID, reason string) (*api.EmergencyRequest, error) {
	f.rejectCalls++
	f.lastReason = reason
	return &api.EmergencyRequest{ID: requestID, Status: api.EmergencyRejected}, nil
}

func (f *fakeAPI) CompleteEmergencyRequest(ctx context.Context, requestID string) (*api.EmergencyRequest, error) {
	return &api.EmergencyRequest{ID: requestID, Status: api.EmergencyCompleted}, nil
}

func (f *fakeAPI) GetDoctorAvailability(ctx context.Context, doctorID string) (*api.DoctorAvailability, error) {
	return &api.DoctorAvailability{DoctorID: doctorID, IsAvailable: f.serverAvail}, nil
}

func (f *fakeAPI) SetDoctorAvailability(ctx context.Context, doctorID string, isAvailable bool) (*api.DoctorAvailability, error) {
	f.setAvailCalls++
	if f.failSetAvail {
		return nil, &api.APIError{Err: api.ErrTransient, Message: "boom"}
	}
	f.serverAvail = isAvailable
	return &api.DoctorAvailability{DoctorID: doctorID, IsAvailable: isAvailable}, nil
}

func newService(fakeClient *fakeAPI, rec *notify.Recorder) Service {
	id := session.Identity{Username: "doc", Role: authorize.RoleDoctor}
	return New(fakeClient, id, rec, "US", nil)
}

func TestCreateValidatesLocally(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"empty symptoms", CreateRequest{Location: "Main St", UrgencyLevel: api.UrgencyHigh}, ErrSymptomsRequired},
		{"empty location", CreateRequest{Symptoms: "chest pain", UrgencyLevel: api.UrgencyHigh}, ErrLocationRequired},
		{"whitespace location", CreateRequest{Symptoms: "chest pain", Location: "   ", UrgencyLevel: api.UrgencyHigh}, ErrLocationRequired},
		{"bad urgency", CreateRequest{Symptoms: "chest pain", Location: "Main St", UrgencyLevel: "CRITICAL"}, ErrInvalidUrgency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeClient := &fakeAPI{}
			svc := newService(fakeClient, &notify.Recorder{})

			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if fakeClient.createCalls != 0 {
				t.Error("invalid request reached the network")
			}
		})
	}
}

func TestCreateNormalizesPhone(t *testing.T) {
	fakeClient := &fakeAPI{}
	svc := newService(fakeClient, &notify.Recorder{})

	_, err := svc.Create(context.Background(), CreateRequest{
		Symptoms: "fever", Location: "Main St", UrgencyLevel: api.UrgencyLow,
		ContactPhone: "(212) 555-0123",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateRequest{
		Symptoms: "fever", Location: "Main St", UrgencyLevel: api.UrgencyLow,
		ContactPhone: "not-a-number",
	})
	if !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("error = %v, want ErrInvalidPhone", err)
	}
	if fakeClient.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", fakeClient.createCalls)
	}
}

func TestAcceptRemovesFromPendingOnlyOnSuccess(t *testing.T) {
	fakeClient := &fakeAPI{pending: []api.EmergencyRequest{
		{ID: "E1", Status: api.EmergencyPending},
		{ID: "E2", Status: api.EmergencyPending},
	}}
	svc := newService(fakeClient, &notify.Recorder{})

	if _, err := svc.PendingRequests(context.Background()); err != nil {
		t.Fatalf("PendingRequests failed: %v", err)
	}

	t.Run("failure leaves pending untouched", func(t *testing.T) {
		fakeClient.failAccept = true
		if err := svc.Accept(context.Background(), "E1", ""); err == nil {
			t.Fatal("expected accept error")
		}
		impl := svc.(*emergencyService)
		impl.mu.Lock()
		n := len(impl.pending)
		impl.mu.Unlock()
		if n != 2 {
			t.Errorf("pending = %d, want 2 after failed accept", n)
		}
	})

	t.Run("success removes the item", func(t *testing.T) {
		fakeClient.failAccept = false
		if err := svc.Accept(context.Background(), "E1", "on my way"); err != nil {
			t.Fatalf("Accept failed: %v", err)
		}
		impl := svc.(*emergencyService)
		impl.mu.Lock()
		defer impl.mu.Unlock()
		if len(impl.pending) != 1 || impl.pending[0].ID != "E2" {
			t.Errorf("pending = %+v, want only E2", impl.pending)
		}
	})
}

func TestRejectRoutesThroughReason(t *testing.T) {
	fakeClient := &fakeAPI{pending: []api.EmergencyRequest{{ID: "E1"}}}
	svc := newService(fakeClient, &notify.Recorder{})
	svc.PendingRequests(context.Background())

	if err := svc.Reject(context.Background(), "E1", RejectionReason{Text: "outside coverage area"}); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if fakeClient.lastReason != "outside coverage area" {
		t.Errorf("reason = %q", fakeClient.lastReason)
	}
}

func TestAvailabilityRollbackOnFailure(t *testing.T) {
	fakeClient := &fakeAPI{serverAvail: false}
	rec := &notify.Recorder{}
	svc := newService(fakeClient, rec)

	if _, err := svc.Availability(context.Background()); err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if svc.IsAvailable() {
		t.Fatal("precondition: doctor should start unavailable")
	}

	fakeClient.failSetAvail = true
	if err := svc.SetAvailability(context.Background(), true); err == nil {
		t.Fatal("expected SetAvailability error")
	}
	if svc.IsAvailable() {
		t.Error("availability left true after failed toggle, want rollback to false")
	}
	notices := rec.Notices()
	if len(notices) == 0 || notices[len(notices)-1].Level != notify.LevelError {
		t.Errorf("expected an error notice, got %+v", notices)
	}
}

func TestAvailabilityCommitOnSuccess(t *testing.T) {
	fakeClient := &fakeAPI{serverAvail: false}
	rec := &notify.Recorder{}
	svc := newService(fakeClient, rec)

	if err := svc.SetAvailability(context.Background(), true); err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}
	if !svc.IsAvailable() {
		t.Error("availability not committed after successful toggle")
	}
	if !fakeClient.serverAvail {
		t.Error("server state not updated")
	}

	// A successful toggle confirms the new state as an info notice.
	notices := rec.Notices()
	if len(notices) == 0 {
		t.Fatal("expected a notice after successful toggle")
	}
	last := notices[len(notices)-1]
	if last.Level != notify.LevelInfo || last.Title != "Availability Updated" {
		t.Errorf("last notice = %+v, want info Availability Updated", last)
	}
}
