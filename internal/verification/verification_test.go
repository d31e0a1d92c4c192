package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/notify"
)

type fakeAPI struct {
	doctors          []api.DoctorProfile
	patients         []api.PatientProfile
	verifyCalls      int
	lastVerifiedID   string
	lastVerifiedFlag bool
	failVerify       bool
}

func (f *fakeAPI) GetPendingDoctors(ctx context.Context) ([]api.DoctorProfile, error) {
	return f.doctors, nil
}

func (f *fakeAPI) GetPendingPatients(ctx context.Context) ([]api.PatientProfile, error) {
	return f.patients, nil
}

func (f *fakeAPI) VerifyDoctorProfile(ctx context.Context, id string, isVerified bool) error {
	f.verifyCalls++
	f.lastVerifiedID = id
	f.lastVerifiedFlag = isVerified
	if f.failVerify {
		return &api.APIError{Err: api.ErrTransient, Message: "boom"}
	}
	return nil
}

func (f *fakeAPI) VerifyPatientProfile(ctx context.Context, id string, isVerified bool) error {
	return f.VerifyDoctorProfile(ctx, id, isVerified)
}

func TestListPendingTagsVariants(t *testing.T) {
	fakeClient := &fakeAPI{
		doctors:  []api.DoctorProfile{{ID: "D1", FirstName: "Ada", LastName: "Osei", Status: api.ProfilePending}},
		patients: []api.PatientProfile{{ID: "P1", FirstName: "Ben", LastName: "Kato", Status: api.ProfilePending}},
	}
	svc := New(fakeClient, &notify.Recorder{}, nil)

	docs, err := svc.ListPending(context.Background(), KindDoctor)
	if err != nil {
		t.Fatalf("ListPending(doctor) failed: %v", err)
	}
	if len(docs) != 1 || docs[0].Kind != KindDoctor || docs[0].Doctor == nil || docs[0].Patient != nil {
		t.Errorf("doctor variant malformed: %+v", docs)
	}
	if docs[0].Name() != "Ada Osei" {
		t.Errorf("Name = %q", docs[0].Name())
	}

	pats, err := svc.ListPending(context.Background(), KindPatient)
	if err != nil {
		t.Fatalf("ListPending(patient) failed: %v", err)
	}
	if len(pats) != 1 || pats[0].Kind != KindPatient || pats[0].Patient == nil || pats[0].Doctor != nil {
		t.Errorf("patient variant malformed: %+v", pats)
	}
}

func TestVerifyApprovesOnceAndRemoves(t *testing.T) {
	fakeClient := &fakeAPI{doctors: []api.DoctorProfile{
		{ID: "D123", FirstName: "Ada", Status: api.ProfilePending},
		{ID: "D456", FirstName: "Ben", Status: api.ProfilePending},
	}}
	rec := &notify.Recorder{}
	svc := New(fakeClient, rec, nil)
	svc.ListPending(context.Background(), KindDoctor)

	if err := svc.Verify(context.Background(), KindDoctor, "D123", true); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if fakeClient.verifyCalls != 1 {
		t.Errorf("verify calls = %d, want exactly 1", fakeClient.verifyCalls)
	}
	if fakeClient.lastVerifiedID != "D123" || !fakeClient.lastVerifiedFlag {
		t.Errorf("verified (%s, %v), want (D123, true)", fakeClient.lastVerifiedID, fakeClient.lastVerifiedFlag)
	}

	queue := svc.Pending(KindDoctor)
	if len(queue) != 1 || queue[0].ID() != "D456" {
		t.Errorf("pending queue = %+v, want only D456", queue)
	}

	notices := rec.Notices()
	if len(notices) != 1 || notices[0].Level != notify.LevelSuccess {
		t.Errorf("notices = %+v, want one success notice", notices)
	}
}

func TestVerifyFailureLeavesItem(t *testing.T) {
	fakeClient := &fakeAPI{
		doctors:    []api.DoctorProfile{{ID: "D123", Status: api.ProfilePending}},
		failVerify: true,
	}
	rec := &notify.Recorder{}
	svc := New(fakeClient, rec, nil)
	svc.ListPending(context.Background(), KindDoctor)

	err := svc.Verify(context.Background(), KindDoctor, "D123", true)
	if !errors.Is(err, ErrVerifyFailed) {
		t.Fatalf("error = %v, want ErrVerifyFailed", err)
	}

	if len(svc.Pending(KindDoctor)) != 1 {
		t.Error("failed verification removed the item from the queue")
	}
	notices := rec.Notices()
	if len(notices) != 1 || notices[0].Level != notify.LevelError {
		t.Errorf("notices = %+v, want one generic error notice", notices)
	}
}

func TestVerifyReject(t *testing.T) {
	fakeClient := &fakeAPI{doctors: []api.DoctorProfile{{ID: "D123", Status: api.ProfilePending}}}
	svc := New(fakeClient, &notify.Recorder{}, nil)
	svc.ListPending(context.Background(), KindDoctor)

	if err := svc.Verify(context.Background(), KindDoctor, "D123", false); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if fakeClient.lastVerifiedFlag {
		t.Error("isVerified should be false for rejection")
	}
	if len(svc.Pending(KindDoctor)) != 0 {
		t.Error("rejected profile should leave the queue")
	}
}
