package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

// Saturday 2026-08-29 (ISO week 35), 12:00 UTC.
var fixedNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

type fakeAPI struct {
	appointments []api.Appointment
	reviews      []api.Review
	rating       *api.DoctorRating
}

func (f *fakeAPI) GetDoctorAppointments(ctx context.Context, doctorID string) ([]api.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAPI) GetDoctorReviews(ctx context.Context, doctorID string) ([]api.Review, error) {
	return f.reviews, nil
}

func (f *fakeAPI) GetDoctorRating(ctx context.Context, doctorID string) (*api.DoctorRating, error) {
	return f.rating, nil
}

func approved(id, patient, date, from string) api.Appointment {
	return api.Appointment{ID: id, PatientID: patient, Date: date, TimeFrom: from, Status: api.AppointmentApproved}
}

func TestDeriveScheduleBuckets(t *testing.T) {
	appts := []api.Appointment{
		approved("A1", "P1", "2026-08-29", "14:00"), // today, upcoming
		approved("A2", "P1", "2026-08-29", "09:00"), // today, already started
		approved("A3", "P2", "2026-08-27", "10:00"), // this week (Thu), past
		approved("A4", "P3", "2026-08-31", "10:00"), // next ISO week, same month
		approved("A5", "P4", "2026-09-02", "10:00"), // next month
		{ID: "A6", PatientID: "P5", Date: "2026-08-29", TimeFrom: "15:00", Status: api.AppointmentPending},
		{ID: "A7", PatientID: "P1", Date: "2026-07-01", TimeFrom: "10:00", Status: api.AppointmentCompleted},
	}

	stats := Derive(appts, nil, fixedNow, time.UTC)

	if stats.TodayCount != 2 {
		t.Errorf("TodayCount = %d, want 2", stats.TodayCount)
	}
	if stats.WeekCount != 3 {
		t.Errorf("WeekCount = %d, want 3", stats.WeekCount)
	}
	if stats.MonthCount != 4 {
		t.Errorf("MonthCount = %d, want 4", stats.MonthCount)
	}
	if stats.CompletedVisits != 1 {
		t.Errorf("CompletedVisits = %d, want 1", stats.CompletedVisits)
	}
	if stats.UniquePatients != 5 {
		t.Errorf("UniquePatients = %d, want 5", stats.UniquePatients)
	}
}

func TestDeriveNextVisitsOrderedAndCapped(t *testing.T) {
	var appts []api.Appointment
	dates := []string{"2026-09-03", "2026-08-30", "2026-09-01", "2026-08-29", "2026-09-02", "2026-09-04", "2026-09-05"}
	for i, d := range dates {
		appts = append(appts, approved(string(rune('A'+i)), "P1", d, "14:00"))
	}

	stats := Derive(appts, nil, fixedNow, time.UTC)

	if len(stats.NextVisits) != nextVisitsShown {
		t.Fatalf("NextVisits length = %d, want %d", len(stats.NextVisits), nextVisitsShown)
	}
	want := []string{"2026-08-29", "2026-08-30", "2026-09-01", "2026-09-02", "2026-09-03"}
	for i, w := range want {
		if stats.NextVisits[i].Date != w {
			t.Errorf("NextVisits[%d].Date = %s, want %s", i, stats.NextVisits[i].Date, w)
		}
	}
}

func TestDeriveReviewFigures(t *testing.T) {
	reviews := []api.Review{
		{ID: "R1", Rating: 5},
		{ID: "R2", Rating: 4},
		{ID: "R3", Rating: 2},
		{ID: "R4", Rating: 5},
	}

	stats := Derive(nil, reviews, fixedNow, time.UTC)

	if stats.TotalReviews != 4 {
		t.Errorf("TotalReviews = %d, want 4", stats.TotalReviews)
	}
	if stats.AverageRating != 4 {
		t.Errorf("AverageRating = %v, want 4", stats.AverageRating)
	}
	if stats.PositivePercent != 75 {
		t.Errorf("PositivePercent = %v, want 75", stats.PositivePercent)
	}
}

func TestPracticeStatusHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		avg      float64
		positive float64
		total    int
		want     PracticeStatus
	}{
		{"no reviews reads as good", 0, 0, 0, StatusGood},
		{"high average and positivity", 4.7, 90, 20, StatusExcellent},
		{"high average, mixed positivity", 4.6, 60, 20, StatusGood},
		{"middling average", 3.8, 70, 20, StatusGood},
		{"low average", 2.9, 30, 20, StatusNeedsAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := practiceStatus(tt.avg, tt.positive, tt.total); got != tt.want {
				t.Errorf("practiceStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatsPrefersServerRating(t *testing.T) {
	fakeClient := &fakeAPI{
		reviews: []api.Review{{ID: "R1", Rating: 3}},
		rating:  &api.DoctorRating{DoctorID: "doc", AverageRating: 4.8, TotalReviews: 42},
	}
	id := session.Identity{Username: "doc", Role: authorize.RoleDoctor}
	svc := New(fakeClient, id, time.UTC, func() time.Time { return fixedNow }, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.AverageRating != 4.8 || stats.TotalReviews != 42 {
		t.Errorf("rating = (%v, %d), want server figures (4.8, 42)", stats.AverageRating, stats.TotalReviews)
	}
}
