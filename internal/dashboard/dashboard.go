// Package dashboard derives the doctor's practice overview: schedule counts
// for today, this week and this month, the next few upcoming visits, patient
// reach and review standing. Everything is computed from the fetched lists;
// nothing here mutates server state.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/appointment"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/localdate"
)

const nextVisitsShown = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PracticeStatus string

const (
	StatusExcellent      PracticeStatus = "EXCELLENT"
	StatusGood           PracticeStatus = "GOOD"
	StatusNeedsAttention PracticeStatus = "NEEDS_ATTENTION"
)

type Stats struct {
	TodayCount      int
	WeekCount       int
	MonthCount      int
	NextVisits      []api.Appointment
	UniquePatients  int
	CompletedVisits int
	AverageRating   float64
	TotalReviews    int
	PositivePercent float64
	Status          PracticeStatus
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// API is the slice of the backend client this aggregator consumes.
type API interface {
	GetDoctorAppointments(ctx context.Context, doctorID string) ([]api.Appointment, error)
	GetDoctorReviews(ctx context.Context, doctorID string) ([]api.Review, error)
	GetDoctorRating(ctx context.Context, doctorID string) (*api.DoctorRating, error)
}

type Service interface {
	// Stats fetches the doctor's appointments and reviews and derives the
	// overview relative to now.
	Stats(ctx context.Context) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dashboardService struct {
	api      API
	identity session.Identity
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

func New(apiClient API, id session.Identity, loc *time.Location, now func() time.Time, logger *slog.Logger) Service {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &dashboardService{api: apiClient, identity: id, loc: loc, now: now, logger: logger}
}

func (d *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	appts, err := d.api.GetDoctorAppointments(ctx, d.identity.Username)
	if err != nil && !api.IsNotFound(err) {
		return nil, fmt.Errorf("dashboard appointments: %w", err)
	}

	reviews, err := d.api.GetDoctorReviews(ctx, d.identity.Username)
	if err != nil && !api.IsNotFound(err) {
		return nil, fmt.Errorf("dashboard reviews: %w", err)
	}

	rating, err := d.api.GetDoctorRating(ctx, d.identity.Username)
	if err != nil && !api.IsNotFound(err) {
		return nil, fmt.Errorf("dashboard rating: %w", err)
	}

	stats := Derive(appts, reviews, d.now(), d.loc)
	if rating != nil {
		stats.AverageRating = rating.AverageRating
		stats.TotalReviews = rating.TotalReviews
	}
	stats.Status = practiceStatus(stats.AverageRating, stats.PositivePercent, stats.TotalReviews)
	return stats, nil
}

// ---------------------------------------------------------------------------
// Derivations
// ---------------------------------------------------------------------------

// Derive computes schedule and review figures from raw lists. Only APPROVED
// appointments count toward the schedule; COMPLETED ones count as past
// visits.
func Derive(appts []api.Appointment, reviews []api.Review, now time.Time, loc *time.Location) *Stats {
	stats := &Stats{}
	today := localdate.FromTime(now.In(loc))
	weekYear, week := now.In(loc).ISOWeek()

	patients := map[string]struct{}{}
	var upcoming []api.Appointment

	for _, appt := range appts {
		if appt.PatientID != "" {
			patients[appt.PatientID] = struct{}{}
		}
		if appt.Status == api.AppointmentCompleted {
			stats.CompletedVisits++
		}
		if appt.Status != api.AppointmentApproved {
			continue
		}

		date, err := localdate.Parse(appt.Date)
		if err != nil {
			continue
		}
		start, err := date.At(appt.TimeFrom, loc)
		if err != nil {
			continue
		}

		if date == today {
			stats.TodayCount++
		}
		if y, w := start.ISOWeek(); y == weekYear && w == week {
			stats.WeekCount++
		}
		if date.Year == today.Year && date.Month == today.Month {
			stats.MonthCount++
		}
		if !start.Before(now) {
			upcoming = append(upcoming, appt)
		}
	}

	snap := appointment.Partition(upcoming, now, loc)
	if len(snap.Upcoming) > nextVisitsShown {
		stats.NextVisits = snap.Upcoming[:nextVisitsShown]
	} else {
		stats.NextVisits = snap.Upcoming
	}

	stats.UniquePatients = len(patients)

	if len(reviews) > 0 {
		positive := 0
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
			if r.Rating >= 4 {
				positive++
			}
		}
		stats.TotalReviews = len(reviews)
		stats.AverageRating = float64(sum) / float64(len(reviews))
		stats.PositivePercent = 100 * float64(positive) / float64(len(reviews))
	}
	return stats
}

// practiceStatus is a coarse health heuristic over the review standing. New
// practices with no reviews read as GOOD rather than flagged.
func practiceStatus(avg, positivePct float64, total int) PracticeStatus {
	switch {
	case total == 0:
		return StatusGood
	case avg >= 4.5 && positivePct >= 80:
		return StatusExcellent
	case avg >= 3.5:
		return StatusGood
	default:
		return StatusNeedsAttention
	}
}
