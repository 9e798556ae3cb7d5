// Package dashboard assembles the doctor's landing page from the other
// screens' repositories: today's schedule, report work in progress, and the
// most recent items of each.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/domain/appointments"
	"github.com/hms/portal/internal/domain/reports"
	"github.com/hms/portal/internal/listview"
)

const recentLimit = 5

// Summary is everything the landing page shows at once.
type Summary struct {
	Date               time.Time
	TodaysAppointments []appointments.Appointment
	PendingReports     int
	RecentReports      []reports.Report
}

// Service aggregates per-screen repositories into one Summary.
type Service struct {
	appointments appointments.Repository
	reports      reports.Repository
	now          func() time.Time
	logger       zerolog.Logger
}

func NewService(appts appointments.Repository, reps reports.Repository, logger zerolog.Logger) *Service {
	return &Service{
		appointments: appts,
		reports:      reps,
		now:          time.Now,
		logger:       logger,
	}
}

// Load builds the summary for the signed-in doctor. The two collections load
// independently; one failing fails the whole summary rather than rendering a
// half-empty page.
func (s *Service) Load(ctx context.Context) (Summary, error) {
	today := s.now()
	summary := Summary{Date: today}

	apptQuery := listview.Query{Page: 1, Limit: recentLimit}
	apptQuery.Filters.Date = today.Format(listview.DateLayout)
	todays, _, err := s.appointments.List(ctx, apptQuery)
	if err != nil {
		return Summary{}, fmt.Errorf("load today's appointments: %w", err)
	}
	summary.TodaysAppointments = todays

	draftQuery := listview.Query{Page: 1, Limit: recentLimit}
	draftQuery.Filters.Status = reports.StatusDraft
	drafts, page, err := s.reports.List(ctx, draftQuery)
	if err != nil {
		return Summary{}, fmt.Errorf("load pending reports: %w", err)
	}
	summary.PendingReports = page.Total
	if summary.PendingReports == 0 {
		summary.PendingReports = len(drafts)
	}
	summary.RecentReports = drafts

	s.logger.Debug().
		Int("todays_appointments", len(summary.TodaysAppointments)).
		Int("pending_reports", summary.PendingReports).
		Msg("dashboard loaded")
	return summary, nil
}
