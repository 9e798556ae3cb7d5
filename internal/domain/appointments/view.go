package appointments

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
)

// View is the appointments screen: one fetched page plus filter, pagination
// and mutation state.
type View = listview.View[Appointment, Draft]

// NewView builds the appointments screen over repo.
func NewView(repo Repository, pageSize int, logger zerolog.Logger) *View {
	return listview.New[Appointment, Draft](repo, listview.Config[Appointment, Draft]{
		Name:     "appointments",
		PageSize: pageSize,
		Matchers: listview.Matchers[Appointment]{
			SearchText: func(a Appointment) []string {
				return []string{
					a.Patient.FirstName, a.Patient.LastName,
					a.Doctor.FirstName, a.Doctor.LastName,
					a.Reason,
				}
			},
			Status: func(a Appointment) string { return a.Status },
			Date:   func(a Appointment) time.Time { return a.Date },
		},
		Required: func(d Draft) []string {
			var missing []string
			if d.PatientID == "" {
				missing = append(missing, "patient")
			}
			if d.DoctorID == "" {
				missing = append(missing, "doctor")
			}
			if d.Date == "" {
				missing = append(missing, "date")
			}
			if d.Time == "" {
				missing = append(missing, "time")
			}
			if d.Reason == "" {
				missing = append(missing, "reason")
			}
			return missing
		},
		Logger: logger,
	})
}
