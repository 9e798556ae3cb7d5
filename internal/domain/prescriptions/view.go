package prescriptions

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
)

// View is the prescriptions screen.
type View = listview.View[Prescription, Draft]

// NewView builds the prescriptions screen over repo.
func NewView(repo Repository, pageSize int, logger zerolog.Logger) *View {
	return listview.New[Prescription, Draft](repo, listview.Config[Prescription, Draft]{
		Name:     "prescriptions",
		PageSize: pageSize,
		Matchers: listview.Matchers[Prescription]{
			SearchText: func(p Prescription) []string {
				return []string{
					p.Patient.FirstName, p.Patient.LastName,
					p.Medication, p.Dosage,
				}
			},
			Status: func(p Prescription) string { return p.Status },
			Date:   func(p Prescription) time.Time { return p.StartDate },
		},
		Required: func(d Draft) []string {
			var missing []string
			if d.PatientID == "" {
				missing = append(missing, "patient")
			}
			if d.Medication == "" {
				missing = append(missing, "medication")
			}
			if d.Dosage == "" {
				missing = append(missing, "dosage")
			}
			if d.Frequency == "" {
				missing = append(missing, "frequency")
			}
			return missing
		},
		Logger: logger,
	})
}
