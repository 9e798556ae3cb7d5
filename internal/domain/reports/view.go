package reports

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
)

// View is the medical reports screen.
type View = listview.View[Report, Draft]

// NewView builds the medical reports screen over repo.
func NewView(repo Repository, pageSize int, logger zerolog.Logger) *View {
	return listview.New[Report, Draft](repo, listview.Config[Report, Draft]{
		Name:     "medical-reports",
		PageSize: pageSize,
		Matchers: listview.Matchers[Report]{
			SearchText: func(rep Report) []string {
				return []string{
					rep.Patient.FirstName, rep.Patient.LastName,
					rep.Type, rep.Title, rep.Findings,
				}
			},
			Status: func(rep Report) string { return rep.Status },
			Date:   func(rep Report) time.Time { return rep.Date },
		},
		Required: func(d Draft) []string {
			var missing []string
			if d.PatientID == "" {
				missing = append(missing, "patient")
			}
			if d.Type == "" {
				missing = append(missing, "type")
			}
			if d.Title == "" {
				missing = append(missing, "title")
			}
			if d.Findings == "" {
				missing = append(missing, "findings")
			}
			return missing
		},
		Logger: logger,
	})
}
