package caretasks

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
)

// View is the care tasks screen.
type View = listview.View[Task, Draft]

// NewView builds the care tasks screen over repo.
func NewView(repo Repository, pageSize int, logger zerolog.Logger) *View {
	return listview.New[Task, Draft](repo, listview.Config[Task, Draft]{
		Name:     "care-tasks",
		PageSize: pageSize,
		Matchers: listview.Matchers[Task]{
			SearchText: func(t Task) []string {
				return []string{
					t.Patient.FirstName, t.Patient.LastName,
					t.Title, t.Description,
				}
			},
			Status: func(t Task) string { return t.Status },
			Date:   func(t Task) time.Time { return t.DueDate },
		},
		Required: func(d Draft) []string {
			var missing []string
			if d.PatientID == "" {
				missing = append(missing, "patient")
			}
			if d.Title == "" {
				missing = append(missing, "title")
			}
			if d.DueDate == "" {
				missing = append(missing, "dueDate")
			}
			return missing
		},
		Logger: logger,
	})
}
