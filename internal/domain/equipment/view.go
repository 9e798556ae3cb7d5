package equipment

import (
	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
)

// View is the lab equipment screen.
type View = listview.View[Item, Draft]

// NewView builds the equipment screen over repo.
func NewView(repo Repository, pageSize int, logger zerolog.Logger) *View {
	return listview.New[Item, Draft](repo, listview.Config[Item, Draft]{
		Name:     "equipment",
		PageSize: pageSize,
		Matchers: listview.Matchers[Item]{
			SearchText: func(i Item) []string {
				return []string{i.Name, i.SerialNumber, i.Location}
			},
			Status: func(i Item) string { return i.Status },
		},
		Required: func(d Draft) []string {
			var missing []string
			if d.Name == "" {
				missing = append(missing, "name")
			}
			if d.SerialNumber == "" {
				missing = append(missing, "serialNumber")
			}
			if d.Location == "" {
				missing = append(missing, "location")
			}
			return missing
		},
		Logger: logger,
	})
}
