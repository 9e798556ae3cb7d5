package reports

import (
	"context"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/pkg/pagination"
)

// Repository is the medical reports collection as the portal sees it. It
// satisfies listview.Source[Report, Draft]; Update additionally replaces a
// whole report, which the authoring screen uses for edits.
type Repository interface {
	List(ctx context.Context, q listview.Query) ([]Report, pagination.State, error)
	Create(ctx context.Context, d Draft) (Report, error)
	Update(ctx context.Context, id string, d Draft) (Report, error)
	UpdateStatus(ctx context.Context, id, status string) (Report, error)
	Delete(ctx context.Context, id string) error
}
