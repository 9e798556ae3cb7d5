package caretasks

import (
	"context"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/pkg/pagination"
)

// Repository is the care tasks collection as the portal sees it. It
// satisfies listview.Source[Task, Draft].
type Repository interface {
	List(ctx context.Context, q listview.Query) ([]Task, pagination.State, error)
	Create(ctx context.Context, d Draft) (Task, error)
	UpdateStatus(ctx context.Context, id, status string) (Task, error)
	Delete(ctx context.Context, id string) error
}
