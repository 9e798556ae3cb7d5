package appointments

import (
	"context"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/pkg/pagination"
)

// Repository is the appointments collection as the portal sees it. It
// satisfies listview.Source[Appointment, Draft].
type Repository interface {
	List(ctx context.Context, q listview.Query) ([]Appointment, pagination.State, error)
	Create(ctx context.Context, d Draft) (Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (Appointment, error)
	Delete(ctx context.Context, id string) error
}
