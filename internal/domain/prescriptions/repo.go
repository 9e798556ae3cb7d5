package prescriptions

import (
	"context"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/pkg/pagination"
)

// Repository is the data access surface the prescriptions screen needs.
type Repository interface {
	List(ctx context.Context, q listview.Query) ([]Prescription, pagination.State, error)
	Create(ctx context.Context, d Draft) (Prescription, error)
	UpdateStatus(ctx context.Context, id, status string) (Prescription, error)
	Delete(ctx context.Context, id string) error
}
