package equipment

import (
	"context"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/pkg/pagination"
)

// Repository is the data access surface the equipment screen needs. Update
// replaces the full editable record, which the inventory screen uses for its
// edit form.
type Repository interface {
	List(ctx context.Context, q listview.Query) ([]Item, pagination.State, error)
	Create(ctx context.Context, d Draft) (Item, error)
	Update(ctx context.Context, id string, d Draft) (Item, error)
	UpdateStatus(ctx context.Context, id, status string) (Item, error)
	Delete(ctx context.Context, id string) error
}
