package equipment

import (
	"context"
	"fmt"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/rest"
	"github.com/hms/portal/pkg/pagination"
)

const (
	basePath      = "/api/lab-equipment"
	collectionKey = "equipment"
)

// RESTRepository reads and mutates the lab equipment inventory.
type RESTRepository struct {
	client *rest.Client
}

func NewRESTRepository(client *rest.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

// List fetches the whole inventory. The endpoint answers with an
// {"equipment": [...]} envelope and no pagination block, so every response
// collapses to a single page and filtering stays client-side.
func (r *RESTRepository) List(ctx context.Context, _ listview.Query) ([]Item, pagination.State, error) {
	col, err := r.client.GetCollection(ctx, basePath, nil, collectionKey)
	if err != nil {
		return nil, pagination.State{}, err
	}
	items, err := rest.DecodeItems[Item](col)
	if err != nil {
		return nil, pagination.State{}, err
	}
	return items, col.Page, nil
}

func (r *RESTRepository) Create(ctx context.Context, d Draft) (Item, error) {
	var created Item
	if err := r.client.Post(ctx, basePath, d, &created); err != nil {
		return Item{}, err
	}
	return created, nil
}

// Update replaces the editable fields of one entry.
func (r *RESTRepository) Update(ctx context.Context, id string, d Draft) (Item, error) {
	var updated Item
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), d, &updated); err != nil {
		return Item{}, err
	}
	return updated, nil
}

func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (Item, error) {
	var updated Item
	body := map[string]string{"status": status}
	if err := r.client.Patch(ctx, fmt.Sprintf("%s/%s/status", basePath, id), body, &updated); err != nil {
		return Item{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}
