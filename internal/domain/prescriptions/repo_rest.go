package prescriptions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/internal/platform/rest"
	"github.com/hms/portal/pkg/pagination"
)

const (
	basePath      = "/api/prescriptions"
	collectionKey = "prescriptions"
)

// RESTRepository reads and mutates prescriptions through the hospital API.
type RESTRepository struct {
	client  *rest.Client
	session auth.Session
}

func NewRESTRepository(client *rest.Client, session auth.Session) *RESTRepository {
	return &RESTRepository{client: client, session: session}
}

// List fetches one page. The backend may answer with a bare array when the
// collection is small; the decoder synthesizes a single-page envelope in that
// case so callers always see consistent pagination.
func (r *RESTRepository) List(ctx context.Context, q listview.Query) ([]Prescription, pagination.State, error) {
	params := rest.Query{
		"page":    strconv.Itoa(q.Page),
		"limit":   strconv.Itoa(q.Limit),
		"status":  q.Filters.StatusParam(),
		"patient": q.Filters.Actor,
	}
	if key, value := r.session.ScopeParam(); key != "" {
		params[key] = value
	}

	col, err := r.client.GetCollection(ctx, basePath, params, collectionKey)
	if err != nil {
		return nil, pagination.State{}, err
	}
	items, err := rest.DecodeItems[Prescription](col)
	if err != nil {
		return nil, pagination.State{}, err
	}
	return items, col.Page, nil
}

func (r *RESTRepository) Create(ctx context.Context, d Draft) (Prescription, error) {
	var created Prescription
	if err := r.client.Post(ctx, basePath, d, &created); err != nil {
		return Prescription{}, err
	}
	return created, nil
}

// UpdateStatus flips the lifecycle state, e.g. Active to Discontinued.
func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (Prescription, error) {
	var updated Prescription
	body := map[string]string{"status": status}
	if err := r.client.Patch(ctx, fmt.Sprintf("%s/%s/status", basePath, id), body, &updated); err != nil {
		return Prescription{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}
