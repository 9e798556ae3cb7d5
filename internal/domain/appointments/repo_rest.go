package appointments

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
	basePath      = "/api/appointments"
	collectionKey = "appointments"
)

// RESTRepository reads and mutates appointments through the hospital API.
type RESTRepository struct {
	client  *rest.Client
	session auth.Session
}

func NewRESTRepository(client *rest.Client, session auth.Session) *RESTRepository {
	return &RESTRepository{client: client, session: session}
}

// List fetches one page. Recognized filters become query parameters only
// when non-empty; the session's identity parameter is attached regardless of
// other filters (a doctor only ever sees their own appointments).
func (r *RESTRepository) List(ctx context.Context, q listview.Query) ([]Appointment, pagination.State, error) {
	params := rest.Query{
		"page":   strconv.Itoa(q.Page),
		"limit":  strconv.Itoa(q.Limit),
		"status": q.Filters.StatusParam(),
		"date":   q.Filters.Date,
		"doctor": q.Filters.Actor,
	}
	if key, value := r.session.ScopeParam(); key != "" {
		params[key] = value
	}

	col, err := r.client.GetCollection(ctx, basePath, params, collectionKey)
	if err != nil {
		return nil, pagination.State{}, err
	}
	items, err := rest.DecodeItems[Appointment](col)
	if err != nil {
		return nil, pagination.State{}, err
	}
	return items, col.Page, nil
}

func (r *RESTRepository) Create(ctx context.Context, d Draft) (Appointment, error) {
	var created Appointment
	if err := r.client.Post(ctx, basePath, d, &created); err != nil {
		return Appointment{}, err
	}
	return created, nil
}

func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (Appointment, error) {
	var updated Appointment
	body := map[string]string{"status": status}
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), body, &updated); err != nil {
		return Appointment{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}
