package reports

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
	basePath      = "/api/medical-reports"
	collectionKey = "reports"
)

// RESTRepository reads and mutates medical reports through the hospital API.
type RESTRepository struct {
	client  *rest.Client
	session auth.Session
}

func NewRESTRepository(client *rest.Client, session auth.Session) *RESTRepository {
	return &RESTRepository{client: client, session: session}
}

// List fetches one page. The Actor filter narrows to one patient; the
// session scope parameter is attached on top of it for doctor and patient
// sessions.
func (r *RESTRepository) List(ctx context.Context, q listview.Query) ([]Report, pagination.State, error) {
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
	items, err := rest.DecodeItems[Report](col)
	if err != nil {
		return nil, pagination.State{}, err
	}
	return items, col.Page, nil
}

func (r *RESTRepository) Create(ctx context.Context, d Draft) (Report, error) {
	var created Report
	if err := r.client.Post(ctx, basePath, d, &created); err != nil {
		return Report{}, err
	}
	return created, nil
}

func (r *RESTRepository) Update(ctx context.Context, id string, d Draft) (Report, error) {
	var updated Report
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), d, &updated); err != nil {
		return Report{}, err
	}
	return updated, nil
}

func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (Report, error) {
	var updated Report
	body := map[string]string{"status": status}
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), body, &updated); err != nil {
		return Report{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}
