package caretasks

import (
	"context"
	"fmt"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/internal/platform/rest"
	"github.com/hms/portal/pkg/pagination"
)

const basePath = "/api/care-tasks"

// RESTRepository reads and mutates care tasks through the hospital API.
// The endpoint is unpaginated: it answers with a bare array, so every fetch
// collapses to a single synthesized page and filtering happens client-side.
type RESTRepository struct {
	client  *rest.Client
	session auth.Session
}

func NewRESTRepository(client *rest.Client, session auth.Session) *RESTRepository {
	return &RESTRepository{client: client, session: session}
}

func (r *RESTRepository) List(ctx context.Context, _ listview.Query) ([]Task, pagination.State, error) {
	params := rest.Query{}
	if key, value := r.session.ScopeParam(); key != "" {
		params[key] = value
	}

	col, err := r.client.GetCollection(ctx, basePath, params, "tasks")
	if err != nil {
		return nil, pagination.State{}, err
	}
	items, err := rest.DecodeItems[Task](col)
	if err != nil {
		return nil, pagination.State{}, err
	}
	return items, col.Page, nil
}

func (r *RESTRepository) Create(ctx context.Context, d Draft) (Task, error) {
	var created Task
	if err := r.client.Post(ctx, basePath, d, &created); err != nil {
		return Task{}, err
	}
	return created, nil
}

// UpdateStatus uses the task status subresource: the backend exposes status
// changes as PATCH /api/care-tasks/:id/status rather than a full update.
func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (Task, error) {
	var updated Task
	body := map[string]string{"status": status}
	if err := r.client.Patch(ctx, fmt.Sprintf("%s/%s/status", basePath, id), body, &updated); err != nil {
		return Task{}, err
	}
	return updated, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}
