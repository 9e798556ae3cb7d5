package users

import (
	"context"
	"strings"

	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/internal/platform/rest"
)

const (
	basePath     = "/api/users"
	fallbackPath = "/api/auth/users"
)

// Roster looks up hospital accounts by role. Deployments differ in where the
// directory lives, so a missing primary endpoint falls back to the auth
// service's listing.
type Roster struct {
	client *rest.Client
}

func NewRoster(client *rest.Client) *Roster {
	return &Roster{client: client}
}

// ByRoles returns every account holding one of the given roles, e.g. the
// patient and doctor options for an appointment form.
func (r *Roster) ByRoles(ctx context.Context, roles ...auth.Role) ([]User, error) {
	params := rest.Query{"roles": joinRoles(roles)}

	list, err := r.fetch(ctx, basePath, params)
	if rest.NotFound(err) {
		list, err = r.fetch(ctx, fallbackPath, params)
	}
	if err != nil {
		return nil, err
	}

	// Older deployments ignore the roles parameter, so filter again here.
	if len(roles) == 0 {
		return list, nil
	}
	filtered := list[:0]
	for _, u := range list {
		for _, role := range roles {
			if u.Role == role {
				filtered = append(filtered, u)
				break
			}
		}
	}
	return filtered, nil
}

func (r *Roster) fetch(ctx context.Context, path string, params rest.Query) ([]User, error) {
	col, err := r.client.GetCollection(ctx, path, params, "users")
	if err != nil {
		return nil, err
	}
	return rest.DecodeItems[User](col)
}

func joinRoles(roles []auth.Role) string {
	parts := make([]string, len(roles))
	for i, role := range roles {
		parts[i] = string(role)
	}
	return strings.Join(parts, ",")
}
