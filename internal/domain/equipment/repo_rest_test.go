package equipment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/rest"
	"github.com/hms/portal/pkg/pagination"
)

func newRepo(t *testing.T, handler http.HandlerFunc) *RESTRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := rest.NewClient(rest.Options{BaseURL: srv.URL, RetryMax: 1})
	return NewRESTRepository(client)
}

func TestRESTRepository_List_EnvelopeWithoutPagination(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lab-equipment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"equipment":[
			{"_id":"e1","name":"Centrifuge","serialNumber":"CF-100","location":"Lab 1","status":"Operational"},
			{"_id":"e2","name":"Microscope","serialNumber":"MS-7","location":"Lab 2","status":"Maintenance"}
		]}`))
	})

	items, page, err := repo.List(context.Background(), listview.Query{Page: 4, Limit: 7})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != 2 || items[0].Name != "Centrifuge" {
		t.Fatalf("unexpected items %+v", items)
	}
	if page != pagination.Single(2) {
		t.Errorf("unpaginated envelope must collapse to a single page, got %+v", page)
	}
}

func TestRESTRepository_UpdateReplacesRecord(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody Draft
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"_id":"e1","name":"Centrifuge II","serialNumber":"CF-100","location":"Lab 3"}`))
	})

	updated, err := repo.Update(context.Background(), "e1", Draft{
		Name: "Centrifuge II", SerialNumber: "CF-100", Location: "Lab 3",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/api/lab-equipment/e1" {
		t.Errorf("expected PUT /api/lab-equipment/e1, got %s %s", gotMethod, gotPath)
	}
	if gotBody.Location != "Lab 3" {
		t.Errorf("unexpected body %+v", gotBody)
	}
	if updated.Name != "Centrifuge II" {
		t.Errorf("unexpected updated item %+v", updated)
	}
}

func TestRESTRepository_UpdateStatus_PatchesSubresource(t *testing.T) {
	var gotMethod, gotPath string
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"_id":"e2","name":"Microscope","status":"Out of Service"}`))
	})

	updated, err := repo.UpdateStatus(context.Background(), "e2", StatusOutOfService)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}

	if gotMethod != http.MethodPatch || gotPath != "/api/lab-equipment/e2/status" {
		t.Errorf("expected PATCH /api/lab-equipment/e2/status, got %s %s", gotMethod, gotPath)
	}
	if updated.Status != StatusOutOfService {
		t.Errorf("unexpected updated item %+v", updated)
	}
}

func TestView_SearchAcrossInventoryFields(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"equipment":[
			{"_id":"e1","name":"Centrifuge","serialNumber":"CF-100","location":"Lab 1","status":"Operational"},
			{"_id":"e2","name":"Microscope","serialNumber":"MS-7","location":"Lab 2","status":"Operational"},
			{"_id":"e3","name":"Analyzer","serialNumber":"AN-3","location":"Lab 1","status":"Maintenance"}
		]}`))
	})
	v := NewView(repo, 7, zerolog.Nop())
	if err := v.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	v.SetSearch("ms-7")
	if visible := v.Visible(); len(visible) != 1 || visible[0].ID != "e2" {
		t.Errorf("serial number search failed, got %+v", visible)
	}

	v.SetSearch("lab 1")
	v.SetStatus(StatusMaintenance)
	if visible := v.Visible(); len(visible) != 1 || visible[0].ID != "e3" {
		t.Errorf("combined location and status filter failed, got %+v", visible)
	}
}
