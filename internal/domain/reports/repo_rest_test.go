package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/auth"
	"github.com/hms/portal/internal/platform/rest"
)

func newRepo(t *testing.T, session auth.Session, handler http.HandlerFunc) *RESTRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := rest.NewClient(rest.Options{BaseURL: srv.URL, RetryMax: 1})
	return NewRESTRepository(client, session)
}

func TestRESTRepository_List_DoctorScopeAndPatientFilter(t *testing.T) {
	var gotQuery map[string][]string
	repo := newRepo(t, auth.Session{UserID: "doc-3", Role: auth.RoleDoctor},
		func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"reports":[],"pagination":{"currentPage":1,"totalPages":1,"totalReports":0}}`))
		})

	_, _, err := repo.List(context.Background(), listview.Query{
		Page: 1, Limit: 7,
		Filters: listview.Filters{Actor: "pat-5", Status: "Draft"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if got := gotQuery["doctor"]; len(got) != 1 || got[0] != "doc-3" {
		t.Errorf("doctor scope missing: %v", gotQuery)
	}
	if got := gotQuery["patient"]; len(got) != 1 || got[0] != "pat-5" {
		t.Errorf("patient filter missing: %v", gotQuery)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "Draft" {
		t.Errorf("status filter missing: %v", gotQuery)
	}
}

func TestRESTRepository_List_AdoptsServerPagination(t *testing.T) {
	repo := newRepo(t, auth.Session{Role: auth.RoleAdmin}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"reports":[{"_id":"r1","title":"CBC","status":"Completed","type":"Lab Result",
				"patient":{"_id":"p1","firstName":"Ann","lastName":"Lee"},
				"doctor":{"_id":"d1","firstName":"Sam","lastName":"Wu"},
				"findings":"Within range","date":"2025-03-10T00:00:00Z"}],
			"pagination":{"currentPage":2,"totalPages":4,"totalReports":25,"hasNext":true,"hasPrev":true}
		}`))
	})

	items, page, err := repo.List(context.Background(), listview.Query{Page: 2, Limit: 7})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != 1 || items[0].Type != "Lab Result" {
		t.Errorf("unexpected items %+v", items)
	}
	if page.Page != 2 || page.Total != 25 || !page.HasNext || !page.HasPrev {
		t.Errorf("server pagination not adopted verbatim: %+v", page)
	}
}

func TestRESTRepository_UpdateAndStatus(t *testing.T) {
	var paths []string
	repo := newRepo(t, auth.Session{Role: auth.RoleDoctor}, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"_id":"r1","status":"Reviewed"}`))
	})

	if _, err := repo.Update(context.Background(), "r1", Draft{PatientID: "p1", Type: "Imaging", Title: "MRI", Findings: "ok"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := repo.UpdateStatus(context.Background(), "r1", "Reviewed"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	for _, p := range paths {
		if p != "PUT /api/medical-reports/r1" {
			t.Errorf("unexpected call %s", p)
		}
	}
}
