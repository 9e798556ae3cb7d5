package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, Token: "tok-123", RetryMax: 1}), srv
}

func TestClient_Get_QuerySkipsEmptyValues(t *testing.T) {
	var gotQuery string
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	err := c.Get(context.Background(), "/api/appointments", Query{
		"page":   "2",
		"status": "",
		"doctor": "doc-1",
		"date":   "",
	}, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if gotQuery != "doctor=doc-1&page=2" {
		t.Errorf("unexpected query %q", gotQuery)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
}

func TestClient_Get_RequestError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"appointment slot already taken"}`))
	})

	err := c.Get(context.Background(), "/api/appointments", nil, nil)

	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", re.StatusCode)
	}
	if re.Message != "appointment slot already taken" {
		t.Errorf("expected server message, got %q", re.Message)
	}
}

func TestClient_Get_ErrorSpelling(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"status is required"}`))
	})

	err := c.Get(context.Background(), "/api/care-tasks", nil, nil)

	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if re.Message != "status is required" {
		t.Errorf("expected {\"error\": ...} body to be decoded, got %q", re.Message)
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := NewClient(Options{BaseURL: srv.URL, RetryMax: 1})
	err := c.Post(context.Background(), "/api/appointments", map[string]string{"reason": "checkup"}, nil)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestClient_Put_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"status":"Completed"}`))
	})

	var out struct {
		Status string `json:"status"`
	}
	err := c.Put(context.Background(), "/api/appointments/a1", map[string]string{"status": "Completed"}, &out)
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("unexpected content type %q", gotContentType)
	}
	if gotBody != `{"status":"Completed"}` {
		t.Errorf("unexpected body %q", gotBody)
	}
	if out.Status != "Completed" {
		t.Errorf("response not decoded: %+v", out)
	}
}

func TestClient_Delete_NoBody(t *testing.T) {
	var gotMethod string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.Delete(context.Background(), "/api/appointments/a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
}

func TestClient_GetCollection(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reports":[{"id":"r1"}],"pagination":{"currentPage":1,"totalPages":1,"totalReports":1}}`))
	})

	col, err := c.GetCollection(context.Background(), "/api/medical-reports", nil, "reports")
	if err != nil {
		t.Fatalf("get collection: %v", err)
	}
	if len(col.Items) != 1 || !col.Paged {
		t.Errorf("unexpected collection: %+v", col)
	}
}

func TestClient_GetCollection_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	})

	if _, err := c.GetCollection(context.Background(), "/api/medical-reports", nil, "reports"); err == nil {
		t.Error("expected decode error for malformed envelope")
	}
}

func TestNotFound(t *testing.T) {
	if !NotFound(&RequestError{StatusCode: http.StatusNotFound}) {
		t.Error("expected 404 to be NotFound")
	}
	if NotFound(&RequestError{StatusCode: http.StatusForbidden}) {
		t.Error("403 is not NotFound")
	}
	if NotFound(errors.New("plain")) {
		t.Error("plain error is not NotFound")
	}
}
