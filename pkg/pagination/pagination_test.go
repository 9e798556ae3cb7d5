package pagination

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFromContext_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Page != 1 {
		t.Errorf("expected default page 1, got %d", p.Page)
	}
	if p.Limit != DefaultPageSize {
		t.Errorf("expected default limit %d, got %d", DefaultPageSize, p.Limit)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.Limit != 10 {
		t.Errorf("expected limit 10, got %d", p.Limit)
	}
	if p.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", p.Offset())
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	p := FromContext(c)

	if p.Limit != MaxPageSize {
		t.Errorf("expected limit capped at %d, got %d", MaxPageSize, p.Limit)
	}
}

func TestSingle(t *testing.T) {
	s := Single(5)

	if s.Page != 1 || s.TotalPages != 1 || s.Total != 5 {
		t.Errorf("unexpected state: %+v", s)
	}
	if s.HasNext || s.HasPrev {
		t.Errorf("single page must have no neighbours: %+v", s)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		total int
		p     Params
		want  State
	}{
		{
			name:  "first of three pages",
			total: 20,
			p:     Params{Page: 1, Limit: 7},
			want:  State{Page: 1, TotalPages: 3, Total: 20, HasNext: true, HasPrev: false},
		},
		{
			name:  "middle page",
			total: 20,
			p:     Params{Page: 2, Limit: 7},
			want:  State{Page: 2, TotalPages: 3, Total: 20, HasNext: true, HasPrev: true},
		},
		{
			name:  "last page",
			total: 20,
			p:     Params{Page: 3, Limit: 7},
			want:  State{Page: 3, TotalPages: 3, Total: 20, HasNext: false, HasPrev: true},
		},
		{
			name:  "page past the end clamps",
			total: 20,
			p:     Params{Page: 9, Limit: 7},
			want:  State{Page: 3, TotalPages: 3, Total: 20, HasNext: false, HasPrev: true},
		},
		{
			name:  "empty collection has one empty page",
			total: 0,
			p:     Params{Page: 1, Limit: 7},
			want:  State{Page: 1, TotalPages: 1, Total: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.total, tt.p)
			if got != tt.want {
				t.Errorf("Paginate(%d, %+v) = %+v, want %+v", tt.total, tt.p, got, tt.want)
			}
		})
	}
}

func TestState_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want State
	}{
		{
			name: "appointments envelope",
			in:   `{"currentPage":2,"totalPages":4,"totalAppointments":25,"hasNext":true,"hasPrev":true}`,
			want: State{Page: 2, TotalPages: 4, Total: 25, HasNext: true, HasPrev: true},
		},
		{
			name: "reports envelope",
			in:   `{"currentPage":1,"totalPages":2,"totalReports":9,"hasNext":true,"hasPrev":false}`,
			want: State{Page: 1, TotalPages: 2, Total: 9, HasNext: true},
		},
		{
			name: "plain total and page",
			in:   `{"page":1,"totalPages":1,"total":3,"hasNext":false,"hasPrevious":false}`,
			want: State{Page: 1, TotalPages: 1, Total: 3},
		},
		{
			name: "empty object defaults to page one",
			in:   `{}`,
			want: State{Page: 1, TotalPages: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got State
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestState_UnmarshalJSON_Malformed(t *testing.T) {
	var s State
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("expected error for non-object pagination")
	}
	if err := json.Unmarshal([]byte(`{"currentPage":"two"}`), &s); err == nil {
		t.Error("expected error for non-numeric page")
	}
}

func TestState_Envelope(t *testing.T) {
	s := State{Page: 2, TotalPages: 3, Total: 15, HasNext: true, HasPrev: true}
	env := s.Envelope("totalAppointments")

	if env["currentPage"] != 2 || env["totalAppointments"] != 15 {
		t.Errorf("unexpected envelope: %v", env)
	}

	// The envelope must round-trip through the decoder.
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back State
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != s {
		t.Errorf("round-trip mismatch: got %+v, want %+v", back, s)
	}
}
