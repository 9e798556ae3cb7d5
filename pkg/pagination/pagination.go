package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 7
	MaxPageSize     = 100
)

// Params holds pagination parameters extracted from a request.
type Params struct {
	Page  int
	Limit int
}

// FromContext extracts pagination parameters from the echo context.
// Pages are 1-indexed; anything unparseable falls back to the defaults.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the number of items preceding the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// State describes where one fetched page sits within a remote collection.
// It is adopted verbatim from a paginated response envelope, or synthesized
// with Single for endpoints that return a bare array.
type State struct {
	Page       int
	TotalPages int
	Total      int
	HasNext    bool
	HasPrev    bool
}

// Single returns the state for an unpaginated response: everything the
// server sent is page 1 of 1.
func Single(n int) State {
	return State{Page: 1, TotalPages: 1, Total: n}
}

// Paginate computes the state for the page selected by p within a
// collection of total items. An empty collection still has one (empty) page;
// a page past the end clamps to the last page.
func Paginate(total int, p Params) State {
	pages := (total + p.Limit - 1) / p.Limit
	if pages < 1 {
		pages = 1
	}
	page := p.Page
	if page > pages {
		page = pages
	}
	return State{
		Page:       page,
		TotalPages: pages,
		Total:      total,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

// Envelope renders the state in the backend's wire format. The name of the
// total field varies per collection (totalAppointments, totalReports, ...),
// so the caller supplies it.
func (s State) Envelope(totalKey string) map[string]any {
	return map[string]any{
		"currentPage": s.Page,
		"totalPages":  s.TotalPages,
		totalKey:      s.Total,
		"hasNext":     s.HasNext,
		"hasPrev":     s.HasPrev,
	}
}

// UnmarshalJSON decodes a pagination envelope. Backends disagree on field
// names: the page may arrive as "currentPage" or "page", the previous-page
// flag as "hasPrev" or "hasPrevious", and the total under a per-collection
// name ("totalAppointments", "totalReports", or a plain "total"). All
// spellings are accepted.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	for key, val := range raw {
		var dst any
		switch {
		case key == "currentPage" || key == "page":
			dst = &s.Page
		case key == "totalPages":
			dst = &s.TotalPages
		case key == "hasNext":
			dst = &s.HasNext
		case key == "hasPrev" || key == "hasPrevious":
			dst = &s.HasPrev
		case key == "total" || strings.HasPrefix(key, "total"):
			dst = &s.Total
		default:
			continue
		}
		if err := json.Unmarshal(val, dst); err != nil {
			return fmt.Errorf("pagination %s: %w", key, err)
		}
	}

	if s.Page <= 0 {
		s.Page = 1
	}
	if s.TotalPages <= 0 {
		s.TotalPages = 1
	}
	return nil
}
