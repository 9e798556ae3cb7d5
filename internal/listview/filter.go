package listview

import (
	"strings"
	"time"
)

// All is the sentinel a frontend sends to clear a status filter; it matches
// everything, the same as an empty string.
const All = "all"

// DateLayout is the calendar-date format used by date filters. Time of day
// is ignored when comparing.
const DateLayout = "2006-01-02"

// Filters holds the active predicates of one screen. All fields are
// optional and combine with AND; empty (or All, for Status) means "match
// everything" on that dimension. Actor is the optional secondary-entity
// filter (a patient or doctor id) and is applied server-side only.
type Filters struct {
	Search string
	Status string
	Date   string
	Actor  string
}

// StatusParam returns the status filter as a query value: empty when the
// filter is inactive, so it is omitted from the request entirely.
func (f Filters) StatusParam() string {
	if strings.EqualFold(f.Status, All) {
		return ""
	}
	return f.Status
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f.Search == "" && (f.Status == "" || strings.EqualFold(f.Status, All)) &&
		f.Date == "" && f.Actor == ""
}

// Matchers extracts the filterable fields of an item. A nil extractor makes
// the corresponding predicate a no-op for that screen.
type Matchers[T any] struct {
	SearchText func(T) []string
	Status     func(T) string
	Date       func(T) time.Time
}

// Visible derives the displayed subset of a fetched page: the items matching
// the AND of every active predicate. The input slice is never mutated and
// the result never feeds back into it.
func Visible[T any](items []T, f Filters, m Matchers[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, f, m) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, f Filters, m Matchers[T]) bool {
	if f.Search != "" && m.SearchText != nil {
		needle := strings.ToLower(f.Search)
		found := false
		for _, field := range m.SearchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Status != "" && !strings.EqualFold(f.Status, All) && m.Status != nil {
		if m.Status(item) != f.Status {
			return false
		}
	}

	if f.Date != "" && m.Date != nil {
		if m.Date(item).Format(DateLayout) != f.Date {
			return false
		}
	}

	return true
}
