// Package listview implements the stateful list view-model behind every
// data-table screen of the portal: one fetched page of a remote collection,
// the active filters, pagination bookkeeping, and the mutations that refresh
// the list. Screens differ only in their Source and Config.
package listview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hms/portal/pkg/pagination"
)

// ErrNotConfirmed is returned by Remove when the destructive-action guard
// was not affirmed. No request is sent in that case.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// ValidationError reports required draft fields that were empty at submit
// time. It is raised before any network call.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

// Query is what a Source needs to list one page.
type Query struct {
	Page    int
	Limit   int
	Filters Filters
}

// Source is the remote collection behind a view. REST-backed implementations
// live in the domain packages; tests substitute in-memory ones.
type Source[T, D any] interface {
	List(ctx context.Context, q Query) ([]T, pagination.State, error)
	Create(ctx context.Context, draft D) (T, error)
	UpdateStatus(ctx context.Context, id, status string) (T, error)
	Delete(ctx context.Context, id string) error
}

// Config parameterizes a View for one screen.
type Config[T, D any] struct {
	// Name identifies the screen in log events.
	Name string
	// PageSize is the requested page length; pagination.DefaultPageSize
	// when unset.
	PageSize int
	// Matchers drive the client-side Visible derivation.
	Matchers Matchers[T]
	// Required returns the names of required draft fields that are empty.
	Required func(D) []string
	Logger   zerolog.Logger
}

// View holds one screen's list state. All methods are safe for concurrent
// use; each screen owns its View exclusively and no state is shared between
// views.
type View[T, D any] struct {
	src Source[T, D]
	cfg Config[T, D]

	mu      sync.Mutex
	items   []T
	filters Filters
	reqPage int
	page    pagination.State
	loading bool
	lastErr error
	seq     uint64
	draft   D
}

// New builds a View over src. The collection starts empty; call Fetch to
// load the first page.
func New[T, D any](src Source[T, D], cfg Config[T, D]) *View[T, D] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = pagination.DefaultPageSize
	}
	return &View[T, D]{
		src:     src,
		cfg:     cfg,
		reqPage: 1,
		page:    pagination.Single(0),
	}
}

// Fetch loads the currently requested page under the current filters,
// replacing the fetched items wholesale. A fetch issued later supersedes
// this one: if a newer fetch has been started by the time the response
// arrives, the response is discarded instead of overwriting fresher data.
// On failure the view resets to an empty, valid state; the error is both
// returned and retained so "fetch failed" stays distinguishable from
// "no results".
func (v *View[T, D]) Fetch(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	token := v.seq
	v.loading = true
	q := Query{Page: v.reqPage, Limit: v.cfg.PageSize, Filters: v.filters}
	v.mu.Unlock()

	items, page, err := v.src.List(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq {
		// A newer fetch owns the view now; let it settle the state.
		return nil
	}
	v.loading = false
	if err != nil {
		v.cfg.Logger.Error().Err(err).
			Str("screen", v.cfg.Name).
			Int("page", q.Page).
			Msg("list fetch failed")
		v.items = nil
		v.page = pagination.Single(0)
		v.lastErr = err
		return err
	}
	v.items = items
	v.page = page
	v.reqPage = page.Page
	v.lastErr = nil
	return nil
}

// SetSearch updates the free-text filter. Any filter change moves the view
// back to page 1 so a stale page is never shown against new filters.
func (v *View[T, D]) SetSearch(s string) { v.setFilter(func(f *Filters) { f.Search = s }) }

// SetStatus updates the status filter; "" and "all" match everything.
func (v *View[T, D]) SetStatus(s string) { v.setFilter(func(f *Filters) { f.Status = s }) }

// SetDate updates the calendar-date filter (DateLayout format).
func (v *View[T, D]) SetDate(d string) { v.setFilter(func(f *Filters) { f.Date = d }) }

// SetActor updates the secondary-entity filter (patient/doctor id).
func (v *View[T, D]) SetActor(id string) { v.setFilter(func(f *Filters) { f.Actor = id }) }

// ClearFilters resets every filter field in one batch.
func (v *View[T, D]) ClearFilters() { v.setFilter(func(f *Filters) { *f = Filters{} }) }

func (v *View[T, D]) setFilter(apply func(*Filters)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	before := v.filters
	apply(&v.filters)
	if v.filters != before {
		v.reqPage = 1
	}
}

// SetPage requests an explicit page (1-indexed).
func (v *View[T, D]) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n < 1 {
		n = 1
	}
	v.reqPage = n
}

// NextPage advances to the next page and fetches it. Without a next page it
// is a no-op.
func (v *View[T, D]) NextPage(ctx context.Context) error {
	v.mu.Lock()
	if !v.page.HasNext {
		v.mu.Unlock()
		return nil
	}
	v.reqPage++
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// PrevPage steps back one page and fetches it. Without a previous page it is
// a no-op.
func (v *View[T, D]) PrevPage(ctx context.Context) error {
	v.mu.Lock()
	if !v.page.HasPrev {
		v.mu.Unlock()
		return nil
	}
	v.reqPage--
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// Visible derives the displayed subset of the fetched page from the current
// filters. It is recomputed on every call and never merged back into the
// fetched items.
func (v *View[T, D]) Visible() []T {
	v.mu.Lock()
	items := v.items
	f := v.filters
	v.mu.Unlock()
	return Visible(items, f, v.cfg.Matchers)
}

// Items returns the fetched page unfiltered.
func (v *View[T, D]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Page returns the current pagination state.
func (v *View[T, D]) Page() pagination.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Filters returns the active filter set.
func (v *View[T, D]) Filters() Filters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

// Loading reports whether a fetch is in flight.
func (v *View[T, D]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Err returns the error of the last settled fetch, or nil if it succeeded.
// This is what separates an empty result from a failed one.
func (v *View[T, D]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// UpdateStatus sends a partial status update for one item and, on success,
// refetches the current page rather than patching the item in place, so
// server-computed fields stay consistent. On failure the list is left
// unchanged.
func (v *View[T, D]) UpdateStatus(ctx context.Context, id, status string) error {
	if _, err := v.src.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	return v.Fetch(ctx)
}

// Create validates the draft's required fields, then submits it. A failed
// validation never issues a network call. On success the view moves to page
// 1 (the backend sorts newest first) and refetches.
func (v *View[T, D]) Create(ctx context.Context, draft D) error {
	if v.cfg.Required != nil {
		if missing := v.cfg.Required(draft); len(missing) > 0 {
			return &ValidationError{Fields: missing}
		}
	}
	if _, err := v.src.Create(ctx, draft); err != nil {
		return err
	}
	v.mu.Lock()
	v.reqPage = 1
	v.mu.Unlock()
	return v.Fetch(ctx)
}

// Remove deletes one item. confirm is the destructive-action guard: unless
// it is affirmed, no request is sent and ErrNotConfirmed is returned. On
// success the current page is refetched; on failure the list is unchanged.
func (v *View[T, D]) Remove(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}
	if err := v.src.Delete(ctx, id); err != nil {
		return err
	}
	return v.Fetch(ctx)
}
