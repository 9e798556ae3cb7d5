package rest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hms/portal/pkg/pagination"
)

// Collection is the normalized form of a list response. The backend answers
// list endpoints in two shapes: a bare JSON array, or an object holding the
// items under a per-collection key plus an optional pagination envelope.
// Paged records which shape arrived; the two are never mixed in one response.
type Collection struct {
	Items []json.RawMessage
	Page  pagination.State
	Paged bool
}

// DecodeCollection interprets a list response body. Anything that is neither
// a bare array nor an object with an item array under key is rejected, not
// defaulted: the caller decides how to degrade.
func DecodeCollection(data []byte, key string) (Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Collection{}, fmt.Errorf("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Collection{}, fmt.Errorf("array response: %w", err)
		}
		return Collection{Items: items, Page: pagination.Single(len(items))}, nil

	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return Collection{}, fmt.Errorf("object response: %w", err)
		}

		rawItems, ok := envelope[key]
		if !ok {
			return Collection{}, fmt.Errorf("response object has no %q field", key)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return Collection{}, fmt.Errorf("%q field: %w", key, err)
		}

		rawPage, ok := envelope["pagination"]
		if !ok {
			// Enveloped but unpaginated (e.g. {"equipment": [...]}).
			return Collection{Items: items, Page: pagination.Single(len(items))}, nil
		}
		var page pagination.State
		if err := json.Unmarshal(rawPage, &page); err != nil {
			return Collection{}, err
		}
		return Collection{Items: items, Page: page, Paged: true}, nil

	default:
		return Collection{}, fmt.Errorf("unexpected response shape")
	}
}

// DecodeItems unmarshals every raw item of a collection into Ts. A single
// undecodable item fails the whole page; partial lists are worse than
// explicit errors.
func DecodeItems[T any](col Collection) ([]T, error) {
	items := make([]T, 0, len(col.Items))
	for i, raw := range col.Items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
