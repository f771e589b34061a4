package opensilex

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// CollectPageSize is the page size CollectAll uses by default. Larger
	// than the service UI default for fewer round-trips.
	CollectPageSize = 50
	// CollectMaxPages bounds the page loop against a remote service that
	// never returns a short page.
	CollectMaxPages = 1000
)

// CollectOptions tunes a CollectAll run. Zero values take the defaults above.
type CollectOptions struct {
	PageSize int
	MaxPages int
}

// PageFunc fetches one zero-based page of a listing endpoint. Resource
// service search methods adapt onto this with a closure fixing their
// filter params.
type PageFunc func(ctx context.Context, page, pageSize int) *Response

// CollectAll drains a paginated listing into one slice, in page order,
// advancing the page counter until a short or empty page. Items are decoded
// into T; use json.RawMessage to keep them opaque. A failed page stops the
// loop and returns the items gathered so far along with the error.
func CollectAll[T any](ctx context.Context, fetch PageFunc, opts CollectOptions) ([]T, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = CollectPageSize
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = CollectMaxPages
	}

	var all []T
	for page := 0; ; page++ {
		if page >= maxPages {
			return all, ErrPageLimitExceeded
		}

		resp := fetch(ctx, page, pageSize)
		if !resp.Success {
			return all, fmt.Errorf("page %d failed: %s", page, resp.Message)
		}

		items := resp.Items()
		if len(items) == 0 {
			return all, nil
		}

		for _, item := range items {
			var decoded T
			if err := json.Unmarshal(item, &decoded); err != nil {
				return all, fmt.Errorf("page %d: decoding item: %w", page, err)
			}
			all = append(all, decoded)
		}

		if len(items) < pageSize {
			return all, nil
		}
	}
}
