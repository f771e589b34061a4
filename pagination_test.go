package opensilex

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages returns a PageFunc serving the given page sizes, counting calls.
func fakePages(t *testing.T, sizes []int, calls *int) PageFunc {
	t.Helper()
	return func(_ context.Context, page, pageSize int) *Response {
		*calls++
		require.Equal(t, *calls-1, page, "pages must be requested in order")

		size := 0
		if page < len(sizes) {
			size = sizes[page]
		}
		items := make([]string, 0, size)
		for i := 0; i < size; i++ {
			items = append(items, fmt.Sprintf(`{"uri": "item-%d-%d"}`, page, i))
		}
		body := `{"result": [` + strings.Join(items, ",") + `]}`
		return newResponse(200, []byte(body), nil)
	}
}

func TestCollectAll_Termination(t *testing.T) {
	calls := 0
	items, err := CollectAll[json.RawMessage](context.Background(), fakePages(t, []int{50, 50, 13}, &calls), CollectOptions{})

	require.NoError(t, err)
	assert.Len(t, items, 113)
	assert.Equal(t, 3, calls)
}

func TestCollectAll_EmptyFirstPage(t *testing.T) {
	calls := 0
	items, err := CollectAll[json.RawMessage](context.Background(), fakePages(t, nil, &calls), CollectOptions{})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, calls)
}

func TestCollectAll_ExactMultipleStopsOnEmptyPage(t *testing.T) {
	calls := 0
	items, err := CollectAll[json.RawMessage](context.Background(), fakePages(t, []int{50, 50}, &calls), CollectOptions{})

	require.NoError(t, err)
	assert.Len(t, items, 100)
	// Two full pages cannot prove exhaustion; one extra call sees the end.
	assert.Equal(t, 3, calls)
}

func TestCollectAll_OrderPreserved(t *testing.T) {
	calls := 0
	type item struct {
		URI string `json:"uri"`
	}
	items, err := CollectAll[item](context.Background(), fakePages(t, []int{2, 1}, &calls), CollectOptions{PageSize: 2})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []item{{URI: "item-0-0"}, {URI: "item-0-1"}, {URI: "item-1-0"}}, items)
}

func TestCollectAll_PageLimit(t *testing.T) {
	// A remote that keeps returning full pages must trip the bound.
	full := func(_ context.Context, page, pageSize int) *Response {
		return newResponse(200, []byte(`{"result": [{"uri": "a"}, {"uri": "b"}]}`), nil)
	}
	items, err := CollectAll[json.RawMessage](context.Background(), full, CollectOptions{PageSize: 2, MaxPages: 5})

	require.ErrorIs(t, err, ErrPageLimitExceeded)
	assert.Len(t, items, 10)
}

func TestCollectAll_FailedPage(t *testing.T) {
	fetch := func(_ context.Context, page, pageSize int) *Response {
		if page == 0 {
			return newResponse(200, []byte(`{"result": [{"uri": "a"}, {"uri": "b"}]}`), nil)
		}
		return newResponse(0, nil, classifyStatus(500, []byte(`{"message": "boom"}`)))
	}
	items, err := CollectAll[json.RawMessage](context.Background(), fetch, CollectOptions{PageSize: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, items, 2)
}
