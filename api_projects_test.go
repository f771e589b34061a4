package opensilex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensilex/go-client/api"
)

func TestProjects_CreateOmitsEmptyFields(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	var body map[string]any
	httpmock.RegisterResponder("POST", test_baseURL+"/core/projects",
		func(req *http.Request) (*http.Response, error) {
			raw, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &body))
			return httpmock.NewStringResponse(201, `{"result": ["opensilex:id/project/p1"]}`), nil
		},
	)

	c := newTestClient()
	resp := c.Projects.Create(context.Background(), api.ProjectCreationData{Name: "Drought Trial"})
	require.True(t, resp.Success)

	// Only the identity field went over the wire; optional fields are
	// omitted, never sent as null.
	require.Len(t, body, 1)
	assert.Equal(t, "Drought Trial", body["name"])

	uri, err := resp.ExtractURI()
	require.NoError(t, err)
	assert.Equal(t, "opensilex:id/project/p1", uri)
}

func TestProjects_CreateRequiresName(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	c := newTestClient()
	resp := c.Projects.Create(context.Background(), api.ProjectCreationData{Shortname: "DT"})

	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)
	// Rejected client-side: no authentication, no create call.
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestProjects_SearchQueryParams(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	var query url.Values
	httpmock.RegisterResponder("GET", test_baseURL+"/core/projects",
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			return httpmock.NewStringResponse(200, `{"result": []}`), nil
		},
	)

	c := newTestClient()
	resp := c.Projects.Search(context.Background(), api.ProjectSearchParams{
		Name:       "wheat",
		Year:       2024,
		Pagination: api.Pagination{Page: 2, PageSize: 10},
	})
	require.True(t, resp.Success)

	assert.Equal(t, "wheat", query.Get("name"))
	assert.Equal(t, "2024", query.Get("year"))
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "10", query.Get("page_size"))
	// Unset optionals never reach the query string.
	assert.False(t, query.Has("keyword"))
	assert.False(t, query.Has("order_by"))
}

func TestProjects_GetByURIEscapesPath(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	uri := "http://example.org/id/project/p1"
	httpmock.RegisterResponder("GET", test_baseURL+"/core/projects/"+url.PathEscape(uri),
		httpmock.NewStringResponder(200, `{"result": [{"uri": "http://example.org/id/project/p1"}]}`))

	c := newTestClient()
	resp := c.Projects.GetByURI(context.Background(), uri)
	require.True(t, resp.Success)
}

func TestData_CreateValidatesBatch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	c := newTestClient()

	resp := c.Data.Create(context.Background(), nil)
	require.False(t, resp.Success)

	// A point missing its variable fails the whole batch before dispatch.
	resp = c.Data.Create(context.Background(), []api.DataPoint{
		{Date: "2024-01-15T10:30:00Z", Target: "opensilex:id/scientificobject/so1", Value: 25.5},
	})
	require.False(t, resp.Success)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestData_CreatePostsBatch(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	var batch []map[string]any
	httpmock.RegisterResponder("POST", test_baseURL+"/core/data",
		func(req *http.Request) (*http.Response, error) {
			raw, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &batch))
			return httpmock.NewStringResponse(201, `{"result": ["opensilex:id/data/d1"]}`), nil
		},
	)

	c := newTestClient()
	resp := c.Data.Create(context.Background(), []api.DataPoint{
		{
			Date:     "2024-01-15T10:30:00Z",
			Target:   "opensilex:id/scientificobject/so1",
			Variable: "opensilex:id/variable/plant_height",
			Value:    25.5,
		},
	})
	require.True(t, resp.Success)
	require.Len(t, batch, 1)
	assert.Equal(t, 25.5, batch[0]["value"])
	assert.NotContains(t, batch[0], "uri")
	assert.NotContains(t, batch[0], "confidence")
}
