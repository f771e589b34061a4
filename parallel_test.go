package opensilex

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataForExperiments(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	httpmock.RegisterResponder("GET", test_baseURL+"/core/data",
		func(req *http.Request) (*http.Response, error) {
			switch req.URL.Query().Get("experiment") {
			case "exp:1":
				return httpmock.NewStringResponse(200, `{"result": [{"value": 1}, {"value": 2}]}`), nil
			case "exp:2":
				return httpmock.NewStringResponse(200, `{"result": [{"value": 3}]}`), nil
			case "exp:broken":
				return httpmock.NewStringResponse(500, `{"message": "store offline"}`), nil
			}
			return httpmock.NewStringResponse(200, `{"result": []}`), nil
		},
	)

	c := newTestClient()
	results, err := c.DataForExperiments(context.Background(), []string{"exp:1", "exp:broken", "exp:2"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results line up with the input order, not arrival order.
	assert.Equal(t, "exp:1", results[0].Experiment)
	assert.Len(t, results[0].Data, 2)
	require.NoError(t, results[0].Err)

	assert.Equal(t, "exp:broken", results[1].Experiment)
	assert.Error(t, results[1].Err)
	assert.Empty(t, results[1].Data)

	assert.Equal(t, "exp:2", results[2].Experiment)
	assert.Len(t, results[2].Data, 1)

	// One authentication for the whole fan-out.
	info := httpmock.GetCallCountInfo()
	require.Equal(t, 1, info["POST "+test_baseURL+"/security/authenticate"])
}

func TestDataForExperiments_AuthFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthFailureMock()

	c := newTestClient()
	results, err := c.DataForExperiments(context.Background(), []string{"exp:1"})
	require.Error(t, err)
	assert.Nil(t, results)
}

func TestDataForExperiments_Empty(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpAuthMock("T")

	c := newTestClient()
	results, err := c.DataForExperiments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
