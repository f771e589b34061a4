package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Defaults(t *testing.T) {
	q := Pagination{}.queryParams()
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "20", q.Get("page_size"))

	q = Pagination{Page: 3, PageSize: 50}.queryParams()
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "50", q.Get("page_size"))
}

func TestDataSearchParams_QueryParams(t *testing.T) {
	q := DataSearchParams{
		Experiment: "exp:1",
		StartDate:  "2017-01-01T00:00:00Z",
	}.QueryParams()

	assert.Equal(t, "exp:1", q.Get("experiment"))
	assert.Equal(t, "2017-01-01T00:00:00Z", q.Get("start_date"))
	assert.False(t, q.Has("variable"))
	assert.False(t, q.Has("end_date"))
}

func TestScientificObjectSearchParams_RepeatedValues(t *testing.T) {
	q := ScientificObjectSearchParams{
		RdfTypes: []string{"vocabulary:Plant", "vocabulary:Plot"},
	}.QueryParams()

	assert.Equal(t, []string{"vocabulary:Plant", "vocabulary:Plot"}, q["rdf_types"])
}

func TestExperimentSearchParams_BoolPointer(t *testing.T) {
	public := false
	q := ExperimentSearchParams{IsPublic: &public}.QueryParams()
	// An explicit false still serializes; only nil is omitted.
	assert.Equal(t, "false", q.Get("is_public"))

	q = ExperimentSearchParams{}.QueryParams()
	assert.False(t, q.Has("is_public"))
}

func TestGenerateURI(t *testing.T) {
	uri := GenerateURI("scientificobject")
	assert.True(t, strings.HasPrefix(uri, "opensilex:id/scientificobject/"))
	assert.NotEqual(t, uri, GenerateURI("scientificobject"))
}
