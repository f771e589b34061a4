package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const dataPath = "/core/data"

// DataService wraps the measurement data endpoints.
type DataService service

func (s *DataService) Search(ctx context.Context, params api.DataSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, dataPath, params.QueryParams(), nil)
}

func (s *DataService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, dataPath+"/"+url.PathEscape(uri), nil, nil)
}

// Create posts a batch of data points. The whole batch is validated
// client-side first; a bad point fails the batch before any network call.
func (s *DataService) Create(ctx context.Context, points []api.DataPoint) *Response {
	if len(points) == 0 {
		return &Response{
			Message: "invalid creation data",
			Errors:  []string{"empty data point batch"},
		}
	}
	for _, point := range points {
		if resp := s.client.validateData(point); resp != nil {
			return resp
		}
	}
	return s.client.do(ctx, http.MethodPost, dataPath, nil, points)
}

func (s *DataService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, dataPath+"/"+url.PathEscape(uri), nil, nil)
}
