package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const experimentsPath = "/core/experiments"

// ExperimentsService wraps the experiment resource endpoints.
type ExperimentsService service

func (s *ExperimentsService) Search(ctx context.Context, params api.ExperimentSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, experimentsPath, params.QueryParams(), nil)
}

func (s *ExperimentsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, experimentsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *ExperimentsService) Create(ctx context.Context, data api.ExperimentCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, experimentsPath, nil, data)
}

func (s *ExperimentsService) Update(ctx context.Context, data api.ExperimentCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, experimentsPath, nil, data)
}

func (s *ExperimentsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, experimentsPath+"/"+url.PathEscape(uri), nil, nil)
}
