package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const scientificObjectsPath = "/core/scientific_objects"

// ScientificObjectsService wraps the scientific object (plant, plot, ...)
// resource endpoints.
type ScientificObjectsService service

func (s *ScientificObjectsService) Search(ctx context.Context, params api.ScientificObjectSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, scientificObjectsPath, params.QueryParams(), nil)
}

func (s *ScientificObjectsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, scientificObjectsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *ScientificObjectsService) GetByURIs(ctx context.Context, uris []string) *Response {
	return s.client.do(ctx, http.MethodGet, scientificObjectsPath+"/by_uris", url.Values{"uris": uris}, nil)
}

func (s *ScientificObjectsService) Create(ctx context.Context, data api.ScientificObjectCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, scientificObjectsPath, nil, data)
}

func (s *ScientificObjectsService) Update(ctx context.Context, data api.ScientificObjectCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, scientificObjectsPath, nil, data)
}

func (s *ScientificObjectsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, scientificObjectsPath+"/"+url.PathEscape(uri), nil, nil)
}
