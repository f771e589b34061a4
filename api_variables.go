package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const variablesPath = "/core/variables"

// VariablesService wraps the variable resource endpoints plus the ontology
// concepts a variable is built from (entities, characteristics, methods,
// units).
type VariablesService service

func (s *VariablesService) Search(ctx context.Context, params api.VariableSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, variablesPath, params.QueryParams(), nil)
}

func (s *VariablesService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, variablesPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *VariablesService) Create(ctx context.Context, data api.VariableCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, variablesPath, nil, data)
}

func (s *VariablesService) Update(ctx context.Context, data api.VariableCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, variablesPath, nil, data)
}

func (s *VariablesService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, variablesPath+"/"+url.PathEscape(uri), nil, nil)
}

// Datatypes lists the datatype URIs a variable may declare.
func (s *VariablesService) Datatypes(ctx context.Context) *Response {
	return s.client.do(ctx, http.MethodGet, variablesPath+"/datatypes", nil, nil)
}

func (s *VariablesService) SearchEntities(ctx context.Context, params api.ConceptSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, "/core/entities", params.QueryParams(), nil)
}

func (s *VariablesService) CreateEntity(ctx context.Context, data api.ConceptCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, "/core/entities", nil, data)
}

func (s *VariablesService) SearchCharacteristics(ctx context.Context, params api.ConceptSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, "/core/characteristics", params.QueryParams(), nil)
}

func (s *VariablesService) CreateCharacteristic(ctx context.Context, data api.ConceptCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, "/core/characteristics", nil, data)
}

func (s *VariablesService) SearchMethods(ctx context.Context, params api.ConceptSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, "/core/methods", params.QueryParams(), nil)
}

func (s *VariablesService) CreateMethod(ctx context.Context, data api.ConceptCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, "/core/methods", nil, data)
}

func (s *VariablesService) SearchUnits(ctx context.Context, params api.ConceptSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, "/core/units", params.QueryParams(), nil)
}

func (s *VariablesService) CreateUnit(ctx context.Context, data api.ConceptCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, "/core/units", nil, data)
}
