package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

// Organization-level resources (organizations, sites, facilities, persons)
// share the same thin CRUD surface.

const (
	organizationsPath = "/core/organisations"
	sitesPath         = "/core/sites"
	facilitiesPath    = "/core/facilities"
	personsPath       = "/security/persons"
)

type OrganizationsService service

func (s *OrganizationsService) Search(ctx context.Context, params api.OrganizationSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, organizationsPath, params.QueryParams(), nil)
}

func (s *OrganizationsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, organizationsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *OrganizationsService) Create(ctx context.Context, data api.OrganizationCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, organizationsPath, nil, data)
}

func (s *OrganizationsService) Update(ctx context.Context, data api.OrganizationCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, organizationsPath, nil, data)
}

func (s *OrganizationsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, organizationsPath+"/"+url.PathEscape(uri), nil, nil)
}

type SitesService service

func (s *SitesService) Search(ctx context.Context, params api.SiteSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, sitesPath, params.QueryParams(), nil)
}

func (s *SitesService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, sitesPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *SitesService) Create(ctx context.Context, data api.SiteCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, sitesPath, nil, data)
}

func (s *SitesService) Update(ctx context.Context, data api.SiteCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, sitesPath, nil, data)
}

func (s *SitesService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, sitesPath+"/"+url.PathEscape(uri), nil, nil)
}

type FacilitiesService service

func (s *FacilitiesService) Search(ctx context.Context, params api.FacilitySearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, facilitiesPath, params.QueryParams(), nil)
}

func (s *FacilitiesService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, facilitiesPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *FacilitiesService) Create(ctx context.Context, data api.FacilityCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, facilitiesPath, nil, data)
}

func (s *FacilitiesService) Update(ctx context.Context, data api.FacilityCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, facilitiesPath, nil, data)
}

func (s *FacilitiesService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, facilitiesPath+"/"+url.PathEscape(uri), nil, nil)
}

type PersonsService service

func (s *PersonsService) Search(ctx context.Context, params api.PersonSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, personsPath, params.QueryParams(), nil)
}

func (s *PersonsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, personsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *PersonsService) Create(ctx context.Context, data api.PersonCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, personsPath, nil, data)
}

func (s *PersonsService) Update(ctx context.Context, data api.PersonCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, personsPath, nil, data)
}

func (s *PersonsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, personsPath+"/"+url.PathEscape(uri), nil, nil)
}
