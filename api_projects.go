package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const projectsPath = "/core/projects"

// ProjectsService wraps the project resource endpoints.
type ProjectsService service

func (s *ProjectsService) Search(ctx context.Context, params api.ProjectSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, projectsPath, params.QueryParams(), nil)
}

func (s *ProjectsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, projectsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *ProjectsService) GetByURIs(ctx context.Context, uris []string) *Response {
	return s.client.do(ctx, http.MethodGet, projectsPath+"/by_uris", url.Values{"uris": uris}, nil)
}

func (s *ProjectsService) Create(ctx context.Context, data api.ProjectCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, projectsPath, nil, data)
}

func (s *ProjectsService) Update(ctx context.Context, data api.ProjectCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, projectsPath, nil, data)
}

func (s *ProjectsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, projectsPath+"/"+url.PathEscape(uri), nil, nil)
}
