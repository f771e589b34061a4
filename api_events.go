package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const eventsPath = "/core/events"

// EventsService wraps the event (irrigation, treatment, ...) resource
// endpoints.
type EventsService service

func (s *EventsService) Search(ctx context.Context, params api.EventSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, eventsPath, params.QueryParams(), nil)
}

func (s *EventsService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, eventsPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *EventsService) Create(ctx context.Context, data api.EventCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, eventsPath, nil, data)
}

func (s *EventsService) Update(ctx context.Context, data api.EventCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, eventsPath, nil, data)
}

func (s *EventsService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, eventsPath+"/"+url.PathEscape(uri), nil, nil)
}
