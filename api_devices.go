package opensilex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensilex/go-client/api"
)

const devicesPath = "/core/devices"

// DevicesService wraps the device (sensor, camera, ...) resource endpoints.
type DevicesService service

func (s *DevicesService) Search(ctx context.Context, params api.DeviceSearchParams) *Response {
	return s.client.do(ctx, http.MethodGet, devicesPath, params.QueryParams(), nil)
}

func (s *DevicesService) GetByURI(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodGet, devicesPath+"/"+url.PathEscape(uri), nil, nil)
}

func (s *DevicesService) Create(ctx context.Context, data api.DeviceCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPost, devicesPath, nil, data)
}

func (s *DevicesService) Update(ctx context.Context, data api.DeviceCreationData) *Response {
	if resp := s.client.validateData(data); resp != nil {
		return resp
	}
	return s.client.do(ctx, http.MethodPut, devicesPath, nil, data)
}

func (s *DevicesService) Delete(ctx context.Context, uri string) *Response {
	return s.client.do(ctx, http.MethodDelete, devicesPath+"/"+url.PathEscape(uri), nil, nil)
}
