package opensilex

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// SystemService exposes deployment metadata endpoints, mostly useful as a
// cheap authenticated-connectivity check.
type SystemService service

func (s *SystemService) GetSystemInfo(ctx context.Context) *Response {
	return s.client.do(ctx, http.MethodGet, "/core/system/info", nil, nil)
}

// Version returns the deployed API version string, or "" when the system
// info call fails or carries no version field.
func (s *SystemService) Version(ctx context.Context) string {
	resp := s.GetSystemInfo(ctx)
	if !resp.Success {
		return ""
	}
	return gjson.GetBytes(resp.Result, "version").String()
}
