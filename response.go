package opensilex

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Response is the uniform envelope returned by every facade-level call.
// It is constructed once per request and never mutated afterwards.
type Response struct {
	// Success is true exactly when the remote answered with a 2xx status.
	Success bool `json:"success"`
	// Result holds the raw "result" field of the remote body on success.
	Result json.RawMessage `json:"result,omitempty"`
	// Errors lists the remote error messages, when any were declared.
	Errors []string `json:"errors,omitempty"`
	// Message is a human-readable summary of the failure.
	Message string `json:"message,omitempty"`
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int `json:"statusCode,omitempty"`
}

// newResponse is the single place a transport outcome is shaped into the
// envelope. Non-2xx statuses arrive pre-classified as a *RequestError, so
// resource services never re-interpret status codes.
func newResponse(statusCode int, body []byte, err error) *Response {
	if err != nil {
		return newErrorResponse(err)
	}
	return &Response{
		Success:    true,
		StatusCode: statusCode,
		Result:     extractResult(body),
	}
}

func newErrorResponse(err error) *Response {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return &Response{
			StatusCode: reqErr.StatusCode,
			Message:    reqErr.Message,
			Errors:     reqErr.Errors,
		}
	}
	return &Response{Message: err.Error()}
}

// extractResult returns the body's "result" field, or the whole body when no
// result wrapper is present.
func extractResult(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if result := gjson.GetBytes(body, "result"); result.Exists() {
		return json.RawMessage(result.Raw)
	}
	return json.RawMessage(body)
}

// remoteMessage probes the few message locations the service is known to use.
func remoteMessage(body []byte) string {
	for _, path := range []string{"message", "result.message", "result.title"} {
		if m := gjson.GetBytes(body, path); m.Type == gjson.String {
			return m.String()
		}
	}
	return ""
}

func remoteErrors(body []byte) []string {
	field := gjson.GetBytes(body, "errors")
	if !field.IsArray() {
		return nil
	}
	var out []string
	field.ForEach(func(_, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			out = append(out, value.String())
		case value.IsObject():
			if m := value.Get("message"); m.Type == gjson.String {
				out = append(out, m.String())
			} else {
				out = append(out, value.Raw)
			}
		default:
			out = append(out, value.Raw)
		}
		return true
	})
	return out
}

// Decode unmarshals the result payload into v.
func (r *Response) Decode(v any) error {
	if len(r.Result) == 0 {
		return errors.New("empty result")
	}
	return json.Unmarshal(r.Result, v)
}

// Items returns the result payload as a list when it is a JSON array, and
// nil otherwise. Search responses always carry an array result.
func (r *Response) Items() []json.RawMessage {
	if len(r.Result) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(r.Result, &items); err != nil {
		return nil
	}
	return items
}

// ExtractURI pulls the created resource's URI out of a creation response.
// The service answers creation calls with one of a closed set of shapes:
// a result list whose first element is the URI (as a string or a {uri}
// object), a {uri} object, or a bare JSON string. Anything else is reported
// as ErrUnrecognizedResponseShape.
func (r *Response) ExtractURI() (string, error) {
	result := gjson.ParseBytes(r.Result)

	switch {
	case result.Type == gjson.String:
		return result.String(), nil
	case result.IsArray():
		items := result.Array()
		if len(items) == 0 {
			return "", ErrUnrecognizedResponseShape
		}
		first := items[0]
		if first.Type == gjson.String {
			return first.String(), nil
		}
		if uri := first.Get("uri"); uri.Type == gjson.String {
			return uri.String(), nil
		}
	case result.IsObject():
		if uri := result.Get("uri"); uri.Type == gjson.String {
			return uri.String(), nil
		}
	}
	return "", ErrUnrecognizedResponseShape
}
