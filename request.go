package opensilex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/matryer/try"

	"github.com/opensilex/go-client/util"
)

// Request issues an authenticated call and returns the raw JSON body on 200.
// All failure modes come back as a *RequestError; nothing panics and no
// transport fault escapes undecorated. Callers that need the envelope
// taxonomy should go through the resource services instead.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	_, respBody, err := c.performRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return respBody, nil
}

// do is the facade entry point: every resource service method funnels
// through here and gets its outcome shaped into an envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) *Response {
	statusCode, respBody, err := c.performRequest(ctx, method, path, query, body)
	return newResponse(statusCode, respBody, err)
}

// performRequest drives one logical call: lazy authentication, the HTTP
// exchange, and exactly one re-authentication retry when the token has
// expired. A non-nil error is always a *RequestError; the status/body pair
// is only valid when the error is nil, and the status is then 2xx.
func (c *Client) performRequest(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if token, _ := c.tokenSnapshot(); token == "" {
		if !c.Authenticate(ctx) {
			return 0, nil, &RequestError{
				Kind:    KindAuthentication,
				Message: "authentication failed",
			}
		}
	}

	var (
		statusCode   int
		responseBody []byte
	)

	// The retrying lib runs the func again as long as the bool is true and
	// err is non-nil; the attempt counter bounds us to one retry.
	err := try.Do(func(attempt int) (bool, error) {
		_, generation := c.tokenSnapshot()

		request, err := c.prepareRequest(ctx, method, path, body, query)
		if err != nil {
			return false, &RequestError{Kind: KindTransport, Message: err.Error(), cause: err}
		}

		httpResponse, err := c.callAPI(request)
		if err != nil {
			return false, &RequestError{Kind: KindTransport, Message: err.Error(), cause: err}
		}
		responseBody, err = io.ReadAll(httpResponse.Body)
		httpResponse.Body.Close()
		if err != nil {
			return false, &RequestError{Kind: KindTransport, Message: err.Error(), cause: err}
		}
		statusCode = httpResponse.StatusCode

		if statusCode == http.StatusUnauthorized {
			expired := &RequestError{
				Kind:       KindTokenExpired,
				StatusCode: statusCode,
				Message:    "bearer token rejected",
			}
			// Re-authenticate once; a 401 on the retried attempt is final.
			if attempt >= 2 {
				return false, expired
			}
			util.Infof("Token expired, re-authenticating...")
			if !c.reauthenticate(ctx, generation) {
				return false, expired
			}
			return true, expired
		}

		return false, nil
	})
	if err != nil {
		util.Warnf("%s %s failed: %v", method, path, err)
		return statusCode, nil, err
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		reqErr := classifyStatus(statusCode, responseBody)
		util.Warnf("Request failed: %d - %s", statusCode, string(responseBody))
		return statusCode, nil, reqErr
	}

	return statusCode, responseBody, nil
}

// classifyStatus maps a non-2xx response onto the error taxonomy.
func classifyStatus(statusCode int, body []byte) *RequestError {
	kind := KindValidation
	if statusCode >= http.StatusInternalServerError {
		kind = KindServer
	}

	message := remoteMessage(body)
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &RequestError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Errors:     remoteErrors(body),
	}
}
