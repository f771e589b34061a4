package opensilex

import (
	"context"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/opensilex/go-client/util"
)

const (
	authenticatePath = "/security/authenticate"
	logoutPath       = "/security/logout"
)

type authRequestBody struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Authenticate exchanges the credential pair for a bearer token and stores
// it in the default header set. It reports whether the exchange succeeded;
// expected failures (bad credentials, unreachable host) are logged and
// returned as false, never panics.
func (c *Client) Authenticate(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	c.authMu.Lock()
	defer c.authMu.Unlock()
	return c.doAuthenticate(ctx)
}

// IsAuthenticated reports whether a bearer token is currently held.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// reauthenticate is the single-flight path taken after a 401. seen is the
// token generation the failing request was issued under; if another caller
// already refreshed the token, the exchange is skipped.
func (c *Client) reauthenticate(ctx context.Context, seen uint64) bool {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.mu.Lock()
	fresh := c.generation != seen && c.token != ""
	c.mu.Unlock()
	if fresh {
		return true
	}
	return c.doAuthenticate(ctx)
}

// doAuthenticate runs the credential exchange. Callers must hold authMu.
func (c *Client) doAuthenticate(ctx context.Context) bool {
	body := authRequestBody{
		Identifier: c.options.Identifier,
		Password:   c.options.Password,
	}

	request, err := c.prepareRequest(ctx, http.MethodPost, authenticatePath, body, nil)
	if err != nil {
		util.Errorf("Authentication error: %v", err)
		return false
	}
	// Never send a stale token to the auth endpoint.
	request.Header.Del("Authorization")

	response, err := c.callAPI(request)
	if err != nil {
		util.Errorf("Authentication error: %v", err)
		return false
	}
	respBody, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		util.Errorf("Authentication error: %v", err)
		return false
	}

	if response.StatusCode != http.StatusOK {
		util.Errorf("Authentication failed: %d - %s", response.StatusCode, string(respBody))
		return false
	}

	token := gjson.GetBytes(respBody, "result.token")
	if token.Type != gjson.String || token.String() == "" {
		util.Errorf("Authentication response missing token field")
		return false
	}

	c.setToken(token.String())
	util.Infof("Authentication successful")
	return true
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.generation++
	c.cfg.DefaultHeader["Authorization"] = "Bearer " + token
}

func (c *Client) clearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.generation++
	delete(c.cfg.DefaultHeader, "Authorization")
}

// tokenSnapshot returns the current token and its generation counter.
func (c *Client) tokenSnapshot() (string, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.generation
}

// Logout revokes the session server-side (best effort) and always clears the
// local token, returning the client to the unauthenticated state.
func (c *Client) Logout(ctx context.Context) *Response {
	if ctx == nil {
		ctx = context.Background()
	}
	token, _ := c.tokenSnapshot()
	if token == "" {
		return &Response{Success: true, StatusCode: http.StatusOK}
	}
	defer c.clearToken()

	request, err := c.prepareRequest(ctx, http.MethodDelete, logoutPath, nil, nil)
	if err != nil {
		return newResponse(0, nil, err)
	}
	response, err := c.callAPI(request)
	if err != nil {
		util.Warnf("Logout request failed: %v", err)
		return newResponse(0, nil, &RequestError{Kind: KindTransport, Message: err.Error(), cause: err})
	}
	respBody, _ := io.ReadAll(response.Body)
	response.Body.Close()
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		util.Warnf("Logout rejected: %d - %s", response.StatusCode, string(respBody))
		return newResponse(0, nil, classifyStatus(response.StatusCode, respBody))
	}
	return newResponse(response.StatusCode, respBody, nil)
}
