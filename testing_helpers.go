package opensilex

import (
	"net/http"

	"github.com/jarcoal/httpmock"
)

var (
	test_baseURL  = "http://opensilex.test/rest"
	test_username = "tester@opensilex.org"
)

func newTestClient() *Client {
	c, _ := NewClient(&Options{
		BaseURL:    test_baseURL,
		Identifier: test_username,
		Password:   "secret",
	})
	return c
}

func httpAuthMock(token string) {
	httpmock.RegisterResponder("POST", test_baseURL+"/security/authenticate",
		httpmock.NewStringResponder(200, `{"result": {"token": "`+token+`"}}`))
}

func httpAuthFailureMock() {
	httpmock.RegisterResponder("POST", test_baseURL+"/security/authenticate",
		httpmock.NewStringResponder(403, `{"result": {"title": "FORBIDDEN", "message": "User does not exists, is disabled or password is invalid"}}`))
}

// httpBearerCheckedMock answers 200 with body only when the request carries
// the expected bearer token, 401 otherwise.
func httpBearerCheckedMock(method, path, token, body string) {
	httpmock.RegisterResponder(method, test_baseURL+path,
		func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") != "Bearer "+token {
				return httpmock.NewStringResponse(401, `{"message": "Token is expired"}`), nil
			}
			return httpmock.NewStringResponse(200, body), nil
		},
	)
}
