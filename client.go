package opensilex

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/opensilex/go-client/util"
)

// Client is the facade over the remote OpenSILEX REST API.
// In most cases there should be only one, shared, Client per process.
type Client struct {
	cfg     *HTTPConfiguration
	options *Options
	common  service // Reuse a single struct instead of allocating one for each service on the heap.

	validate *validator.Validate

	// mu guards the token, its generation counter, and the Authorization
	// entry of the default header set. authMu serializes credential
	// exchanges so concurrent 401s trigger at most one re-authentication.
	mu         sync.Mutex
	authMu     sync.Mutex
	token      string
	generation uint64

	// API services
	Projects          *ProjectsService
	Experiments       *ExperimentsService
	ScientificObjects *ScientificObjectsService
	Variables         *VariablesService
	Data              *DataService
	Devices           *DevicesService
	Events            *EventsService
	Organizations     *OrganizationsService
	Sites             *SitesService
	Facilities        *FacilitiesService
	Persons           *PersonsService
	System            *SystemService
}

type service struct {
	client *Client
}

// NewClient creates a new API client. The base URL, credentials, and timeout
// come from options; zero fields fall back to CheckDefaults.
func NewClient(options *Options) (*Client, error) {
	if options == nil {
		options = &Options{}
	}
	if options.Logger != nil {
		util.SetLogger(options.Logger)
	}
	options.CheckDefaults()

	c := &Client{
		cfg:      NewConfiguration(options),
		options:  options,
		validate: validator.New(),
	}
	c.common.client = c

	c.Projects = (*ProjectsService)(&c.common)
	c.Experiments = (*ExperimentsService)(&c.common)
	c.ScientificObjects = (*ScientificObjectsService)(&c.common)
	c.Variables = (*VariablesService)(&c.common)
	c.Data = (*DataService)(&c.common)
	c.Devices = (*DevicesService)(&c.common)
	c.Events = (*EventsService)(&c.common)
	c.Organizations = (*OrganizationsService)(&c.common)
	c.Sites = (*SitesService)(&c.common)
	c.Facilities = (*FacilitiesService)(&c.common)
	c.Persons = (*PersonsService)(&c.common)
	c.System = (*SystemService)(&c.common)

	util.Infof("OpenSILEX client initialized with base URL: %s", c.cfg.BasePath)
	return c, nil
}

// BaseURL returns the resolved base URL of the remote API.
func (c *Client) BaseURL() string {
	return c.cfg.BasePath
}

// ChangeBasePath switches the base URL, e.g. to point tests at a mock.
func (c *Client) ChangeBasePath(path string) {
	c.cfg.BasePath = path
}

// callAPI does the request.
func (c *Client) callAPI(request *http.Request) (*http.Response, error) {
	return c.cfg.HTTPClient.Do(request)
}

// prepareRequest builds the request from the current default header set.
func (c *Client) prepareRequest(
	ctx context.Context,
	method string,
	path string,
	postBody any,
	queryParams url.Values,
) (*http.Request, error) {
	u, err := url.Parse(c.cfg.BasePath + path)
	if err != nil {
		return nil, err
	}

	query := u.Query()
	for k, vs := range queryParams {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()

	var body *bytes.Buffer
	if postBody != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(postBody); err != nil {
			return nil, err
		}
	}

	var request *http.Request
	if body != nil {
		request, err = http.NewRequestWithContext(ctx, method, u.String(), body)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for header, value := range c.cfg.DefaultHeader {
		request.Header.Set(header, value)
	}
	c.mu.Unlock()
	request.Header.Set("User-Agent", c.cfg.UserAgent)

	return request, nil
}

// validateData short-circuits a creation call whose payload is missing
// required fields, without a network round-trip.
func (c *Client) validateData(data any) *Response {
	if err := c.validate.Struct(data); err != nil {
		return &Response{
			Message: "invalid creation data",
			Errors:  []string{err.Error()},
		}
	}
	return nil
}
