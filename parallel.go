package opensilex

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/opensilex/go-client/api"
	"github.com/opensilex/go-client/util"
)

// fetchAllPageSize is the page size used for the parallel per-experiment
// data fetch; one large page per experiment, as the interactive path does
// not want the full pagination loop.
const fetchAllPageSize = 1000

// ExperimentData pairs an experiment URI with the measurements fetched for
// it. Err is set when that experiment's fetch failed; the other entries are
// still valid.
type ExperimentData struct {
	Experiment string
	Data       []json.RawMessage
	Err        error
}

// DataForExperiments fetches measurement data for several experiments
// concurrently. It authenticates once up front, then fans the searches out
// over a bounded worker pool (Options.FetchConcurrency) sharing the ctx
// deadline. Results are returned in the order of experimentURIs, each entry
// re-associated with its originating URI, never by arrival order.
func (c *Client) DataForExperiments(ctx context.Context, experimentURIs []string) ([]ExperimentData, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if token, _ := c.tokenSnapshot(); token == "" {
		if !c.Authenticate(ctx) {
			return nil, &RequestError{Kind: KindAuthentication, Message: "authentication failed"}
		}
	}

	results := make([]ExperimentData, len(experimentURIs))
	jobs := make(chan int)

	workers := c.options.FetchConcurrency
	if workers > len(experimentURIs) {
		workers = len(experimentURIs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.fetchExperimentData(ctx, experimentURIs[i])
			}
		}()
	}

	for i := range experimentURIs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			// Jobs from i on were never dispatched.
			for j := i; j < len(experimentURIs); j++ {
				results[j] = ExperimentData{Experiment: experimentURIs[j], Err: ctx.Err()}
			}
			return results, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func (c *Client) fetchExperimentData(ctx context.Context, experimentURI string) ExperimentData {
	resp := c.Data.Search(ctx, api.DataSearchParams{
		Experiment: experimentURI,
		Pagination: api.Pagination{PageSize: fetchAllPageSize},
	})
	if !resp.Success {
		util.Warnf("Data fetch for %s failed: %s", experimentURI, resp.Message)
		return ExperimentData{
			Experiment: experimentURI,
			Err:        fmt.Errorf("fetching data for %s: %s", experimentURI, resp.Message),
		}
	}
	return ExperimentData{Experiment: experimentURI, Data: resp.Items()}
}
