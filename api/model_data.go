package api

import "net/url"

type DataSearchParams struct {
	Experiment       string
	Variable         string
	ScientificObject string
	Device           string
	StartDate        string
	EndDate          string
	OrderBy          []string
	Pagination
}

func (p DataSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "experiment", p.Experiment)
	setString(q, "variable", p.Variable)
	setString(q, "scientific_object", p.ScientificObject)
	setString(q, "device", p.Device)
	setString(q, "start_date", p.StartDate)
	setString(q, "end_date", p.EndDate)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

// DataPoint is one measurement. Value is left untyped because the remote
// service stores numbers, booleans, and strings depending on the variable's
// datatype.
type DataPoint struct {
	URI        string      `json:"uri,omitempty"`
	Date       string      `json:"date" validate:"required"`
	Target     string      `json:"target" validate:"required"`
	Variable   string      `json:"variable" validate:"required"`
	Value      any         `json:"value" validate:"required"`
	Confidence float64     `json:"confidence,omitempty"`
	Provenance *Provenance `json:"provenance,omitempty"`
}

type Provenance struct {
	URI        string `json:"uri,omitempty"`
	Experiment string `json:"experiment,omitempty"`
}
