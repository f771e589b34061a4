package api

import "net/url"

type EventSearchParams struct {
	Target     string
	RdfType    string
	Experiment string
	StartDate  string
	EndDate    string
	OrderBy    []string
	Pagination
}

func (p EventSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "target", p.Target)
	setString(q, "rdf_type", p.RdfType)
	setString(q, "experiment", p.Experiment)
	setString(q, "start_date", p.StartDate)
	setString(q, "end_date", p.EndDate)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type EventCreationData struct {
	URI         string   `json:"uri,omitempty"`
	RdfType     string   `json:"rdf_type" validate:"required"`
	Targets     []string `json:"targets" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start,omitempty"`
	End         string   `json:"end,omitempty"`
	IsInstant   bool     `json:"is_instant,omitempty"`
}
