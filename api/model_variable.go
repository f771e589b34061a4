package api

import "net/url"

type VariableSearchParams struct {
	Name    string
	Entity  string
	OrderBy []string
	Pagination
}

func (p VariableSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setString(q, "entity", p.Entity)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

// VariableCreationData links the four ontology concepts a variable is
// composed of. The concept fields are URIs.
type VariableCreationData struct {
	URI              string `json:"uri,omitempty"`
	Name             string `json:"name" validate:"required"`
	AlternativeName  string `json:"alternative_name,omitempty"`
	Description      string `json:"description,omitempty"`
	Entity           string `json:"entity" validate:"required"`
	Characteristic   string `json:"characteristic" validate:"required"`
	Method           string `json:"method" validate:"required"`
	Unit             string `json:"unit" validate:"required"`
	DataType         string `json:"datatype" validate:"required"`
	TimeInterval     string `json:"time_interval,omitempty"`
	SamplingInterval string `json:"sampling_interval,omitempty"`
}

// ConceptSearchParams covers the flat name-filtered searches shared by the
// entity/characteristic/method/unit endpoints.
type ConceptSearchParams struct {
	Name    string
	OrderBy []string
	Pagination
}

func (p ConceptSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

// ConceptCreationData creates one of the variable ontology concepts
// (entity, characteristic, method, or unit).
type ConceptCreationData struct {
	URI         string `json:"uri,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}
