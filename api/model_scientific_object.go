package api

import "net/url"

type ScientificObjectSearchParams struct {
	Name         string
	RdfTypes     []string
	Experiment   string
	FactorLevels []string
	Parent       string
	Germplasm    []string
	OrderBy      []string
	Pagination
}

func (p ScientificObjectSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setStrings(q, "rdf_types", p.RdfTypes)
	setString(q, "experiment", p.Experiment)
	setStrings(q, "factor_levels", p.FactorLevels)
	setString(q, "parent", p.Parent)
	setStrings(q, "germplasm", p.Germplasm)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type ScientificObjectCreationData struct {
	URI        string         `json:"uri,omitempty"`
	Name       string         `json:"name" validate:"required"`
	RdfType    string         `json:"rdf_type" validate:"required"`
	Experiment string         `json:"experiment,omitempty"`
	Geometry   map[string]any `json:"geometry,omitempty"`
	Relations  []Relation     `json:"relations,omitempty"`
}

type Relation struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}
