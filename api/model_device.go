package api

import "net/url"

type DeviceSearchParams struct {
	Name    string
	RdfType string
	Year    int
	OrderBy []string
	Pagination
}

func (p DeviceSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setString(q, "rdf_type", p.RdfType)
	setInt(q, "year", p.Year)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type DeviceCreationData struct {
	URI          string `json:"uri,omitempty"`
	Name         string `json:"name" validate:"required"`
	RdfType      string `json:"rdf_type" validate:"required"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"constructor_model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Description  string `json:"description,omitempty"`
	StartUp      string `json:"start_up,omitempty"`
	Removal      string `json:"removal,omitempty"`
}
