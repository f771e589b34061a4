package api

import "net/url"

// The organization/site/facility/person resources share one flat search
// shape: an optional name pattern plus pagination.

type OrganizationSearchParams = ConceptSearchParams
type SiteSearchParams = ConceptSearchParams
type FacilitySearchParams = ConceptSearchParams

type OrganizationCreationData struct {
	URI     string   `json:"uri,omitempty"`
	Name    string   `json:"name" validate:"required"`
	RdfType string   `json:"rdf_type,omitempty"`
	Parents []string `json:"parents,omitempty"`
	Sites   []string `json:"sites,omitempty"`
}

type SiteCreationData struct {
	URI           string   `json:"uri,omitempty"`
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Address       *Address `json:"address,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
}

type Address struct {
	CountryName   string `json:"country_name,omitempty"`
	Locality      string `json:"locality,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Region        string `json:"region,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
}

type FacilityCreationData struct {
	URI           string   `json:"uri,omitempty"`
	Name          string   `json:"name" validate:"required"`
	RdfType       string   `json:"rdf_type,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
	Sites         []string `json:"sites,omitempty"`
}

type PersonSearchParams struct {
	Name    string
	OrderBy []string
	Pagination
}

func (p PersonSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type PersonCreationData struct {
	URI         string `json:"uri,omitempty"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Affiliation string `json:"affiliation,omitempty"`
	Phone       string `json:"phone_number,omitempty"`
	Orcid       string `json:"orcid,omitempty"`
}
