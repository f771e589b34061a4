package api

import "net/url"

type ProjectSearchParams struct {
	Name    string
	Year    int
	Keyword string
	OrderBy []string
	Pagination
}

func (p ProjectSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setInt(q, "year", p.Year)
	setString(q, "keyword", p.Keyword)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type ProjectCreationData struct {
	URI                    string   `json:"uri,omitempty"`
	Name                   string   `json:"name" validate:"required"`
	Shortname              string   `json:"shortname,omitempty"`
	Description            string   `json:"description,omitempty"`
	StartDate              string   `json:"start_date,omitempty"`
	EndDate                string   `json:"end_date,omitempty"`
	Homepage               string   `json:"homepage,omitempty"`
	Objective              string   `json:"objective,omitempty"`
	Keywords               []string `json:"keywords,omitempty"`
	RelatedProjects        []string `json:"related_projects,omitempty"`
	Coordinators           []string `json:"coordinators,omitempty"`
	ScientificContacts     []string `json:"scientific_contacts,omitempty"`
	AdministrativeContacts []string `json:"administrative_contacts,omitempty"`
}
