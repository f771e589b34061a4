package api

import "net/url"

type ExperimentSearchParams struct {
	Name     string
	Year     int
	Project  string
	IsPublic *bool
	OrderBy  []string
	Pagination
}

func (p ExperimentSearchParams) QueryParams() url.Values {
	q := p.queryParams()
	setString(q, "name", p.Name)
	setInt(q, "year", p.Year)
	setString(q, "project", p.Project)
	setBool(q, "is_public", p.IsPublic)
	setStrings(q, "order_by", p.OrderBy)
	return q
}

type ExperimentCreationData struct {
	URI                   string   `json:"uri,omitempty"`
	Name                  string   `json:"name" validate:"required"`
	StartDate             string   `json:"start_date" validate:"required"`
	EndDate               string   `json:"end_date,omitempty"`
	Description           string   `json:"description,omitempty"`
	Objective             string   `json:"objective,omitempty"`
	Projects              []string `json:"projects,omitempty"`
	IsPublic              bool     `json:"is_public,omitempty"`
	Facilities            []string `json:"facilities,omitempty"`
	Organisations         []string `json:"organisations,omitempty"`
	ScientificSupervisors []string `json:"scientific_supervisors,omitempty"`
	TechnicalSupervisors  []string `json:"technical_supervisors,omitempty"`
	Groups                []string `json:"groups,omitempty"`
}
