package opensilex

import (
	"github.com/opensilex/go-client/api"
	"github.com/opensilex/go-client/util"
)

type Pagination = api.Pagination
type ProjectSearchParams = api.ProjectSearchParams
type ProjectCreationData = api.ProjectCreationData
type ExperimentSearchParams = api.ExperimentSearchParams
type ExperimentCreationData = api.ExperimentCreationData
type ScientificObjectSearchParams = api.ScientificObjectSearchParams
type ScientificObjectCreationData = api.ScientificObjectCreationData
type VariableSearchParams = api.VariableSearchParams
type VariableCreationData = api.VariableCreationData
type ConceptSearchParams = api.ConceptSearchParams
type ConceptCreationData = api.ConceptCreationData
type DataSearchParams = api.DataSearchParams
type DataPoint = api.DataPoint
type Provenance = api.Provenance
type DeviceSearchParams = api.DeviceSearchParams
type DeviceCreationData = api.DeviceCreationData
type EventSearchParams = api.EventSearchParams
type EventCreationData = api.EventCreationData
type OrganizationCreationData = api.OrganizationCreationData
type SiteCreationData = api.SiteCreationData
type FacilityCreationData = api.FacilityCreationData
type PersonSearchParams = api.PersonSearchParams
type PersonCreationData = api.PersonCreationData
type Logger = util.Logger
type DiscardLogger = util.DiscardLogger

func SetLogger(log Logger) { util.SetLogger(log) }
