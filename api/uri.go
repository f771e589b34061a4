package api

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateURI mints a client-side URI for a new resource of the given kind
// (e.g. "variable", "scientificobject"). The remote service accepts
// pre-assigned URIs on creation; callers that need the URI before the create
// round-trip use this.
func GenerateURI(kind string) string {
	return fmt.Sprintf("opensilex:id/%s/%s", kind, uuid.New().String())
}
