// Package module defines the feature contract used by console composition.
package module

import (
	"log"
	"net/http"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
)

// Dependencies are the shared runtime collaborators every module receives.
type Dependencies struct {
	Policy requestmeta.SchemePolicy
	// Deny fails a request closed: it ends the session and redirects to
	// login. Modules call it when the backend rejects the session token.
	Deny    func(http.ResponseWriter, *http.Request)
	Metrics *observability.Metrics
	Logger  *log.Logger
}

// Mount describes a module route mount. A prefix ending in "/" owns its
// subtree; any other prefix is an exact path.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by console composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
