// Package vehicles serves the staff vehicles page: a searchable vehicle
// list with the selected vehicle's documents.
package vehicles

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// Module provides the vehicles page.
type Module struct {
	gateway Gateway
	deps    module.Dependencies
}

// New returns a vehicles module.
func New(gateway Gateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "vehicles" }

// Healthy reports whether a backend gateway is configured.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires vehicles route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.StaffVehicles, h.handleIndex)
	return module.Mount{Prefix: routepath.StaffVehicles, Handler: mux}, nil
}

var _ module.Module = Module{}
