// Package users serves the staff users page: a searchable account list
// with each account's document status and the selected account's
// identity documents.
package users

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// Module provides the users page.
type Module struct {
	gateway Gateway
	deps    module.Dependencies
}

// New returns a users module.
func New(gateway Gateway, deps module.Dependencies) Module {
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "users" }

// Healthy reports whether a backend gateway is configured.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires users route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.deps))
	return module.Mount{Prefix: routepath.StaffUsers, Handler: mux}, nil
}

var _ module.Module = Module{}
