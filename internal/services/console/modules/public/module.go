// Package public serves the unauthenticated console routes: login, logout
// and the catch-all redirect to login.
package public

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// Module provides public routes.
type Module struct {
	sessions Sessions
	deps     module.Dependencies
}

// New returns a public module.
func New(sessions Sessions, deps module.Dependencies) Module {
	return Module{sessions: sessions, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Healthy reports whether login can reach a session service.
func (m Module) Healthy() bool { return m.sessions != nil }

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.sessions), m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
