// Package dashboard serves the staff and admin landing pages.
package dashboard

import (
	"fmt"
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/pagerender"
)

// Module provides one area's landing page.
type Module struct {
	area string
	deps module.Dependencies
}

// New returns a dashboard module for area (templates.AreaStaff or
// templates.AreaAdmin).
func New(area string, deps module.Dependencies) Module {
	return Module{area: area, deps: deps}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return "dashboard." + m.area }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	if len(cardsFor(m.area)) == 0 {
		return module.Mount{}, fmt.Errorf("dashboard: unknown area %q", m.area)
	}
	home := pagerender.HomeFor(m.area)
	mux := http.NewServeMux()
	registerRoutes(mux, home, newHandlers(m.area, m.deps))
	return module.Mount{Prefix: home + "/", Handler: mux}, nil
}

var _ module.Module = Module{}
