// Package catalog serves the read-only staff listings: items, packages,
// post packages and contract templates with their terms.
package catalog

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// Module is one catalog listing mounted at its own path.
type Module struct {
	id       string
	prefix   string
	healthy  bool
	deps     module.Dependencies
	register func(mux *http.ServeMux, base modulehandler.Base)
}

// ID returns a stable module identifier.
func (m Module) ID() string { return "catalog." + m.id }

// Healthy reports whether a backend gateway is configured.
func (m Module) Healthy() bool { return m.healthy }

// Mount wires the listing's route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	m.register(mux, modulehandler.NewBase(templates.AreaStaff, m.deps))
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

var _ module.Module = Module{}
