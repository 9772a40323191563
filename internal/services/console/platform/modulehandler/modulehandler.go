// Package modulehandler provides a composable base for console module handlers.
//
// Guarded modules share request localization, page rendering, flash
// redirects and error handling. Modules embed Base rather than duplicating
// that scaffold.
package modulehandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/pagerender"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// Base carries the shared request-scoped helpers used by module handlers.
type Base struct {
	area string
	deps module.Dependencies
}

// NewBase builds a handler base for area.
func NewBase(area string, deps module.Dependencies) Base {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return Base{area: area, deps: deps}
}

// NewTestBase builds a handler base with no deny hook, metrics or
// forwarded-proto trust.
func NewTestBase(area string) Base {
	return NewBase(area, module.Dependencies{})
}

// Area returns the console area the handler serves.
func (b Base) Area() string {
	return b.area
}

// Policy returns the request scheme policy.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.deps.Policy
}

// Logger returns the module logger.
func (b Base) Logger() *log.Logger {
	if b.deps.Logger == nil {
		return log.Default()
	}
	return b.deps.Logger
}

// Metrics returns the shared metrics, which may be nil.
func (b Base) Metrics() *observability.Metrics {
	return b.deps.Metrics
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(r *http.Request) (templates.Localizer, string) {
	return weberror.Localizer(r)
}

// WritePage renders a full module page (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b.deps.Policy, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Area:       b.area,
		Fragment:   fragment,
	}); err != nil {
		b.Logger().Printf("render page failed path=%s err=%v", r.URL.Path, err)
	}
}

// WriteError renders a localized module error response. A backend token
// rejection fails the session closed instead.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if b.DenyIfUnauthorized(w, r, err) {
		return
	}
	weberror.WriteModuleError(w, r, err, b.deps.Policy)
}

// WriteNotFound renders a 404 error page within the console shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps.Policy)
}

// DenyIfUnauthorized ends the session when err says the backend rejected
// its token. It reports whether the response was written.
func (b Base) DenyIfUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.Is(err, apperrors.KindUnauthorized) {
		return false
	}
	if b.deps.Deny != nil {
		b.deps.Deny(w, r)
	} else {
		weberror.WriteModuleError(w, r, err, b.deps.Policy)
	}
	return true
}

// RedirectWithNotice stores notice for the next page and redirects.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flash.Notice) {
	flash.Write(w, r, notice, b.deps.Policy)
	httpx.WriteRedirect(w, r, location)
}
