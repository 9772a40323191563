package dashboard

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(area string, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(area, deps)}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := dashboardView(h.Area(), loc)
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.DashboardPage(view))
}
