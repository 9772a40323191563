package vehicles

import (
	"net/http"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(templates.AreaStaff, deps), service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	params := querySpec.Parse(r.URL.Query())
	page, err := h.service.list(r.Context(), params)
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("vehicles list failed err=%v", err)
	}
	loc, _ := h.PageLocalizer(r)
	view := managementView(loc, params, page, err)
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ManagementPage(view, loc))
}
