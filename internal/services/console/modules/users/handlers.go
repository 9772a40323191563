package users

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
	data := h.service.load(r.Context(), params)
	for _, err := range []error{data.ListErr, data.DocumentsErr} {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
	}
	if data.ListErr != nil {
		h.Logger().Printf("users list failed err=%v", data.ListErr)
	}
	if data.DocumentsErr != nil {
		h.Logger().Printf("user documents failed user=%s err=%v", data.Selected, data.DocumentsErr)
	}

	loc, _ := h.PageLocalizer(r)
	view := managementView(loc, params, data)
	h.WritePage(w, r, view.Heading, http.StatusOK, templates.ManagementPage(view, loc))
}
