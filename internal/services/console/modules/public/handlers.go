package public

import (
	"net/http"
	"strings"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/sessioncookie"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

const maxLoginFormBytes = 16 << 10

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase("", deps), service: s}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if id, ok := sessioncookie.Read(r); ok {
		if home := h.service.currentHome(r.Context(), id); home != "" {
			httpx.WriteRedirect(w, r, home)
			return
		}
	}
	h.renderLogin(w, r, http.StatusOK, templates.LoginView{})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginFormBytes)
	if err := r.ParseForm(); err != nil {
		loc, _ := h.PageLocalizer(r)
		h.renderLogin(w, r, http.StatusBadRequest, templates.LoginView{Error: templates.T(loc, "login.error.invalid_form")})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	outcome, err := h.service.login(r.Context(), email, password)
	if err != nil {
		loc, _ := h.PageLocalizer(r)
		if apperrors.Is(err, apperrors.KindForbidden) {
			sessioncookie.Clear(w, r, h.Policy())
		}
		status := apperrors.HTTPStatus(err)
		h.renderLogin(w, r, status, templates.LoginView{
			Email: email,
			Error: weberror.FallbackMessage(loc, err, "login.error.failed"),
		})
		return
	}
	sessioncookie.Write(w, r, outcome.SessionID, h.service.ttl(), h.Policy())
	httpx.WriteRedirectStatus(w, r, outcome.Home, http.StatusSeeOther)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if id, ok := sessioncookie.Read(r); ok {
		h.service.logout(r.Context(), id)
	}
	sessioncookie.Clear(w, r, h.Policy())
	httpx.NoStore(w)
	flash.Write(w, r, flash.Notice{Kind: flash.KindInfo, Key: "logout.notice"}, h.Policy())
	httpx.WriteRedirectStatus(w, r, routepath.Login, http.StatusSeeOther)
}

// handleUnknown sends every unmatched root path to login.
func (h handlers) handleUnknown(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view templates.LoginView) {
	loc, _ := h.PageLocalizer(r)
	httpx.NoStore(w)
	h.WritePage(w, r, templates.T(loc, "login.page_title"), status, templates.LoginPage(view, loc))
}
