package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// LoginView is the login form state.
type LoginView struct {
	Email string
	Error string
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="login-card">`)
		h.element("h1", T(loc, "login.title"))
		h.element("p", T(loc, "login.subtitle"), "class", "muted")
		if view.Error != "" {
			h.element("div", view.Error, "class", "alert alert-error", "role", "alert")
		}
		h.open("form", "method", "post", "action", routepath.Login, "class", "form")

		h.element("label", T(loc, "login.email"), "for", "email")
		h.open("input", "id", "email", "name", "email", "type", "email", "autocomplete", "username", "required", "required", "value", view.Email)

		h.element("label", T(loc, "login.password"), "for", "password")
		h.open("input", "id", "password", "name", "password", "type", "password", "autocomplete", "current-password", "required", "required")

		h.element("button", T(loc, "login.submit"), "type", "submit", "class", "btn btn-primary")
		h.close("form")
		h.raw("</section>")
	})
}
