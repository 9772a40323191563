package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorPageTitle returns the browser title for the app error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "error.page_title_not_found")
	}
	return T(loc, "error.page_title_server_error")
}

// ErrorState renders the app error page body.
func ErrorState(statusCode int, homeHref string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		heading, body := "error.title_server_error", "error.message_server_error"
		if normalizeErrorStatus(statusCode) == http.StatusNotFound {
			heading, body = "error.title_not_found", "error.message_not_found"
		}
		h.raw(`<section class="error-state">`)
		h.element("h1", T(loc, heading))
		h.element("p", T(loc, body))
		if homeHref != "" {
			h.element("a", T(loc, "error.action_back"), "class", "btn", "href", homeHref)
		}
		h.raw("</section>")
	})
}

// InlineError renders a failed fetch inside an otherwise working page.
func InlineError(message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.element("div", message, "class", "alert alert-error", "role", "alert")
	})
}
