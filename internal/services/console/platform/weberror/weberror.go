// Package weberror renders shared console error responses.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/pagerender"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// localized returns the catalog text for key, or "" when the catalog has
// no entry (the printer echoes unknown keys).
func localized(loc templates.Localizer, key string) string {
	key = strings.TrimSpace(key)
	if loc == nil || key == "" {
		return ""
	}
	text := strings.TrimSpace(loc.Sprintf(key))
	if text == key {
		return ""
	}
	return text
}

// PublicMessage resolves a user-safe message: a localized key first, then a
// backend message verbatim, then the HTTP status text.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if text := localized(loc, apperrors.LocalizationKey(err)); text != "" {
		return text
	}
	if text := BackendMessage(err); text != "" {
		return text
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// FallbackMessage is PublicMessage with a page-specific fallback in place
// of the HTTP status text.
func FallbackMessage(loc templates.Localizer, err error, fallbackKey string) string {
	if err == nil {
		return ""
	}
	if text := localized(loc, apperrors.LocalizationKey(err)); text != "" {
		return text
	}
	if text := BackendMessage(err); text != "" {
		return text
	}
	return templates.T(loc, fallbackKey)
}

// BackendMessage returns the server-supplied text of a backend failure.
// Transport failures never carry one.
func BackendMessage(err error) string {
	if apperrors.BackendCode(err) == 0 && !apperrors.Is(err, apperrors.KindRejected) {
		return ""
	}
	return apperrors.Message(err)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := Localizer(r)
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	home := pagerender.HomeFor(pagerender.AreaForPath(path))
	err := pagerender.WriteModulePage(w, r, policy, pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, home, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, policy)
		return
	}
	loc, _ := Localizer(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
