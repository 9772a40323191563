// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/guard"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	consolei18n "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/i18n"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	// Area selects the navigation; empty derives it from the path.
	Area     string
	Fragment templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page inside the console shell. A pending
// flash notice is consumed and shown above the fragment.
func WriteModulePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := consolei18n.ResolveLocalizer(w, r)
	var notice *templates.NoticeView
	if pending, ok := flash.ReadAndClear(w, r, policy); ok {
		notice = NoticeView(loc, pending)
	}
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		return templates.MainContent(notice).Render(templ.WithChildren(ctx, fragment), w)
	}

	area := page.Area
	if area == "" {
		area = AreaForPath(requestPath(r))
	}
	view := templates.LayoutView{
		Title:       page.Title,
		Lang:        lang,
		Area:        area,
		CurrentPath: requestPath(r),
		Notice:      notice,
	}
	if r != nil && r.URL != nil {
		view.RawQuery = r.URL.RawQuery
	}
	if principal, ok := guard.PrincipalFrom(ctx); ok {
		view.Role = principal.Role
	}
	w.WriteHeader(statusCode)
	layout := templates.Layout(view, LanguageOptions(view.CurrentPath, view.RawQuery, lang, loc), loc)
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}

// NoticeView localizes a flash notice.
func NoticeView(loc templates.Localizer, notice flash.Notice) *templates.NoticeView {
	text := notice.Message
	if notice.Key != "" {
		text = templates.T(loc, notice.Key)
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &templates.NoticeView{Kind: string(notice.Kind), Text: text}
}

// LanguageOptions builds the language switcher for the current URL.
func LanguageOptions(path string, rawQuery string, active string, loc templates.Localizer) []templates.LanguageOption {
	supported := consolei18n.Supported()
	options := make([]templates.LanguageOption, 0, len(supported))
	for _, tag := range supported {
		code := tag.String()
		options = append(options, templates.LanguageOption{
			Tag:    code,
			Label:  templates.T(loc, "lang."+code),
			Href:   consolei18n.LanguageURL(path, rawQuery, code),
			Active: code == active,
		})
	}
	return options
}

// AreaForPath returns the console area owning path.
func AreaForPath(path string) string {
	switch {
	case path == routepath.StaffPrefix || strings.HasPrefix(path, routepath.StaffPrefix+"/"):
		return templates.AreaStaff
	case path == routepath.AdminPrefix || strings.HasPrefix(path, routepath.AdminPrefix+"/"):
		return templates.AreaAdmin
	default:
		return ""
	}
}

// HomeFor returns the landing page of area.
func HomeFor(area string) string {
	switch area {
	case templates.AreaStaff:
		return routepath.StaffPrefix
	case templates.AreaAdmin:
		return routepath.AdminPrefix
	default:
		return routepath.Login
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
