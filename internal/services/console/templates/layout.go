package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

// Area names the role-gated section a page belongs to.
const (
	AreaStaff = "staff"
	AreaAdmin = "admin"
)

// NoticeView is a one-time message shown above page content.
type NoticeView struct {
	Kind string
	Text string
}

// LayoutView carries the shell data for full-page renders.
type LayoutView struct {
	Title       string
	Lang        string
	Area        string
	Role        string
	CurrentPath string
	RawQuery    string
	Notice      *NoticeView
}

// NavItem is one navigation link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Href   string
	Active bool
}

// NavItems returns the navigation for area with the current path marked.
func NavItems(area string, currentPath string, loc Localizer) []NavItem {
	type entry struct {
		key  string
		href string
	}
	var entries []entry
	switch area {
	case AreaStaff:
		entries = []entry{
			{"nav.dashboard", routepath.StaffPrefix},
			{"nav.users", routepath.StaffUsers},
			{"nav.vehicles", routepath.StaffVehicles},
			{"nav.items", routepath.StaffItems},
			{"nav.packages", routepath.StaffPackages},
			{"nav.post_packages", routepath.StaffPostPackages},
			{"nav.contract_templates", routepath.StaffContractTemplates},
		}
	case AreaAdmin:
		entries = []entry{
			{"nav.dashboard", routepath.AdminPrefix},
			{"nav.transactions", routepath.AdminTransactions},
			{"nav.platform_wallet", routepath.AdminPlatformWallet},
		}
	default:
		return nil
	}
	items := make([]NavItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, NavItem{
			Label:  T(loc, e.key),
			Href:   e.href,
			Active: navActive(e.href, currentPath),
		})
	}
	return items
}

func navActive(href string, currentPath string) bool {
	if href == routepath.StaffPrefix || href == routepath.AdminPrefix {
		return currentPath == href || currentPath == href+"/"
	}
	return currentPath == href || strings.HasPrefix(currentPath, href+"/")
}

// Layout renders the console shell around the children in ctx.
func Layout(view LayoutView, languages []LanguageOption, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := strings.TrimSpace(view.Lang)
		if lang == "" {
			lang = "en"
		}
		title := T(loc, "app.name")
		if t := strings.TrimSpace(view.Title); t != "" {
			title = t + " · " + title
		}

		h.raw("<!doctype html>")
		h.open("html", "lang", lang)
		h.raw("<head>", `<meta charset="utf-8">`, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", title)
		h.raw(`<link rel="stylesheet" href="`, routepath.Static, `console.css">`)
		h.raw("</head>")

		bodyClass := "console"
		if view.Area != "" {
			bodyClass += " area-" + view.Area
		}
		h.open("body", "class", bodyClass)
		h.raw(`<header class="topbar">`)
		home := routepath.Login
		switch view.Area {
		case AreaStaff:
			home = routepath.StaffPrefix
		case AreaAdmin:
			home = routepath.AdminPrefix
		}
		h.element("a", T(loc, "app.name"), "class", "brand", "href", home)
		if items := NavItems(view.Area, view.CurrentPath, loc); len(items) > 0 {
			h.raw(`<nav class="nav">`)
			for _, item := range items {
				class := "nav-link"
				if item.Active {
					class += " active"
				}
				h.element("a", item.Label, "class", class, "href", item.Href)
			}
			h.raw("</nav>")
		}
		h.raw(`<div class="topbar-end">`)
		h.languageSwitcher(languages, loc)
		if view.Area != "" {
			if role := strings.TrimSpace(view.Role); role != "" {
				h.element("span", role, "class", "role-chip")
			}
			h.open("form", "method", "post", "action", routepath.Logout, "class", "logout-form")
			h.element("button", T(loc, "nav.logout"), "type", "submit", "class", "btn btn-link")
			h.close("form")
		}
		h.raw("</div></header>")

		h.open("div", "id", "loading", "class", "htmx-indicator", "role", "status")
		h.text(T(loc, "common.loading"))
		h.close("div")

		h.open("main", "id", "main", "class", "main")
		h.notice(view.Notice)
		h.render(ctx, children)
		h.close("main")
		h.raw("</body></html>")
	})
}

// MainContent renders only the page body for HTMX swaps.
func MainContent(notice *NoticeView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		h.notice(notice)
		h.render(ctx, children)
	})
}

func (h *htmlWriter) notice(notice *NoticeView) {
	if notice == nil || strings.TrimSpace(notice.Text) == "" {
		return
	}
	kind := strings.TrimSpace(notice.Kind)
	if kind == "" {
		kind = "info"
	}
	h.element("div", notice.Text, "class", "notice notice-"+kind, "role", "status")
}

func (h *htmlWriter) languageSwitcher(languages []LanguageOption, loc Localizer) {
	if len(languages) < 2 {
		return
	}
	h.open("div", "class", "lang-switch", "aria-label", T(loc, "nav.language"))
	for _, option := range languages {
		class := "lang-option"
		if option.Active {
			class += " active"
		}
		h.element("a", option.Label, "class", class, "href", option.Href, "hreflang", option.Tag)
	}
	h.close("div")
}

// pageHeading renders a page title with an optional subtitle.
func (h *htmlWriter) pageHeading(title string, subtitle string) {
	h.raw(`<div class="page-heading">`)
	h.element("h1", title)
	if strings.TrimSpace(subtitle) != "" {
		h.element("p", subtitle, "class", "muted")
	}
	h.raw("</div>")
}
