package templates

import (
	"context"

	"github.com/a-h/templ"
)

// DashboardCard links to one console section.
type DashboardCard struct {
	Title       string
	Description string
	Href        string
}

// DashboardView is a role landing page.
type DashboardView struct {
	Heading  string
	Subtitle string
	Cards    []DashboardCard
}

// DashboardPage renders the navigation cards of a role landing page.
func DashboardPage(view DashboardView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.pageHeading(view.Heading, view.Subtitle)
		h.raw(`<div class="card-grid">`)
		for _, card := range view.Cards {
			h.open("a", "class", "card", "href", card.Href)
			h.element("h2", card.Title)
			h.element("p", card.Description, "class", "muted")
			h.close("a")
		}
		h.raw("</div>")
	})
}
