package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Fact is one labelled summary value.
type Fact struct {
	Label string
	Value string
}

// ActionLink is a page-level action button.
type ActionLink struct {
	Label string
	Href  string
}

// ListingView is a fetch-render-paginate table page.
type ListingView struct {
	Heading  string
	Subtitle string
	BackHref string
	Summary  []Fact
	Actions  []ActionLink
	Error    string
	Empty    string
	Table    TableView
	Pager    PagerView
}

// ListingPage renders a uniform listing.
func ListingPage(view ListingView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="page-heading">`)
		h.element("h1", view.Heading)
		if view.Subtitle != "" {
			h.element("p", view.Subtitle, "class", "muted")
		}
		if view.BackHref != "" {
			h.element("a", T(loc, "common.back"), "class", "btn btn-link", "href", view.BackHref)
		}
		for _, action := range view.Actions {
			h.element("a", action.Label, "class", "btn", "href", action.Href)
		}
		h.raw("</div>")

		if len(view.Summary) > 0 {
			h.raw(`<dl class="summary">`)
			for _, fact := range view.Summary {
				h.raw("<div>")
				h.fact(fact.Label, fact.Value)
				h.raw("</div>")
			}
			h.raw("</dl>")
		}

		h.raw(`<section class="panel">`)
		if view.Error != "" {
			h.element("div", view.Error, "class", "alert alert-error", "role", "alert")
		} else {
			h.table(view.Table, view.Empty, loc)
			h.pager(view.Pager, loc)
		}
		h.raw("</section>")
	})
}
