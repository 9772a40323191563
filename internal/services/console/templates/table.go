package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

// CellKind selects how a table cell renders.
type CellKind int

const (
	CellText CellKind = iota
	CellLink
	CellStatus
	CellBadge
	CellNumber
)

// Cell is one table cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Href   string
	Status docreview.Status
}

// TextCell is a plain cell.
func TextCell(text string) Cell { return Cell{Kind: CellText, Text: text} }

// LinkCell links text to href.
func LinkCell(text string, href string) Cell { return Cell{Kind: CellLink, Text: text, Href: href} }

// StatusCell renders a document status badge.
func StatusCell(status docreview.Status) Cell { return Cell{Kind: CellStatus, Status: status} }

// BadgeCell renders a free-form status badge.
func BadgeCell(text string) Cell { return Cell{Kind: CellBadge, Text: text} }

// NumberCell right-aligns text.
func NumberCell(text string) Cell { return Cell{Kind: CellNumber, Text: text} }

// Row is one table row.
type Row struct {
	Cells     []Cell
	Selected  bool
	Highlight bool
}

// TableView is a uniform data table.
type TableView struct {
	Columns []string
	Rows    []Row
}

// PagerView links to neighbouring pages.
type PagerView struct {
	Label    string
	PrevHref string
	NextHref string
}

// Option is one select entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FilterView is the search and sort form above a listing.
type FilterView struct {
	Action     string
	Search     string
	SortName   string
	SortOpts   []Option
	OrderName  string
	OrderOpts  []Option
	HiddenName string
	HiddenVal  string
}

// Table renders view, or empty when there are no rows.
func Table(view TableView, empty string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.table(view, empty, loc)
	})
}

func (h *htmlWriter) table(view TableView, empty string, loc Localizer) {
	if len(view.Rows) == 0 {
		h.element("p", empty, "class", "empty-state")
		return
	}
	h.raw(`<div class="table-wrap"><table class="table"><thead><tr>`)
	for _, column := range view.Columns {
		h.element("th", column, "scope", "col")
	}
	h.raw("</tr></thead><tbody>")
	for _, row := range view.Rows {
		class := ""
		switch {
		case row.Selected:
			class = "selected"
		case row.Highlight:
			class = "highlight"
		}
		if class != "" {
			h.open("tr", "class", class)
		} else {
			h.raw("<tr>")
		}
		for _, cell := range row.Cells {
			h.cell(cell, loc)
		}
		h.raw("</tr>")
	}
	h.raw("</tbody></table></div>")
}

func (h *htmlWriter) cell(cell Cell, loc Localizer) {
	switch cell.Kind {
	case CellLink:
		h.raw("<td>")
		if cell.Href == "" {
			h.text(OrNA(loc, cell.Text))
		} else {
			h.element("a", cell.Text, "href", cell.Href)
		}
		h.raw("</td>")
	case CellStatus:
		h.raw("<td>")
		h.statusBadge(loc, cell.Status)
		h.raw("</td>")
	case CellBadge:
		h.raw("<td>")
		h.accountBadge(loc, cell.Text)
		h.raw("</td>")
	case CellNumber:
		h.element("td", OrNA(loc, cell.Text), "class", "num")
	default:
		h.element("td", OrNA(loc, cell.Text))
	}
}

func (h *htmlWriter) pager(view PagerView, loc Localizer) {
	if view.PrevHref == "" && view.NextHref == "" {
		if view.Label != "" {
			h.element("p", view.Label, "class", "pager muted")
		}
		return
	}
	h.raw(`<nav class="pager">`)
	if view.PrevHref != "" {
		h.element("a", T(loc, "pager.previous"), "class", "btn btn-link", "href", view.PrevHref, "rel", "prev")
	}
	h.element("span", view.Label)
	if view.NextHref != "" {
		h.element("a", T(loc, "pager.next"), "class", "btn btn-link", "href", view.NextHref, "rel", "next")
	}
	h.raw("</nav>")
}

func (h *htmlWriter) filter(view FilterView, loc Localizer) {
	if view.Action == "" {
		return
	}
	h.open("form", "method", "get", "action", view.Action, "class", "filter-bar")
	if view.HiddenName != "" && view.HiddenVal != "" {
		h.hidden(view.HiddenName, view.HiddenVal)
	}
	h.open("input", "type", "search", "name", "search", "value", view.Search, "placeholder", T(loc, "filter.search"), "aria-label", T(loc, "filter.search"))
	h.selectBox(view.SortName, T(loc, "filter.sort_by"), view.SortOpts)
	h.selectBox(view.OrderName, T(loc, "filter.order"), view.OrderOpts)
	h.element("button", T(loc, "filter.apply"), "type", "submit", "class", "btn")
	h.close("form")
}

func (h *htmlWriter) selectBox(name string, label string, options []Option) {
	if name == "" || len(options) == 0 {
		return
	}
	h.open("select", "name", name, "aria-label", label)
	for _, option := range options {
		if option.Selected {
			h.open("option", "value", option.Value, "selected", "selected")
		} else {
			h.open("option", "value", option.Value)
		}
		h.text(option.Label)
		h.close("option")
	}
	h.close("select")
}

// NewPager builds pager links for page number. hrefFor returns the link
// to another page.
func NewPager(loc Localizer, number int, totalPages int, hasPrev bool, hasNext bool, hrefFor func(page int) string) PagerView {
	if number < 1 {
		number = 1
	}
	view := PagerView{Label: T(loc, "pager.label_open", number)}
	if totalPages > 0 {
		view.Label = T(loc, "pager.label", number, totalPages)
	}
	if hrefFor == nil {
		return view
	}
	if hasPrev && number > 1 {
		view.PrevHref = hrefFor(number - 1)
	}
	if hasNext {
		view.NextHref = hrefFor(number + 1)
	}
	return view
}
