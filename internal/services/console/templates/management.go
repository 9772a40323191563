package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

// QueueView is a document list with its load state.
type QueueView struct {
	Title    string
	Subtitle string
	State    docreview.QueueState
	Error    string
	Empty    string
	Table    TableView
	// Aggregate is the owner's overall document status.
	Aggregate docreview.Status
}

// ManagementView is a searchable owner list with the selected owner's
// documents beside it. The users and vehicles pages share it.
type ManagementView struct {
	Heading   string
	Subtitle  string
	Filter    FilterView
	ListState docreview.QueueState
	ListError string
	ListEmpty string
	List      TableView
	Pager     PagerView
	// Selected is nil when no owner is selected.
	Selected *QueueView
}

// ManagementPage renders an owner list with a document queue.
func ManagementPage(view ManagementView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.pageHeading(view.Heading, view.Subtitle)
		h.filter(view.Filter, loc)
		h.raw(`<div class="split">`)
		h.raw(`<section class="panel list-panel">`)
		switch view.ListState {
		case docreview.QueueStateError:
			h.element("div", view.ListError, "class", "alert alert-error", "role", "alert")
		case docreview.QueueStateEmpty:
			h.element("p", view.ListEmpty, "class", "empty-state")
		default:
			h.table(view.List, view.ListEmpty, loc)
			h.pager(view.Pager, loc)
		}
		h.raw("</section>")
		if view.Selected != nil {
			h.queue(*view.Selected, loc)
		}
		h.raw("</div>")
	})
}

func (h *htmlWriter) queue(view QueueView, loc Localizer) {
	h.raw(`<section class="panel queue-panel">`)
	h.raw(`<div class="panel-heading">`)
	h.element("h2", view.Title)
	if view.Aggregate != "" {
		h.statusBadge(loc, view.Aggregate)
	}
	h.raw("</div>")
	if view.Subtitle != "" {
		h.element("p", view.Subtitle, "class", "muted")
	}
	switch view.State {
	case docreview.QueueStateError:
		h.element("div", view.Error, "class", "alert alert-error", "role", "alert")
	case docreview.QueueStateEmpty:
		h.element("p", view.Empty, "class", "empty-state")
	default:
		h.table(view.Table, view.Empty, loc)
	}
	h.raw("</section>")
}
