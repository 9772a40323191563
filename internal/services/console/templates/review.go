package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
)

// ReviewForm names the decision form fields for one document kind.
type ReviewForm struct {
	Action      string
	IDField     string
	ReasonField string
}

// ReviewView is the review detail page state.
type ReviewView struct {
	Heading  string
	BackHref string

	// Document is nil when the detail could not be loaded; LoadError then
	// explains why.
	Document  *docreview.Document
	LoadError string

	// Error is an inline submission failure.
	Error string
	// Submitting is true while another decision for this document is in
	// flight.
	Submitting bool
	// RejectOpen reveals the reason field.
	RejectOpen bool
	// Reason is the typed rejection reason, kept across failed submits.
	Reason     string
	RejectHref string
	CancelHref string
	Form       ReviewForm
}

// CanDecide reports whether decision controls are enabled.
func (v ReviewView) CanDecide() bool {
	return v.Document != nil && docreview.CanReview(*v.Document, v.Submitting)
}

// ReviewPage renders a document with its images, analysis and decision controls.
func ReviewPage(view ReviewView, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="page-heading">`)
		h.element("h1", view.Heading)
		if view.BackHref != "" {
			h.element("a", T(loc, "review.back"), "class", "btn btn-link", "href", view.BackHref)
		}
		h.raw("</div>")

		if view.Document == nil {
			message := view.LoadError
			if message == "" {
				message = T(loc, "review.error.load")
			}
			h.element("div", message, "class", "alert alert-error", "role", "alert")
			return
		}
		doc := *view.Document

		h.raw(`<div class="review-grid">`)
		h.raw(`<section class="panel">`)
		h.element("h2", T(loc, "review.section.document"))
		h.raw(`<dl class="facts">`)
		h.fact(T(loc, "review.field.id"), doc.ID)
		h.fact(T(loc, "review.field.owner"), OrNA(loc, doc.OwnerName))
		if doc.OwnerEmail != "" {
			h.fact(T(loc, "review.field.email"), doc.OwnerEmail)
		}
		h.fact(T(loc, "review.field.type"), OrNA(loc, doc.DocumentType))
		h.raw("<dt>")
		h.text(T(loc, "review.field.status"))
		h.raw("</dt><dd>")
		h.statusBadge(loc, doc.Status)
		h.raw("</dd>")
		if doc.Status == docreview.StatusRejected && doc.RejectionReason != "" {
			h.fact(T(loc, "review.field.rejection_reason"), doc.RejectionReason)
		}
		h.fact(T(loc, "review.field.created_at"), FormatDateTime(loc, doc.CreatedAt))
		h.fact(T(loc, "review.field.updated_at"), FormatDateTime(loc, doc.LastUpdatedAt))
		if doc.ExpirationDate != "" {
			h.fact(T(loc, "review.field.expiration"), FormatDate(loc, doc.ExpirationDate))
		}
		if doc.AdminNotes != "" {
			h.fact(T(loc, "review.field.admin_notes"), doc.AdminNotes)
		}
		h.raw("</dl></section>")

		h.analysis(doc.Analysis, loc)
		h.raw("</div>")

		h.images(doc.Images(), loc)
		h.decision(view, doc, loc)
	})
}

func (h *htmlWriter) fact(label string, value string) {
	h.element("dt", label)
	h.element("dd", value)
}

func (h *htmlWriter) analysis(result *docreview.AnalysisResult, loc Localizer) {
	if result == nil {
		return
	}
	h.raw(`<section class="panel analysis">`)
	h.element("h2", T(loc, "review.section.analysis"))
	h.element("p", T(loc, "review.analysis.advisory"), "class", "muted")
	h.raw(`<dl class="facts">`)
	h.fact(T(loc, "review.analysis.ocr_name"), OrNA(loc, result.OCRName))
	h.fact(T(loc, "review.analysis.ocr_id"), OrNA(loc, result.OCRID))
	h.fact(T(loc, "review.analysis.ocr_birthday"), OrNA(loc, result.OCRBirthDay))
	h.fact(T(loc, "review.analysis.document_type"), OrNA(loc, result.DocumentType))
	valid := T(loc, notAvailableKey)
	if result.IsValidDocument != nil {
		valid = T(loc, "common.no")
		if *result.IsValidDocument {
			valid = T(loc, "common.yes")
		}
	}
	h.fact(T(loc, "review.analysis.valid"), valid)
	score := T(loc, notAvailableKey)
	if result.OverallScore != nil {
		score = strconv.FormatFloat(*result.OverallScore, 'f', 2, 64)
	}
	h.fact(T(loc, "review.analysis.score"), score)
	h.raw("</dl>")

	flags := []struct {
		set bool
		key string
	}{
		{result.HasTampering, "review.analysis.flag.tampering"},
		{result.IsExpired, "review.analysis.flag.expired"},
		{result.IsCornerCut, "review.analysis.flag.corner_cut"},
		{result.IsScreenRecapture, "review.analysis.flag.recapture"},
		{result.DataMismatch, "review.analysis.flag.mismatch"},
	}
	var raised []string
	for _, flag := range flags {
		if flag.set {
			raised = append(raised, T(loc, flag.key))
		}
	}
	warnings := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		if w := strings.TrimSpace(warning); w != "" {
			warnings = append(warnings, w)
		}
	}
	if len(raised) > 0 || len(warnings) > 0 {
		h.raw(`<ul class="warnings">`)
		for _, text := range raised {
			h.element("li", text, "class", "flag")
		}
		for _, text := range warnings {
			h.element("li", text)
		}
		h.raw("</ul>")
	}
	h.raw("</section>")
}

// images renders thumbnails that open a full-screen overlay through a
// :target anchor.
func (h *htmlWriter) images(images []docreview.Image, loc Localizer) {
	h.raw(`<section class="panel">`)
	h.element("h2", T(loc, "review.section.images"))
	if len(images) == 0 {
		h.element("p", T(loc, "review.images.none"), "class", "muted")
		h.raw("</section>")
		return
	}
	h.raw(`<div class="thumbs">`)
	for _, image := range images {
		label := T(loc, "review.image."+image.Name)
		h.open("a", "class", "thumb", "href", "#image-"+image.Name)
		h.open("img", "src", image.URL, "alt", label, "loading", "lazy")
		h.element("span", label)
		h.close("a")
	}
	h.raw("</div>")
	for _, image := range images {
		label := T(loc, "review.image."+image.Name)
		h.open("div", "id", "image-"+image.Name, "class", "lightbox")
		h.element("a", "×", "class", "lightbox-close", "href", "#", "aria-label", T(loc, "review.image.close"))
		h.open("img", "src", image.URL, "alt", label)
		h.close("div")
	}
	h.raw("</section>")
}

func (h *htmlWriter) decision(view ReviewView, doc docreview.Document, loc Localizer) {
	h.raw(`<section class="panel decision">`)
	h.element("h2", T(loc, "review.section.decision"))
	if view.Error != "" {
		h.element("div", view.Error, "class", "alert alert-error", "role", "alert")
	}
	switch {
	case !doc.Status.IsPending():
		h.element("p", T(loc, "review.notice.not_pending", StatusLabel(loc, doc.Status)), "class", "notice notice-info")
	case view.Submitting:
		h.element("p", T(loc, "review.notice.in_flight"), "class", "notice notice-warning")
	}

	disabled := !view.CanDecide()
	h.open("div", "class", "decision-actions")
	h.open("form", "method", "post", "action", view.Form.Action, "class", "inline-form")
	h.hidden("decision", "approve")
	h.hidden(view.Form.IDField, doc.ID)
	h.button(T(loc, "review.approve"), "btn btn-approve", disabled)
	h.close("form")
	if !view.RejectOpen {
		if disabled {
			h.button(T(loc, "review.reject"), "btn btn-reject", true)
		} else {
			h.element("a", T(loc, "review.reject"), "class", "btn btn-reject", "href", view.RejectHref)
		}
	}
	h.close("div")

	if view.RejectOpen {
		h.open("form", "method", "post", "action", view.Form.Action, "class", "form reject-form")
		h.hidden("decision", "reject")
		h.hidden(view.Form.IDField, doc.ID)
		h.element("label", T(loc, "review.reason.label"), "for", "reason")
		h.open("textarea", "id", "reason", "name", view.Form.ReasonField, "rows", "3", "required", "required", "placeholder", T(loc, "review.reason.placeholder"))
		h.text(view.Reason)
		h.close("textarea")
		h.button(T(loc, "review.reject.confirm"), "btn btn-reject", disabled)
		h.element("a", T(loc, "common.cancel"), "class", "btn btn-link", "href", view.CancelHref)
		h.close("form")
	}
	h.raw("</section>")
}

func (h *htmlWriter) hidden(name string, value string) {
	h.open("input", "type", "hidden", "name", name, "value", value)
}

func (h *htmlWriter) button(label string, class string, disabled bool) {
	if disabled {
		h.open("button", "type", "submit", "class", class, "disabled", "disabled")
	} else {
		h.open("button", "type", "submit", "class", class)
	}
	h.text(label)
	h.close("button")
}
