package review

import (
	"net/http"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/modulehandler"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/weberror"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

const maxDecisionFormBytes = 16 << 10

type handlers struct {
	modulehandler.Base
	config  KindConfig
	service service
}

func newHandlers(config KindConfig, s service, deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(templates.AreaStaff, deps), config: config, service: s}
}

// handleQueue sends the bare prefix to the list the documents are queued on.
func (h handlers) handleQueue(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, h.config.QueuePath)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	documentID := strings.TrimSpace(r.PathValue("documentID"))
	view := h.baseView(r, documentID)
	loc, _ := h.PageLocalizer(r)

	doc, err := h.service.load(r.Context(), documentID)
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("review detail failed kind=%s id=%s err=%v", h.config.Kind, documentID, err)
		view.LoadError = loadErrorMessage(loc, err)
		h.render(w, r, apperrors.HTTPStatus(err), view)
		return
	}
	view.Document = &doc
	view.BackHref = h.config.ownerHref(doc.OwnerID)
	view.RejectOpen = strings.EqualFold(r.URL.Query().Get("decision"), decisionReject)
	h.render(w, r, http.StatusOK, view)
}

func (h handlers) handleDecision(w http.ResponseWriter, r *http.Request) {
	documentID := strings.TrimSpace(r.PathValue("documentID"))
	loc, _ := h.PageLocalizer(r)
	view := h.baseView(r, documentID)

	r.Body = http.MaxBytesReader(w, r.Body, maxDecisionFormBytes)
	if err := r.ParseForm(); err != nil {
		view.Error = templates.T(loc, "review.error.invalid_form")
		h.renderAfterFailure(w, r, http.StatusBadRequest, view, nil)
		return
	}
	reason := r.PostFormValue(h.config.ReasonField)
	view.Reason = reason

	approved, err := parseDecision(r.PostFormValue("decision"))
	if err == nil {
		if formID := strings.TrimSpace(r.PostFormValue(h.config.IDField)); formID != "" && formID != documentID {
			err = errDocumentMismatch
		}
	}
	if err != nil {
		h.Metrics().ReviewDecision(string(h.config.Kind), approved, outcomeLabel(err))
		view.Error = weberror.FallbackMessage(loc, err, "review.error.failed")
		view.RejectOpen = !approved
		h.renderAfterFailure(w, r, apperrors.HTTPStatus(err), view, nil)
		return
	}
	view.RejectOpen = !approved

	outcome, err := h.service.decide(r.Context(), documentID, approved, reason)
	h.Metrics().ReviewDecision(string(h.config.Kind), approved, outcomeLabel(err))
	if err != nil {
		if h.DenyIfUnauthorized(w, r, err) {
			return
		}
		h.Logger().Printf("review decision failed kind=%s id=%s approved=%t err=%v", h.config.Kind, documentID, approved, err)
		view.Error = decisionErrorMessage(loc, err)
		h.renderAfterFailure(w, r, apperrors.HTTPStatus(err), view, outcome.Document)
		return
	}

	ownerID := ""
	if outcome.Document != nil {
		ownerID = outcome.Document.OwnerID
	}
	httpx.NoStore(w)
	h.RedirectWithNotice(w, r, h.config.ownerHref(ownerID), flash.SuccessText(outcome.Message, "review.notice.submitted"))
}

// renderAfterFailure re-renders the review page after a failed submission,
// keeping the typed reason. doc is reused when the submission already
// fetched it.
func (h handlers) renderAfterFailure(w http.ResponseWriter, r *http.Request, status int, view templates.ReviewView, doc *docreview.Document) {
	if doc == nil {
		loaded, err := h.service.load(r.Context(), strings.TrimSpace(r.PathValue("documentID")))
		if err != nil {
			if h.DenyIfUnauthorized(w, r, err) {
				return
			}
			loc, _ := h.PageLocalizer(r)
			view.LoadError = loadErrorMessage(loc, err)
		} else {
			doc = &loaded
		}
	}
	if doc != nil {
		view.Document = doc
		view.BackHref = h.config.ownerHref(doc.OwnerID)
	}
	h.render(w, r, status, view)
}

func (h handlers) baseView(r *http.Request, documentID string) templates.ReviewView {
	loc, _ := h.PageLocalizer(r)
	detail := h.config.DetailPath(documentID)
	return templates.ReviewView{
		Heading:    templates.T(loc, h.config.HeadingKey),
		BackHref:   h.config.QueuePath,
		Submitting: h.service.submitting(documentID),
		RejectHref: detail + "?decision=" + decisionReject,
		CancelHref: detail,
		Form: templates.ReviewForm{
			Action:      h.config.DecisionPath(documentID),
			IDField:     h.config.IDField,
			ReasonField: h.config.ReasonField,
		},
	}
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, view templates.ReviewView) {
	httpx.NoStore(w)
	loc, _ := h.PageLocalizer(r)
	h.WritePage(w, r, view.Heading, status, templates.ReviewPage(view, loc))
}

// decisionErrorMessage picks the inline text for a failed submission. A
// backend message is shown as sent; transport failures get a generic line.
func decisionErrorMessage(loc templates.Localizer, err error) string {
	if apperrors.Is(err, apperrors.KindUnavailable) && weberror.BackendMessage(err) == "" {
		return templates.T(loc, "review.error.submit")
	}
	return weberror.FallbackMessage(loc, err, "review.error.failed")
}

func loadErrorMessage(loc templates.Localizer, err error) string {
	if text := weberror.BackendMessage(err); text != "" {
		return text
	}
	return templates.T(loc, "review.error.load")
}

