package review

import (
	"context"
	"errors"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

var (
	errUnknownDecision  = apperrors.EK(apperrors.KindInvalidInput, "review.error.decision", "decision must be approve or reject")
	errDocumentMismatch = apperrors.EK(apperrors.KindInvalidInput, "review.error.document_mismatch", "form document does not match the page")
)

const (
	decisionApprove = "approve"
	decisionReject  = "reject"
)

type service struct {
	kind    docreview.Kind
	gateway Gateway
	fence   *docreview.Fence
}

func newService(kind docreview.Kind, gateway Gateway, fence *docreview.Fence) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if fence == nil {
		fence = docreview.NewFence()
	}
	return service{kind: kind, gateway: gateway, fence: fence}
}

func (s service) load(ctx context.Context, documentID string) (docreview.Document, error) {
	return s.gateway.DocumentDetail(ctx, s.kind, documentID)
}

func (s service) submitting(documentID string) bool {
	return s.fence.InFlight(s.kind, strings.TrimSpace(documentID))
}

// parseDecision maps the form's decision verb onto approval.
func parseDecision(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case decisionApprove:
		return true, nil
	case decisionReject:
		return false, nil
	default:
		return false, errUnknownDecision
	}
}

// decisionOutcome is what a submission learned. Document is set whenever
// the pre-submit re-fetch succeeded.
type decisionOutcome struct {
	Decision docreview.Decision
	Document *docreview.Document
	Message  string
}

// decide submits one decision. The document is re-fetched under the fence
// and must still be pending, so a decision is never sent twice.
func (s service) decide(ctx context.Context, documentID string, approved bool, reason string) (decisionOutcome, error) {
	decision, err := docreview.NewDecision(documentID, approved, reason)
	outcome := decisionOutcome{Decision: decision}
	if err != nil {
		return outcome, err
	}
	release, ok := s.fence.Acquire(s.kind, decision.DocumentID)
	if !ok {
		return outcome, docreview.ErrInFlight
	}
	defer release()

	doc, err := s.gateway.DocumentDetail(ctx, s.kind, decision.DocumentID)
	if err != nil {
		return outcome, err
	}
	outcome.Document = &doc
	if !doc.Status.IsPending() {
		return outcome, docreview.ErrNotPending
	}
	message, err := s.gateway.SubmitDecision(ctx, s.kind, decision)
	if err != nil {
		return outcome, err
	}
	outcome.Message = strings.TrimSpace(message)
	return outcome, nil
}

// outcomeLabel classifies a submission for metrics.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, docreview.ErrInFlight):
		return "in_flight"
	case errors.Is(err, docreview.ErrNotPending):
		return "not_pending"
	case apperrors.Is(err, apperrors.KindInvalidInput):
		return "invalid"
	case apperrors.Is(err, apperrors.KindUnauthorized):
		return "unauthorized"
	case apperrors.Is(err, apperrors.KindUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
