package docreview

import (
	"strings"

	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

var (
	// ErrDocumentIDRequired is returned for a decision without a target.
	ErrDocumentIDRequired = apperrors.EK(apperrors.KindInvalidInput, "review.error.document_required", "document id is required")
	// ErrReasonRequired is returned when a rejection has a blank reason.
	ErrReasonRequired = apperrors.EK(apperrors.KindInvalidInput, "review.error.reason_required", "rejection reason is required")
	// ErrNotPending is returned when the document already left review.
	ErrNotPending = apperrors.EK(apperrors.KindConflict, "review.error.not_pending", "document is no longer pending review")
	// ErrInFlight is returned while another decision for the same document
	// is being submitted.
	ErrInFlight = apperrors.EK(apperrors.KindConflict, "review.error.in_flight", "a decision for this document is already being submitted")
)

// Decision is a reviewer's verdict on one document.
type Decision struct {
	DocumentID string
	Approved   bool
	// Reason is the trimmed rejection reason; empty on approval.
	Reason string
}

// NewDecision builds and validates a decision. Approval drops any reason.
func NewDecision(documentID string, approved bool, reason string) (Decision, error) {
	d := Decision{
		DocumentID: strings.TrimSpace(documentID),
		Approved:   approved,
	}
	if !approved {
		d.Reason = strings.TrimSpace(reason)
	}
	return d, d.Validate()
}

// Validate enforces the decision invariants.
func (d Decision) Validate() error {
	if strings.TrimSpace(d.DocumentID) == "" {
		return ErrDocumentIDRequired
	}
	if !d.Approved && strings.TrimSpace(d.Reason) == "" {
		return ErrReasonRequired
	}
	return nil
}
