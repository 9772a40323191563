package docreview

import "strings"

// Status is a document verification status as reported by the backend.
type Status string

const (
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusActive        Status = "ACTIVE"
	StatusRejected      Status = "REJECTED"
	StatusInactive      Status = "INACTIVE"
	// StatusNone is the aggregate of an owner with no decisive documents.
	StatusNone Status = "NONE"
)

// ParseStatus normalizes a backend status string. Unknown values are kept
// upper-cased so they still render.
func ParseStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsPending reports whether the document still awaits a decision.
func (s Status) IsPending() bool {
	return s == StatusPendingReview
}

// Aggregate derives an owner's document status: pending beats rejected,
// rejected beats active, and anything else is NONE.
func Aggregate(statuses ...Status) Status {
	var rejected, active bool
	for _, status := range statuses {
		switch status {
		case StatusPendingReview:
			return StatusPendingReview
		case StatusRejected:
			rejected = true
		case StatusActive:
			active = true
		}
	}
	switch {
	case rejected:
		return StatusRejected
	case active:
		return StatusActive
	default:
		return StatusNone
	}
}

// AggregateDocuments applies Aggregate to the statuses of docs.
func AggregateDocuments(docs []Document) Status {
	statuses := make([]Status, 0, len(docs))
	for _, doc := range docs {
		statuses = append(statuses, doc.Status)
	}
	return Aggregate(statuses...)
}
