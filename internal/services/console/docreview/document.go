package docreview

import (
	"sort"
	"strings"
	"time"
)

// Kind selects the document family under review.
type Kind string

const (
	KindIdentity Kind = "identity"
	KindVehicle  Kind = "vehicle"
)

// Document is one reviewable document, identity or vehicle.
type Document struct {
	ID           string
	Kind         Kind
	OwnerID      string
	OwnerName    string
	OwnerEmail   string
	DocumentType string
	Status       Status

	// RejectionReason is set only for REJECTED documents.
	RejectionReason string

	FrontImageURL    string
	BackImageURL     string
	PortraitImageURL string

	// Timestamps are kept as the backend sent them; see ParseTime.
	CreatedAt      string
	LastUpdatedAt  string
	ExpirationDate string

	AdminNotes string
	Analysis   *AnalysisResult
}

// AnalysisResult is the automated pre-check attached to a document. It is
// advisory and never decides a review.
type AnalysisResult struct {
	OCRName         string
	OCRID           string
	OCRBirthDay     string
	DocumentType    string
	IsValidDocument *bool
	OverallScore    *float64
	Warnings        []string

	HasTampering      bool
	IsExpired         bool
	IsCornerCut       bool
	IsScreenRecapture bool
	DataMismatch      bool
}

// Image is one document image with a stable anchor name.
type Image struct {
	Name string
	URL  string
}

// Images lists the document's images in display order, skipping blanks.
func (d Document) Images() []Image {
	candidates := []Image{
		{Name: "front", URL: d.FrontImageURL},
		{Name: "back", URL: d.BackImageURL},
		{Name: "portrait", URL: d.PortraitImageURL},
	}
	images := make([]Image, 0, len(candidates))
	for _, image := range candidates {
		if strings.TrimSpace(image.URL) != "" {
			images = append(images, image)
		}
	}
	return images
}

// CanReview reports whether decision controls may be offered: the document
// must be pending and no decision for it may be in flight.
func CanReview(doc Document, submitting bool) bool {
	return doc.Status.IsPending() && !submitting
}

// Reviewable reports whether a list row links to the review page for kind.
// Identity documents also link when INACTIVE.
func Reviewable(kind Kind, status Status) bool {
	switch status {
	case StatusPendingReview, StatusRejected:
		return true
	case StatusInactive:
		return kind == KindIdentity
	default:
		return false
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp shapes the backend emits.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortNewestFirst orders docs by CreatedAt, newest first. Unparseable
// timestamps sort last and keep their relative order.
func SortNewestFirst(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		ti, okI := ParseTime(docs[i].CreatedAt)
		tj, okJ := ParseTime(docs[j].CreatedAt)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
}

// FirstPending returns the id of the first pending document, if any.
func FirstPending(docs []Document) (string, bool) {
	for _, doc := range docs {
		if doc.Status.IsPending() {
			return doc.ID, true
		}
	}
	return "", false
}
