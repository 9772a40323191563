package review

import (
	"context"
	"net/http"
	"sync"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

type submission struct {
	kind     docreview.Kind
	decision docreview.Decision
}

// fakeGateway serves canned documents and records submissions.
type fakeGateway struct {
	mu         sync.Mutex
	docs       map[string]docreview.Document
	detailErr  error
	submitErr  error
	message    string
	submitted  []submission
	detailHits int
}

func (f *fakeGateway) DocumentDetail(_ context.Context, kind docreview.Kind, id string) (docreview.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailHits++
	if f.detailErr != nil {
		return docreview.Document{}, f.detailErr
	}
	doc, ok := f.docs[id]
	if !ok {
		return docreview.Document{}, apperrors.Backend(apperrors.KindNotFound, http.StatusNotFound, "")
	}
	doc.Kind = kind
	return doc, nil
}

func (f *fakeGateway) SubmitDecision(_ context.Context, kind docreview.Kind, decision docreview.Decision) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.submitted = append(f.submitted, submission{kind: kind, decision: decision})
	return f.message, nil
}

func (f *fakeGateway) submissions() []submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submission(nil), f.submitted...)
}

// denyRecorder stands in for the area guard's fail-closed deny.
type denyRecorder struct {
	mu    sync.Mutex
	calls int
}

func (d *denyRecorder) deny(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (d *denyRecorder) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

func testDeps(deny *denyRecorder) module.Dependencies {
	if deny == nil {
		return module.Dependencies{}
	}
	return module.Dependencies{Deny: deny.deny}
}

func pendingIdentity(id string, owner string) docreview.Document {
	return docreview.Document{
		ID:            id,
		OwnerID:       owner,
		OwnerName:     "Nguyen Van A",
		OwnerEmail:    "a@driveshare.vn",
		DocumentType:  "CCCD",
		Status:        docreview.StatusPendingReview,
		FrontImageURL: "https://cdn.example/front.jpg",
		BackImageURL:  "https://cdn.example/back.jpg",
		CreatedAt:     "2025-03-01T08:30:00Z",
	}
}
