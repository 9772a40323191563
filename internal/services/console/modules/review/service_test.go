package review

import (
	"context"
	"errors"
	"testing"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

func TestDecideReleasesFenceAfterSubmission(t *testing.T) {
	t.Parallel()

	fence := docreview.NewFence()
	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}, message: " ok "}
	svc := newService(docreview.KindIdentity, gateway, fence)

	outcome, err := svc.decide(context.Background(), " 42 ", true, "")
	if err != nil {
		t.Fatalf("decide() error = %v", err)
	}
	if outcome.Message != "ok" || outcome.Document == nil || outcome.Document.OwnerID != "u-7" {
		t.Fatalf("outcome = %+v", outcome)
	}
	if fence.InFlight(docreview.KindIdentity, "42") {
		t.Fatalf("fence must be released after submission")
	}
}

func TestDecideValidatesBeforeFetching(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	svc := newService(docreview.KindIdentity, gateway, nil)

	if _, err := svc.decide(context.Background(), "42", false, ""); !errors.Is(err, docreview.ErrReasonRequired) {
		t.Fatalf("decide() error = %v, want %v", err, docreview.ErrReasonRequired)
	}
	if gateway.detailHits != 0 {
		t.Fatalf("detail hits = %d, want 0", gateway.detailHits)
	}
}

func TestUnavailableGatewayFailsClosed(t *testing.T) {
	t.Parallel()

	svc := newService(docreview.KindVehicle, nil, nil)
	if _, err := svc.load(context.Background(), "1"); !apperrors.Is(err, apperrors.KindUnavailable) {
		t.Fatalf("load() error = %v, want unavailable", err)
	}
	if _, err := svc.decide(context.Background(), "1", true, ""); !apperrors.Is(err, apperrors.KindUnavailable) {
		t.Fatalf("decide() error = %v, want unavailable", err)
	}
}

func TestParseDecision(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{"approve": true, " APPROVE ": true, "reject": false}
	for value, want := range tests {
		got, err := parseDecision(value)
		if err != nil || got != want {
			t.Fatalf("parseDecision(%q) = %v, %v", value, got, err)
		}
	}
	if _, err := parseDecision(""); !errors.Is(err, errUnknownDecision) {
		t.Fatalf("parseDecision(blank) error = %v", err)
	}
}

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{docreview.ErrInFlight, "in_flight"},
		{docreview.ErrNotPending, "not_pending"},
		{docreview.ErrReasonRequired, "invalid"},
		{apperrors.E(apperrors.KindUnauthorized, "expired"), "unauthorized"},
		{apperrors.E(apperrors.KindUnavailable, "down"), "unavailable"},
		{apperrors.Backend(apperrors.KindRejected, 400, "no"), "failed"},
	}
	for _, tc := range tests {
		if got := outcomeLabel(tc.err); got != tc.want {
			t.Fatalf("outcomeLabel(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
