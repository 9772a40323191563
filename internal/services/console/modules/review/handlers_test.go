package review

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
)

func mountReview(t *testing.T, config KindConfig, gateway *fakeGateway, fence *docreview.Fence, deny *denyRecorder) http.Handler {
	t.Helper()
	mount, err := New(config, gateway, fence, testDeps(deny)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != config.Prefix+"/" {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, config.Prefix+"/")
	}
	return mount.Handler
}

func postDecision(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func hasCookie(rr *httptest.ResponseRecorder, name string) bool {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return true
		}
	}
	return false
}

func TestDetailRendersPendingDocument(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DocumentReview("42"), nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`action="` + routepath.DocumentReviewDecision("42") + `"`,
		`name="userDocumentId" value="42"`,
		`href="#image-front"`,
		`id="image-back"`,
		`href="` + routepath.DocumentReview("42") + `?decision=reject"`,
		`href="` + routepath.StaffUser("u-7") + `"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s", want)
		}
	}
	if strings.Contains(body, "<textarea") {
		t.Fatalf("reason field must stay hidden until reject is chosen")
	}
	if strings.Contains(body, `disabled="disabled"`) {
		t.Fatalf("pending document must have enabled controls")
	}
}

func TestDetailRejectRevealsReasonField(t *testing.T) {
	t.Parallel()

	doc := pendingIdentity("v-1", "veh-3")
	gateway := &fakeGateway{docs: map[string]docreview.Document{"v-1": doc}}
	rr := httptest.NewRecorder()
	mountReview(t, VehicleDocuments(), gateway, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.VehicleDocumentReview("v-1")+"?decision=reject", nil))

	body := rr.Body.String()
	if !strings.Contains(body, `<textarea id="reason" name="rejectReason"`) {
		t.Fatalf("body missing vehicle reason field")
	}
	if !strings.Contains(body, `name="documentId" value="v-1"`) {
		t.Fatalf("body missing vehicle id field")
	}
}

func TestDetailOfDecidedDocumentDisablesControls(t *testing.T) {
	t.Parallel()

	doc := pendingIdentity("42", "u-7")
	doc.Status = docreview.StatusActive
	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": doc}}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DocumentReview("42"), nil))

	if !strings.Contains(rr.Body.String(), `disabled="disabled"`) {
		t.Fatalf("decided document must render disabled controls")
	}
}

func TestDetailLoadFailureShowsInlineError(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DocumentReview("missing"), nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Cannot load document detail") {
		t.Fatalf("body missing load error")
	}
}

func TestDetailUnauthorizedFailsClosed(t *testing.T) {
	t.Parallel()

	deny := &denyRecorder{}
	gateway := &fakeGateway{detailErr: apperrors.Backend(apperrors.KindUnauthorized, http.StatusUnauthorized, "")}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, deny).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DocumentReview("42"), nil))

	if deny.count() != 1 {
		t.Fatalf("deny calls = %d, want 1", deny.count())
	}
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
}

func TestBarePrefixRedirectsToQueue(t *testing.T) {
	t.Parallel()

	for _, config := range []KindConfig{IdentityDocuments(), VehicleDocuments()} {
		handler := mountReview(t, config, &fakeGateway{}, nil, nil)
		for _, path := range []string{config.Prefix, config.Prefix + "/"} {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
			if rr.Code != http.StatusFound || rr.Header().Get("Location") != config.QueuePath {
				t.Fatalf("GET %s status = %d location = %q", path, rr.Code, rr.Header().Get("Location"))
			}
		}
	}
}

func TestApproveRedirectsToOwnerWithNotice(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		docs:    map[string]docreview.Document{"42": pendingIdentity("42", "u-7")},
		message: "Review successfully.",
	}
	rr := httptest.NewRecorder()
	form := url.Values{"decision": {"approve"}, "userDocumentId": {"42"}, "rejectionReason": {"ignored"}}
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), form))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.StaffUser("u-7") {
		t.Fatalf("Location = %q, want %q", got, routepath.StaffUser("u-7"))
	}
	if !hasCookie(rr, flash.CookieName) {
		t.Fatalf("expected success notice cookie")
	}
	got := gateway.submissions()
	if len(got) != 1 {
		t.Fatalf("submissions = %d, want 1", len(got))
	}
	if got[0].kind != docreview.KindIdentity || !got[0].decision.Approved || got[0].decision.Reason != "" {
		t.Fatalf("submission = %+v", got[0])
	}
}

func TestRejectSendsTrimmedReasonToVehicleOwner(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"v-1": pendingIdentity("v-1", "veh-3")}}
	rr := httptest.NewRecorder()
	form := url.Values{"decision": {"reject"}, "documentId": {"v-1"}, "rejectReason": {"  blurry photo  "}}
	mountReview(t, VehicleDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.VehicleDocumentReviewDecision("v-1"), form))

	if got := rr.Header().Get("Location"); got != routepath.StaffVehicle("veh-3") {
		t.Fatalf("Location = %q, want %q", got, routepath.StaffVehicle("veh-3"))
	}
	got := gateway.submissions()
	if len(got) != 1 || got[0].decision.Approved || got[0].decision.Reason != "blurry photo" {
		t.Fatalf("submissions = %+v", got)
	}
}

func TestRejectWithBlankReasonIsNotSent(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	rr := httptest.NewRecorder()
	form := url.Values{"decision": {"reject"}, "rejectionReason": {"   "}}
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), form))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if len(gateway.submissions()) != 0 {
		t.Fatalf("blank rejection must not reach the backend")
	}
	if !strings.Contains(rr.Body.String(), `name="rejectionReason"`) {
		t.Fatalf("reason field must stay open after a failed rejection")
	}
}

func TestDecisionOnDecidedDocumentIsRefused(t *testing.T) {
	t.Parallel()

	doc := pendingIdentity("42", "u-7")
	doc.Status = docreview.StatusRejected
	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": doc}}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), url.Values{"decision": {"approve"}}))

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
	if len(gateway.submissions()) != 0 {
		t.Fatalf("decided document must not be resubmitted")
	}
}

func TestDecisionWhileInFlightIsRefused(t *testing.T) {
	t.Parallel()

	fence := docreview.NewFence()
	release, ok := fence.Acquire(docreview.KindIdentity, "42")
	if !ok {
		t.Fatalf("Acquire() ok = false")
	}
	defer release()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	handler := mountReview(t, IdentityDocuments(), gateway, fence, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), url.Values{"decision": {"approve"}}))
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
	if len(gateway.submissions()) != 0 {
		t.Fatalf("in-flight document must not be resubmitted")
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DocumentReview("42"), nil))
	if !strings.Contains(rr.Body.String(), `disabled="disabled"`) {
		t.Fatalf("in-flight document must render disabled controls")
	}
}

func TestDecisionFailureMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "backend message verbatim",
			err:        apperrors.Backend(apperrors.KindRejected, http.StatusBadRequest, "Tài liệu đã hết hạn"),
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "Tài liệu đã hết hạn",
		},
		{
			name:       "rejection without message",
			err:        apperrors.Backend(apperrors.KindRejected, http.StatusBadRequest, ""),
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "Review failed.",
		},
		{
			name:       "network failure",
			err:        apperrors.EK(apperrors.KindUnavailable, "error.network", "network error"),
			wantStatus: http.StatusServiceUnavailable,
			wantText:   "Error while submitting review.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gateway := &fakeGateway{
				docs:      map[string]docreview.Document{"42": pendingIdentity("42", "u-7")},
				submitErr: tc.err,
			}
			rr := httptest.NewRecorder()
			form := url.Values{"decision": {"reject"}, "rejectionReason": {"expired"}}
			mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), form))

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tc.wantText) {
				t.Fatalf("body missing %q", tc.wantText)
			}
			if !strings.Contains(body, ">expired</textarea>") {
				t.Fatalf("typed reason must survive a failed submission")
			}
		})
	}
}

func TestDecisionUnauthorizedFailsClosed(t *testing.T) {
	t.Parallel()

	deny := &denyRecorder{}
	gateway := &fakeGateway{
		docs:      map[string]docreview.Document{"42": pendingIdentity("42", "u-7")},
		submitErr: apperrors.Backend(apperrors.KindUnauthorized, http.StatusUnauthorized, ""),
	}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, deny).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), url.Values{"decision": {"approve"}}))

	if deny.count() != 1 {
		t.Fatalf("deny calls = %d, want 1", deny.count())
	}
}

func TestDecisionRejectsMismatchedFormID(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	rr := httptest.NewRecorder()
	form := url.Values{"decision": {"approve"}, "userDocumentId": {"43"}}
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), form))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if len(gateway.submissions()) != 0 {
		t.Fatalf("mismatched form must not reach the backend")
	}
}

func TestUnknownDecisionVerb(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{docs: map[string]docreview.Document{"42": pendingIdentity("42", "u-7")}}
	rr := httptest.NewRecorder()
	mountReview(t, IdentityDocuments(), gateway, nil, nil).ServeHTTP(rr, postDecision(routepath.DocumentReviewDecision("42"), url.Values{"decision": {"maybe"}}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
