package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/flash"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

func TestNewBaseDefaults(t *testing.T) {
	t.Parallel()

	base := NewTestBase(templates.AreaStaff)
	if base.Area() != templates.AreaStaff {
		t.Fatalf("Area() = %q, want %q", base.Area(), templates.AreaStaff)
	}
	if base.Logger() == nil {
		t.Fatalf("Logger() = nil, want default logger")
	}
	if base.Metrics() != nil {
		t.Fatalf("Metrics() = %v, want nil", base.Metrics())
	}
}

func TestWriteErrorDeniesRejectedToken(t *testing.T) {
	t.Parallel()

	denied := 0
	base := NewBase(templates.AreaStaff, module.Dependencies{Deny: func(w http.ResponseWriter, r *http.Request) {
		denied++
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}})

	rr := httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/staff/users", nil), apperrors.E(apperrors.KindUnauthorized, "token expired"))
	if denied != 1 {
		t.Fatalf("deny calls = %d, want 1", denied)
	}
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}

	rr = httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/staff/users", nil), errors.New("boom"))
	if denied != 1 {
		t.Fatalf("deny calls = %d, want 1 after a plain failure", denied)
	}
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestDenyIfUnauthorizedWithoutHook(t *testing.T) {
	t.Parallel()

	base := NewTestBase(templates.AreaAdmin)
	rr := httptest.NewRecorder()
	if !base.DenyIfUnauthorized(rr, httptest.NewRequest(http.MethodGet, "/admin", nil), apperrors.E(apperrors.KindUnauthorized, "expired")) {
		t.Fatalf("DenyIfUnauthorized() = false, want true")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if base.DenyIfUnauthorized(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil), apperrors.E(apperrors.KindNotFound, "gone")) {
		t.Fatalf("DenyIfUnauthorized() = true for a not-found error")
	}
}

func TestWriteNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase(templates.AreaStaff).WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/staff/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRedirectWithNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/staff/review/identity/doc-1/decision", nil)
	NewTestBase(templates.AreaStaff).RedirectWithNotice(rr, req, "/staff/review/identity", flash.Success("review.notice.submitted"))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/staff/review/identity" {
		t.Fatalf("Location = %q, want %q", got, "/staff/review/identity")
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s cookie", flash.CookieName)
	}
}
