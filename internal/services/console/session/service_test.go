package session

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
)

type fakeAuthenticator struct {
	mu         sync.Mutex
	creds      Credentials
	loginErr   error
	logoutErr  error
	loginCalls int
	logouts    []string
}

func (f *fakeAuthenticator) Login(context.Context, string, string) (Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	return f.creds, f.loginErr
}

func (f *fakeAuthenticator) Logout(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, token)
	return f.logoutErr
}

func newTestService(t *testing.T, auth Authenticator) (*Service, *MemoryStore, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	now := func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	store := NewMemoryStore()
	store.now = now
	svc := NewService(store, auth, Options{
		TTL:    time.Hour,
		Logger: log.New(&logs, "", 0),
		Now:    now,
		NewID:  func() string { return "session-0001" },
	})
	return svc, store, &logs
}

func TestLoginPersistsTokensAndDecodesRole(t *testing.T) {
	t.Parallel()

	access := mintToken(t, jwt.MapClaims{"role": "Staff"})
	auth := &fakeAuthenticator{creds: Credentials{AccessToken: access, RefreshToken: "refresh-1"}}
	svc, store, _ := newTestService(t, auth)

	result, err := svc.Login(context.Background(), " staff@driveshare.vn ", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.SessionID != "session-0001" || result.Role != "Staff" || !result.HasRole {
		t.Fatalf("Login() = %+v", result)
	}
	creds, ok, _ := store.Get(context.Background(), "session-0001")
	if !ok || creds.AccessToken != access || creds.RefreshToken != "refresh-1" {
		t.Fatalf("stored credentials = %+v, ok=%v", creds, ok)
	}
	if want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC); !creds.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt = %v, want %v", creds.ExpiresAt, want)
	}
}

func TestDefaultStoreSharesServiceClock(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{creds: Credentials{AccessToken: mintToken(t, jwt.MapClaims{"role": "Admin"})}}
	svc := NewService(nil, auth, Options{
		TTL:   time.Hour,
		Now:   func() time.Time { return time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC) },
		NewID: func() string { return "session-clock" },
	})

	result, err := svc.Login(context.Background(), "admin@driveshare.vn", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	role, ok := svc.CurrentRole(context.Background(), result.SessionID)
	if !ok || role != "Admin" {
		t.Fatalf("CurrentRole() = %q, %t, want %q, true", role, ok, "Admin")
	}
}

func TestLoginFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		loginErr    error
		wantKind    apperrors.Kind
		wantMessage string
	}{
		{name: "backend message kept", loginErr: apperrors.Backend(apperrors.KindUnauthorized, 401, "Invalid email or password"), wantKind: apperrors.KindRejected, wantMessage: "Invalid email or password"},
		{name: "blank backend message", loginErr: apperrors.Backend(apperrors.KindRejected, 400, ""), wantKind: apperrors.KindRejected, wantMessage: "Login failed"},
		{name: "untyped error", loginErr: errors.New("decode"), wantKind: apperrors.KindRejected, wantMessage: "Login failed"},
		{name: "network failure", loginErr: apperrors.E(apperrors.KindUnavailable, "network error"), wantKind: apperrors.KindUnavailable, wantMessage: "network error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, store, _ := newTestService(t, &fakeAuthenticator{loginErr: tc.loginErr})
			_, err := svc.Login(context.Background(), "a@b.c", "pw")
			if got := apperrors.KindOf(err); got != tc.wantKind {
				t.Fatalf("kind = %q, want %q", got, tc.wantKind)
			}
			if got := err.Error(); got != tc.wantMessage {
				t.Fatalf("message = %q, want %q", got, tc.wantMessage)
			}
			if store.Len() != 0 {
				t.Fatalf("store Len() = %d, want 0", store.Len())
			}
		})
	}
}

func TestLoginRequiresCredentialsWithoutBackendCall(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{}
	svc, _, _ := newTestService(t, auth)
	_, err := svc.Login(context.Background(), "  ", "pw")
	if !apperrors.Is(err, apperrors.KindInvalidInput) {
		t.Fatalf("Login() error = %v, want invalid input", err)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("login calls = %d, want 0", auth.loginCalls)
	}
}

func TestLoginWithRolelessToken(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthenticator{creds: Credentials{AccessToken: mintToken(t, jwt.MapClaims{"sub": "1"})}}
	svc, _, _ := newTestService(t, auth)
	result, err := svc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.HasRole || result.Role != "" {
		t.Fatalf("Login() = %+v, want no role", result)
	}
}

func TestLogoutIsIdempotentAndNotifiesBackend(t *testing.T) {
	t.Parallel()

	access := mintToken(t, jwt.MapClaims{"role": "Admin"})
	auth := &fakeAuthenticator{creds: Credentials{AccessToken: access}, logoutErr: errors.New("backend down")}
	svc, store, logs := newTestService(t, auth)
	result, err := svc.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Logout(ctx, result.SessionID)
	svc.Logout(context.Background(), result.SessionID)
	svc.Logout(context.Background(), "")

	if store.Len() != 0 {
		t.Fatalf("store Len() = %d, want 0", store.Len())
	}
	if len(auth.logouts) != 1 || auth.logouts[0] != access {
		t.Fatalf("backend logouts = %v, want one call with the access token", auth.logouts)
	}
	if !strings.Contains(logs.String(), "backend logout failed") {
		t.Fatalf("expected logged backend failure, got %q", logs.String())
	}
	if _, ok := svc.CurrentRole(context.Background(), result.SessionID); ok {
		t.Fatal("expected no role after logout")
	}
}

func TestCurrentRoleReadsTokenEveryCall(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	ctx := context.Background()
	_ = store.Put(ctx, "s", Credentials{AccessToken: mintToken(t, jwt.MapClaims{"role": "Staff"})})
	if role, ok := svc.CurrentRole(ctx, "s"); !ok || role != "Staff" {
		t.Fatalf("CurrentRole() = (%q, %v)", role, ok)
	}
	_ = store.Put(ctx, "s", Credentials{AccessToken: mintToken(t, jwt.MapClaims{"role": "Driver"})})
	if role, ok := svc.CurrentRole(ctx, "s"); !ok || role != "Driver" {
		t.Fatalf("CurrentRole() after token swap = (%q, %v)", role, ok)
	}
	if _, ok := svc.CurrentRole(ctx, "missing"); ok {
		t.Fatal("expected missing session to have no role")
	}
}

func TestAccessTokenUsesContextSession(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	_ = store.Put(context.Background(), "s", Credentials{AccessToken: "tok"})

	if _, ok := svc.AccessToken(context.Background()); ok {
		t.Fatal("expected no token without a bound session")
	}
	token, ok := svc.AccessToken(ContextWithID(context.Background(), "s"))
	if !ok || token != "tok" {
		t.Fatalf("AccessToken() = (%q, %v)", token, ok)
	}
}
