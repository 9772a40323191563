// Package session holds console login state: it stores backend tokens under
// an opaque session id and derives the caller's role from the stored token
// on every check.
package session

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/timeouts"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
)

// DefaultTTL is used when Options.TTL is not positive.
const DefaultTTL = 12 * time.Hour

// Authenticator exchanges credentials with the backend.
type Authenticator interface {
	Login(ctx context.Context, email string, password string) (Credentials, error)
	// Logout tells the backend the token is no longer in use. Failures are
	// logged by the caller and never block local logout.
	Logout(ctx context.Context, accessToken string) error
}

// Options tunes a Service.
type Options struct {
	TTL     time.Duration
	Metrics *observability.Metrics
	Logger  *log.Logger
	// Now and NewID are test seams.
	Now   func() time.Time
	NewID func() string
}

// LoginResult describes a successful login.
type LoginResult struct {
	SessionID string
	// Role is decoded from the fresh access token; HasRole is false when the
	// token carries no recognisable role claim.
	Role    string
	HasRole bool
}

// Service implements login, logout and role lookup over a Store.
type Service struct {
	store   Store
	auth    Authenticator
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

// NewService wires a session service.
func NewService(store Store, auth Authenticator, opts Options) *Service {
	s := &Service{
		store:   store,
		auth:    auth,
		ttl:     opts.TTL,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.store == nil {
		memory := NewMemoryStore()
		memory.now = s.now
		s.store = memory
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// TTL is the lifetime given to new sessions.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login authenticates against the backend and persists the returned tokens
// under a new session id. Nothing is persisted on failure.
func (s *Service) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, apperrors.EK(apperrors.KindInvalidInput, "login.error.credentials_required", "email and password are required")
	}
	if s.auth == nil {
		return LoginResult{}, apperrors.E(apperrors.KindUnavailable, "authentication is not configured")
	}
	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, normalizeLoginError(err)
	}
	if strings.TrimSpace(creds.AccessToken) == "" {
		return LoginResult{}, apperrors.EK(apperrors.KindRejected, "login.error.failed", "Login failed")
	}

	now := s.now()
	creds.CreatedAt = now
	creds.ExpiresAt = now.Add(s.ttl)
	id := s.newID()
	if err := s.store.Put(ctx, id, creds); err != nil {
		s.logger.Printf("session put failed session_id=%s err=%v", shortID(id), err)
		return LoginResult{}, apperrors.E(apperrors.KindUnavailable, "session store is unavailable")
	}
	s.metrics.SessionOpened()

	role, ok := DecodeRole(creds.AccessToken)
	return LoginResult{SessionID: id, Role: role, HasRole: ok}, nil
}

// Logout clears the session unconditionally. It is idempotent, tolerates an
// empty id, and survives a cancelled request context. When a token was held,
// the backend is notified on a best-effort basis.
func (s *Service) Logout(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	creds, found, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Printf("session get during logout failed session_id=%s err=%v", shortID(id), err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Printf("session delete failed session_id=%s err=%v", shortID(id), err)
	}
	if !found {
		return
	}
	s.metrics.SessionClosed()
	if s.auth == nil || strings.TrimSpace(creds.AccessToken) == "" {
		return
	}
	notifyCtx, cancel := context.WithTimeout(ctx, timeouts.LogoutNotify)
	defer cancel()
	if err := s.auth.Logout(notifyCtx, creds.AccessToken); err != nil {
		s.logger.Printf("backend logout failed session_id=%s err=%v", shortID(id), err)
	}
}

// CurrentRole re-reads the stored token and decodes its role. Token expiry
// is not checked here; the backend rejects stale tokens on use.
func (s *Service) CurrentRole(ctx context.Context, id string) (string, bool) {
	creds, ok := s.credentials(ctx, id)
	if !ok {
		return "", false
	}
	return DecodeRole(creds.AccessToken)
}

// AccessToken returns the bearer token for the session bound to ctx by
// ContextWithID.
func (s *Service) AccessToken(ctx context.Context) (string, bool) {
	creds, ok := s.credentials(ctx, IDFromContext(ctx))
	if !ok || strings.TrimSpace(creds.AccessToken) == "" {
		return "", false
	}
	return creds.AccessToken, true
}

func (s *Service) credentials(ctx context.Context, id string) (Credentials, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Credentials{}, false
	}
	creds, ok, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Printf("session get failed session_id=%s err=%v", shortID(id), err)
		return Credentials{}, false
	}
	return creds, ok
}

func normalizeLoginError(err error) error {
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindUnavailable, apperrors.KindInvalidInput:
		return err
	case apperrors.KindUnknown:
		return apperrors.EK(apperrors.KindRejected, "login.error.failed", "Login failed")
	}
	message := apperrors.Message(err)
	if message == "" {
		return apperrors.Error{Kind: apperrors.KindRejected, Key: "login.error.failed", Message: "Login failed", Code: apperrors.BackendCode(err)}
	}
	return apperrors.Backend(apperrors.KindRejected, apperrors.BackendCode(err), message)
}

// shortID keeps session ids out of logs beyond a correlation prefix.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

type sessionIDKey struct{}

// ContextWithID binds a session id to ctx for downstream token lookup.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, strings.TrimSpace(id))
}

// IDFromContext returns the session id bound by ContextWithID.
func IDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
