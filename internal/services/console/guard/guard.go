// Package guard gates console areas behind a role claim that is re-derived
// from the stored session token on every request.
package guard

import (
	"context"
	"net/http"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/sessioncookie"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
)

// Deny reasons recorded in metrics.
const (
	ReasonNoSession    = "no_session"
	ReasonNoRole       = "no_role"
	ReasonRoleMismatch = "role_mismatch"
	ReasonBackend      = "backend_unauthorized"
)

// Sessions is the session surface the guard needs.
type Sessions interface {
	CurrentRole(ctx context.Context, id string) (string, bool)
	Logout(ctx context.Context, id string)
}

// Config wires a Guard.
type Config struct {
	Sessions Sessions
	Policy   requestmeta.SchemePolicy
	Metrics  *observability.Metrics
}

// Guard enforces role access for console areas.
type Guard struct {
	sessions Sessions
	policy   requestmeta.SchemePolicy
	metrics  *observability.Metrics
}

// New builds a Guard.
func New(cfg Config) *Guard {
	return &Guard{sessions: cfg.Sessions, policy: cfg.Policy, metrics: cfg.Metrics}
}

// MatchRole reports whether claim satisfies any allowed role. Matching is
// deliberately permissive: an allowed role matches when it appears anywhere
// in the claim, ignoring case, so "Staff" accepts "staff" and
// "staff,operator". Blank allowed entries never match.
func MatchRole(claim string, allowed ...string) bool {
	claim = strings.ToLower(strings.TrimSpace(claim))
	if claim == "" {
		return false
	}
	for _, role := range allowed {
		role = strings.ToLower(strings.TrimSpace(role))
		if role != "" && strings.Contains(claim, role) {
			return true
		}
	}
	return false
}

// Principal is the caller admitted by Require.
type Principal struct {
	SessionID string
	Role      string
}

type principalKey struct{}

// PrincipalFrom returns the principal stored by Require.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// WithPrincipal stores p on ctx and binds its session id for backend token
// lookup.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, principalKey{}, p)
	return session.ContextWithID(ctx, p.SessionID)
}

// Require admits a request only when the session's current role matches one
// of allowed. The check runs on every request; nothing is cached between
// requests. Denied requests lose their session and are sent to login.
func (g *Guard) Require(area string, allowed ...string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessioncookie.Read(r)
			if !ok {
				g.deny(w, r, area, ReasonNoSession)
				return
			}
			var role string
			if g.sessions != nil {
				role, ok = g.sessions.CurrentRole(r.Context(), id)
			}
			if !ok || strings.TrimSpace(role) == "" {
				g.deny(w, r, area, ReasonNoRole)
				return
			}
			if !MatchRole(role, allowed...) {
				g.deny(w, r, area, ReasonRoleMismatch)
				return
			}
			httpx.NoStore(w)
			ctx := WithPrincipal(r.Context(), Principal{SessionID: id, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Deny fails a request closed after the backend rejected its token.
func (g *Guard) Deny(w http.ResponseWriter, r *http.Request) {
	g.deny(w, r, areaOf(r), ReasonBackend)
}

func (g *Guard) deny(w http.ResponseWriter, r *http.Request, area string, reason string) {
	if id, ok := sessioncookie.Read(r); ok && g.sessions != nil {
		g.sessions.Logout(httpx.RequestContext(r), id)
	}
	sessioncookie.Clear(w, r, g.policy)
	g.metrics.GuardDenied(area, reason)
	httpx.NoStore(w)
	// 303 replaces the guarded URL for both reads and form posts.
	httpx.WriteRedirectStatus(w, r, routepath.Login, http.StatusSeeOther)
}

func areaOf(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	switch path := r.URL.Path; {
	case path == routepath.AdminPrefix || strings.HasPrefix(path, routepath.AdminPrefix+"/"):
		return "admin"
	case path == routepath.StaffPrefix || strings.HasPrefix(path, routepath.StaffPrefix+"/"):
		return "staff"
	default:
		return ""
	}
}
