package public

import (
	"context"
	"time"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/guard"
	apperrors "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/errors"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
)

// Sessions is the session surface used by login and logout.
type Sessions interface {
	Login(ctx context.Context, email string, password string) (session.LoginResult, error)
	Logout(ctx context.Context, id string)
	CurrentRole(ctx context.Context, id string) (string, bool)
	TTL() time.Duration
}

// errUnauthorizedRole is returned when a login succeeds for a role with no
// console area.
var errUnauthorizedRole = apperrors.EK(apperrors.KindForbidden, "login.error.unauthorized_role", "Unauthorized role. Access denied.")

type service struct {
	sessions Sessions
}

func newService(sessions Sessions) service {
	return service{sessions: sessions}
}

// HomeForRole returns the landing page of the area role may enter, or ""
// when role has none. Admin wins over Staff.
func HomeForRole(role string) string {
	switch {
	case guard.MatchRole(role, "Admin"):
		return routepath.AdminPrefix
	case guard.MatchRole(role, "Staff"):
		return routepath.StaffPrefix
	default:
		return ""
	}
}

type loginOutcome struct {
	SessionID string
	Home      string
}

// login opens a session and resolves its landing page. A session for a
// role without an area is closed again before returning.
func (s service) login(ctx context.Context, email string, password string) (loginOutcome, error) {
	if s.sessions == nil {
		return loginOutcome{}, apperrors.E(apperrors.KindUnavailable, "session service is not configured")
	}
	result, err := s.sessions.Login(ctx, email, password)
	if err != nil {
		return loginOutcome{}, err
	}
	home := ""
	if result.HasRole {
		home = HomeForRole(result.Role)
	}
	if home == "" {
		s.sessions.Logout(ctx, result.SessionID)
		return loginOutcome{}, errUnauthorizedRole
	}
	return loginOutcome{SessionID: result.SessionID, Home: home}, nil
}

// currentHome returns where an existing session belongs, if anywhere.
func (s service) currentHome(ctx context.Context, sessionID string) string {
	if s.sessions == nil || sessionID == "" {
		return ""
	}
	role, ok := s.sessions.CurrentRole(ctx, sessionID)
	if !ok {
		return ""
	}
	return HomeForRole(role)
}

func (s service) logout(ctx context.Context, sessionID string) {
	if s.sessions == nil {
		return
	}
	s.sessions.Logout(ctx, sessionID)
}

func (s service) ttl() time.Duration {
	if s.sessions == nil {
		return session.DefaultTTL
	}
	return s.sessions.TTL()
}
