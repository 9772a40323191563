package public

import (
	"context"
	"sync"
	"time"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
)

// fakeSessions implements Sessions with canned results and call tracking.
type fakeSessions struct {
	mu      sync.Mutex
	result  session.LoginResult
	err     error
	roles   map[string]string
	logouts []string
	logins  int
}

func (f *fakeSessions) Login(context.Context, string, string) (session.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	if f.err != nil {
		return session.LoginResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeSessions) Logout(_ context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, id)
}

func (f *fakeSessions) CurrentRole(_ context.Context, id string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[id]
	return role, ok
}

func (f *fakeSessions) TTL() time.Duration { return time.Hour }

func (f *fakeSessions) loggedOut() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.logouts...)
}
