// Package console hosts the DriveShare staff and admin console.
package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/timeouts"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	consoleapp "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/app"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/docreview"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/guard"
	module "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/module"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/modules/public"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/httpx"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/routepath"
	consolestatic "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/static"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/templates"
)

// Role names the backend issues for console users.
const (
	RoleStaff = "Staff"
	RoleAdmin = "Admin"
)

// Config defines startup inputs for the console service.
type Config struct {
	HTTPAddr string
	Policy   requestmeta.SchemePolicy
	Sessions public.Sessions
	API      modules.API
	// Metrics is optional; nil disables /metrics and request counters.
	Metrics *observability.Metrics
	Logger  *log.Logger
}

var _ modules.API = (*backend.Client)(nil)

// Server hosts the console HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: public login, the guarded staff and
// admin areas, static assets, health and metrics.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	gate := guard.New(guard.Config{Sessions: cfg.Sessions, Policy: cfg.Policy, Metrics: cfg.Metrics})
	deps := module.Dependencies{
		Policy:  cfg.Policy,
		Deny:    gate.Deny,
		Metrics: cfg.Metrics,
		Logger:  logger,
	}
	input := consoleapp.ComposeInput{
		Policy:        cfg.Policy,
		Gate:          gate,
		PublicModules: modules.PublicModules(cfg.Sessions, deps),
		Areas: []consoleapp.Area{
			{Name: templates.AreaStaff, Prefix: routepath.StaffPrefix, Roles: []string{RoleStaff}, Modules: modules.StaffModules(cfg.API, docreview.NewFence(), deps)},
			{Name: templates.AreaAdmin, Prefix: routepath.AdminPrefix, Roles: []string{RoleAdmin}, Modules: modules.AdminModules(cfg.API, deps)},
		},
	}
	h, err := consoleapp.Composer{}.Compose(input)
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(consolestatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Health, healthHandler(input.Modules()))
	if cfg.Metrics != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
	}
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger, cfg.Metrics),
	), nil
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler reports 503 while any module lacks its collaborators.
func healthHandler(mods []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		report := healthReport{Status: "ok", Modules: make(map[string]bool, len(mods))}
		status := http.StatusOK
		for _, m := range mods {
			healthy := true
			if reporter, ok := m.(module.HealthReporter); ok {
				healthy = reporter.Healthy()
			}
			report.Modules[m.ID()] = healthy
			if !healthy {
				report.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		httpx.NoStore(w)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	})
}

// NewServer validates config and constructs a console server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose console handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown console http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve console http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
