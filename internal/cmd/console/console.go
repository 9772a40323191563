// Package console parses console command configuration and starts the
// staff/admin HTTP server.
package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/cmd"
	server "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/backend"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/observability"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/platform/requestmeta"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
	redisstore "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/storage/redis"
	sqlitestore "github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/storage/sqlite"
)

// Session store backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

const sessionPurgeInterval = 10 * time.Minute

// Config holds console command configuration.
type Config struct {
	HTTPAddr            string        `env:"DRIVESHARE_CONSOLE_HTTP_ADDR"      envDefault:":8088"`
	APIBaseURL          string        `env:"DRIVESHARE_API_BASE_URL"           envDefault:"http://localhost:5246/api/"`
	APITimeout          time.Duration `env:"DRIVESHARE_API_TIMEOUT"            envDefault:"30s"`
	SessionBackend      string        `env:"DRIVESHARE_SESSION_BACKEND"        envDefault:"memory"`
	SessionDBPath       string        `env:"DRIVESHARE_SESSION_DB_PATH"        envDefault:"data/console.db"`
	SessionRedisAddr    string        `env:"DRIVESHARE_SESSION_REDIS_ADDR"`
	SessionRedisPass    string        `env:"DRIVESHARE_SESSION_REDIS_PASSWORD"`
	SessionRedisDB      int           `env:"DRIVESHARE_SESSION_REDIS_DB"       envDefault:"0"`
	SessionTTL          time.Duration `env:"DRIVESHARE_SESSION_TTL"            envDefault:"12h"`
	TrustForwardedProto bool          `env:"DRIVESHARE_TRUST_FORWARDED_PROTO"`
	OTelEndpoint        string        `env:"DRIVESHARE_OTEL_ENDPOINT"`
	OTelEnabled         bool          `env:"DRIVESHARE_OTEL_ENABLED"`
	MetricsEnabled      bool          `env:"DRIVESHARE_METRICS_ENABLED"        envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "console HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "DriveShare REST API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "timeout for one backend request")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "session store: memory, sqlite or redis")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "sqlite session database path")
	fs.StringVar(&cfg.SessionRedisAddr, "session-redis-addr", cfg.SessionRedisAddr, "redis address for sessions")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "session lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from a proxy")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "serve Prometheus metrics on /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendSQLite:
		if strings.TrimSpace(cfg.SessionDBPath) == "" {
			return errors.New("session db path is required for the sqlite backend")
		}
	case SessionBackendRedis:
		if strings.TrimSpace(cfg.SessionRedisAddr) == "" {
			return errors.New("session redis address is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	return nil
}

// Run wires the session store, backend client and console server, then
// serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	telemetry := entrypoint.Telemetry{Endpoint: cfg.OTelEndpoint, Disabled: !cfg.OTelEnabled}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConsole, telemetry, func(ctx context.Context) error {
		var metrics *observability.Metrics
		if cfg.MetricsEnabled {
			metrics = observability.NewMetrics()
		}
		logger := log.Default()

		store, closeStore, err := openSessionStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		// The client reads tokens from the session service, which in turn
		// authenticates through the client.
		var sessions *session.Service
		client, err := backend.NewClient(backend.Options{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.APITimeout,
			Tokens: backend.TokenFunc(func(ctx context.Context) (string, bool) {
				return sessions.AccessToken(ctx)
			}),
			Metrics: metrics,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("init backend client: %w", err)
		}
		sessions = session.NewService(store, client, session.Options{TTL: cfg.SessionTTL, Metrics: metrics, Logger: logger})

		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr: cfg.HTTPAddr,
			Policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Sessions: sessions,
			API:      client,
			Metrics:  metrics,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("init console server: %w", err)
		}
		defer srv.Close()

		logger.Printf("console listening addr=%s api=%s sessions=%s", cfg.HTTPAddr, client.BaseURL(), cfg.SessionBackend)
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve console: %w", err)
		}
		return nil
	})
}

func openSessionStore(ctx context.Context, cfg Config, logger *log.Logger) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case SessionBackendSQLite:
		if dir := filepath.Dir(cfg.SessionDBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, nil, fmt.Errorf("create session db dir: %w", err)
			}
		}
		store, err := sqlitestore.Open(ctx, cfg.SessionDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		stop := purgeExpiredSessions(ctx, store, logger)
		return store, func() {
			stop()
			closeQuietly(logger, "sqlite session store", store)
		}, nil
	case SessionBackendRedis:
		store, err := redisstore.Open(ctx, redisstore.Options{
			Addr:     cfg.SessionRedisAddr,
			Password: cfg.SessionRedisPass,
			DB:       cfg.SessionRedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, func() { closeQuietly(logger, "redis session store", store) }, nil
	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

type purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// purgeExpiredSessions deletes expired rows on a ticker until the returned
// stop function is called.
func purgeExpiredSessions(ctx context.Context, store purger, logger *log.Logger) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(sessionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := store.PurgeExpired(ctx)
				if err != nil {
					logger.Printf("session purge failed err=%v", err)
					continue
				}
				if n > 0 {
					logger.Printf("session purge removed=%d", n)
				}
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

func closeQuietly(logger *log.Logger, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Printf("close %s: %v", name, err)
	}
}
