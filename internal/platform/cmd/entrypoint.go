// Package cmd holds shared command entrypoint helpers.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/config"
	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceConsole names the staff/admin console in telemetry and logs.
const ServiceConsole = "driveshare-console"

// Telemetry carries the tracing settings a command resolved from its config.
type Telemetry struct {
	Endpoint        string
	Disabled        bool
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, telemetry Telemetry, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, otel.Options{
		ServiceName: service,
		Endpoint:    telemetry.Endpoint,
		Disabled:    telemetry.Disabled,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := telemetry.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
