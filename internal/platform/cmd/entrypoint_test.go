package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"DRIVESHARE_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8088"`
	Mode    string `env:"DRIVESHARE_CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("DRIVESHARE_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("DRIVESHARE_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("Address = %q, want %q", cfg.Address, "flag:9001")
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("Mode = %q, want %q", cfg.Mode, "env-mode")
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	t.Parallel()

	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	t.Parallel()

	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryValidatesInputs(t *testing.T) {
	t.Parallel()

	if err := RunWithTelemetry(context.Background(), " ", Telemetry{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected blank service name to fail")
	}
	if err := RunWithTelemetry(context.Background(), ServiceConsole, Telemetry{}, nil); err == nil {
		t.Fatal("expected nil run function to fail")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	got := RunWithTelemetry(context.Background(), ServiceConsole, Telemetry{Disabled: true}, func(context.Context) error {
		return want
	})
	if !errors.Is(got, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", got, want)
	}
}
