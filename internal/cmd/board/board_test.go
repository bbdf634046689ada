package board

import (
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("expected default api base url, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("expected default api timeout, got %v", cfg.APITimeout)
	}
	if cfg.DiagnosticsDB != "" {
		t.Fatalf("expected no diagnostics db, got %q", cfg.DiagnosticsDB)
	}
	if cfg.UIErrorRate != 1 || cfg.UIErrorBurst != 10 {
		t.Fatalf("expected default ui error limits, got %v/%d", cfg.UIErrorRate, cfg.UIErrorBurst)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("BOARD_HTTP_ADDR", "env-addr")
	t.Setenv("BOARD_API_BASE_URL", "http://env-api:9000")
	t.Setenv("BOARD_DIAGNOSTICS_DB", "env.db")
	t.Setenv("BOARD_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	args := []string{
		"-http-addr", "flag-addr",
		"-api-base-url", "https://flag-api.example.com/v1",
		"-api-timeout", "3s",
		"-ui-error-burst", "2",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "https://flag-api.example.com/v1" {
		t.Fatalf("expected flag api base url, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("expected flag api timeout, got %v", cfg.APITimeout)
	}
	if cfg.DiagnosticsDB != "env.db" {
		t.Fatalf("expected env diagnostics db, got %q", cfg.DiagnosticsDB)
	}
	if cfg.UIErrorBurst != 2 {
		t.Fatalf("expected flag burst, got %d", cfg.UIErrorBurst)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("expected trusted forwarded proto from env")
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "api url", args: []string{"-api-base-url", "not a url"}},
		{name: "empty addr", args: []string{"-http-addr", ""}},
		{name: "timeout", args: []string{"-api-timeout", "0s"}},
		{name: "burst", args: []string{"-ui-error-burst", "0"}},
		{name: "negative rate", args: []string{"-ui-error-rate", "-1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("board", flag.ContinueOnError)
			if _, err := ParseConfig(fs, tc.args); err == nil {
				t.Fatalf("expected validation error for %v", tc.args)
			}
		})
	}
}

func TestRunStopsWhenContextDone(t *testing.T) {
	t.Setenv("BOARD_OTEL_ENDPOINT", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{
		HTTPAddr:      "127.0.0.1:0",
		APIBaseURL:    "http://127.0.0.1:1",
		APITimeout:    time.Second,
		DiagnosticsDB: filepath.Join(t.TempDir(), "board.db"),
		UIErrorRate:   1,
		UIErrorBurst:  1,
	}
	if err := Run(ctx, cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunRejectsBadAPIURL(t *testing.T) {
	t.Setenv("BOARD_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "ftp://nope"})
	if err == nil {
		t.Fatal("expected error")
	}
}
