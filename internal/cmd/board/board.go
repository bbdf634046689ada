// Package board parses board command flags and composes the HTTP server.
package board

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/capabilityboard/internal/platform/cmd"
	"github.com/louisbranch/capabilityboard/internal/platform/config"
	boardservice "github.com/louisbranch/capabilityboard/internal/services/board"
	"github.com/louisbranch/capabilityboard/internal/services/board/diagnostics"
	"github.com/louisbranch/capabilityboard/internal/services/board/gateway"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/requestmeta"
	boardsqlite "github.com/louisbranch/capabilityboard/internal/services/board/storage/sqlite"
)

// Config holds board command configuration.
type Config struct {
	HTTPAddr            string        `env:"BOARD_HTTP_ADDR"             envDefault:":8080"                 validate:"required"`
	APIBaseURL          string        `env:"BOARD_API_BASE_URL"          envDefault:"http://localhost:8000" validate:"required,url"`
	APITimeout          time.Duration `env:"BOARD_API_TIMEOUT"           envDefault:"10s"                   validate:"gt=0"`
	DiagnosticsDB       string        `env:"BOARD_DIAGNOSTICS_DB"`
	UIErrorRate         float64       `env:"BOARD_UI_ERROR_RATE"         envDefault:"1"                     validate:"gte=0"`
	UIErrorBurst        int           `env:"BOARD_UI_ERROR_BURST"        envDefault:"10"                    validate:"gte=1"`
	TrustForwardedProto bool          `env:"BOARD_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a validated Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "board HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "capability API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "capability API request timeout")
	fs.StringVar(&cfg.DiagnosticsDB, "diagnostics-db", cfg.DiagnosticsDB, "optional SQLite path for UI failure reports")
	fs.Float64Var(&cfg.UIErrorRate, "ui-error-rate", cfg.UIErrorRate, "accepted browser error reports per second (0 disables limiting)")
	fs.IntVar(&cfg.UIErrorBurst, "ui-error-burst", cfg.UIErrorBurst, "browser error report burst")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for cookie and origin checks")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the board server and serves until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBoard, func(ctx context.Context) error {
		client, err := gateway.NewClient(cfg.APIBaseURL, gateway.WithTimeout(cfg.APITimeout))
		if err != nil {
			return fmt.Errorf("capability api client: %w", err)
		}

		var store diagnostics.Store
		if path := strings.TrimSpace(cfg.DiagnosticsDB); path != "" {
			sqliteStore, err := boardsqlite.Open(path)
			if err != nil {
				return fmt.Errorf("open diagnostics store: %w", err)
			}
			defer func() {
				if err := sqliteStore.Close(); err != nil {
					log.Printf("close diagnostics store: %v", err)
				}
			}()
			store = sqliteStore
		}

		server, err := boardservice.NewServer(ctx, boardservice.Config{
			HTTPAddr:       cfg.HTTPAddr,
			Gateway:        client,
			Recorder:       diagnostics.NewRecorder(log.Default(), store),
			UIErrorLimiter: diagnostics.NewLimiter(cfg.UIErrorRate, cfg.UIErrorBurst),
			SchemePolicy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Logger:         log.Default(),
		})
		if err != nil {
			return fmt.Errorf("build board server: %w", err)
		}
		defer server.Close()

		log.Printf("board listening addr=%s api=%s", server.Addr(), cfg.APIBaseURL)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve board: %w", err)
		}
		return nil
	})
}
