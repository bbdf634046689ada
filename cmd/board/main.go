// Package main starts the capability board web front end and handles termination.
//
// The process renders the capability list and proxies registration changes
// to the external capability API, which owns all registration state.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	boardcmd "github.com/louisbranch/capabilityboard/internal/cmd/board"
	"github.com/louisbranch/capabilityboard/internal/platform/config"
)

func main() {
	cfg, err := boardcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError("parse flags", err)
	log.SetPrefix("[BOARD] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := boardcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
