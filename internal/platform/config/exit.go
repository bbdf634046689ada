package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitOnError exits when startup failed. A -help request exits 0 since the
// flag package already printed usage.
func ExitOnError(step string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	Exitf("%s: %v", step, err)
}
