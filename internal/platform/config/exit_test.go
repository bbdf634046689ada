package config_test

import (
	"errors"
	"flag"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/capabilityboard/internal/platform/config"
)

func runSubprocess(t *testing.T, testName string, env string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+testName+"$")
	cmd.Env = append(os.Environ(), env+"=1")
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return string(out), exitErr.ExitCode()
}

// os.Exit cannot be intercepted in-process, so these tests re-run the
// binary with a marker variable.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	out, code := runSubprocess(t, "TestExitf_ExitsWithCode1", "TEST_EXITF_SUBPROCESS")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out, "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", out)
	}
}

func TestExitOnError_PrefixesStep(t *testing.T) {
	if os.Getenv("TEST_EXIT_ON_ERROR_SUBPROCESS") == "1" {
		config.ExitOnError("parse flags", errors.New("bad url"))
		return
	}

	out, code := runSubprocess(t, "TestExitOnError_PrefixesStep", "TEST_EXIT_ON_ERROR_SUBPROCESS")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out, "parse flags: bad url") {
		t.Fatalf("expected stderr to contain step prefix, got %q", out)
	}
}

func TestExitOnError_HelpExitsZero(t *testing.T) {
	if os.Getenv("TEST_EXIT_HELP_SUBPROCESS") == "1" {
		config.ExitOnError("parse flags", flag.ErrHelp)
		return
	}

	_, code := runSubprocess(t, "TestExitOnError_HelpExitsZero", "TEST_EXIT_HELP_SUBPROCESS")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestExitOnError_NilIsNoop(t *testing.T) {
	config.ExitOnError("parse flags", nil)
}
