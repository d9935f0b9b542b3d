package cicheck_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vertti/cicheck/pkg/check"
	"github.com/vertti/cicheck/pkg/output"
	"github.com/vertti/cicheck/pkg/predicate"
	"github.com/vertti/cicheck/pkg/runner"
	"github.com/vertti/cicheck/pkg/shell"
)

// Integration tests run the real executor, runner and printer together.
// Unit tests in each package cover edge cases.

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIntegration_FullRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX sh syntax")
	}

	dir := t.TempDir()
	lockfile := filepath.Join(dir, "pnpm-lock.yaml")
	if err := os.WriteFile(lockfile, []byte("lockfileVersion: 9\n"), 0o600); err != nil {
		t.Fatalf("failed to create lockfile: %v", err)
	}

	var cmdOut bytes.Buffer
	exec := &shell.RealExecutor{Stdout: &cmdOut, Stderr: &cmdOut, Logger: quietLogger()}

	checks := []check.Check{
		{Label: "Lint", Action: check.Shell("echo linting && exit 0")},
		{Label: "Lockfile", Action: predicate.FileExists(lockfile)},
		{Label: "Build", Action: check.Shell("exit 2")},
	}

	results := runner.New(exec, quietLogger()).Run(checks)

	var table bytes.Buffer
	(&output.Printer{Out: &table}).PrintResults(results)

	if check.AllPassed(results) {
		t.Error("AllPassed() = true, want false")
	}
	if !strings.Contains(cmdOut.String(), "linting") {
		t.Errorf("command output not streamed: %q", cmdOut.String())
	}

	expected := "\nResults:\n" +
		"✅ Lint     | echo linting && exit 0\n" +
		"✅ Lockfile | file: " + lockfile + "\n" +
		"❌ Build    | exit 2\n" +
		"\n"
	if table.String() != expected {
		t.Errorf("table = %q, want %q", table.String(), expected)
	}
}

func TestIntegration_AllPass(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX sh syntax")
	}

	exec := &shell.RealExecutor{Stdout: io.Discard, Stderr: io.Discard, Logger: quietLogger()}
	results := runner.New(exec, quietLogger()).Run([]check.Check{
		{Label: "Unit", Action: check.Shell("exit 0")},
		{Label: "Shell", Action: predicate.CommandOnPath("sh")},
	})

	if !check.AllPassed(results) {
		t.Errorf("AllPassed() = false, results: %+v", results)
	}
}
