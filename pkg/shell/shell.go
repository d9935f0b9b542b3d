// Package shell runs check commands through the host command interpreter.
package shell

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Executor runs a command string and reports whether it succeeded.
type Executor interface {
	// Run executes command synchronously and returns true if it exited 0.
	// Launch failures and non-zero exits both return false.
	Run(command string) bool
}

// RealExecutor hands commands to sh -c (cmd /C on Windows).
// Nil streams default to the process's own, so command output is live.
type RealExecutor struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interpreter []string // e.g. {"bash", "-c"}; defaults to the platform shell
	Logger      *slog.Logger
}

// Run executes command and returns true if it exited with status 0.
func (e *RealExecutor) Run(command string) bool {
	log := e.logger()

	if strings.TrimSpace(command) == "" {
		log.Warn("empty command")
		return false
	}

	interp := e.Interpreter
	if len(interp) == 0 {
		interp = defaultInterpreter()
	}
	argv := append(append([]string{}, interp[1:]...), command)

	// #nosec G204 -- running the configured check command is the whole point.
	cmd := exec.Command(interp[0], argv...)
	cmd.Env = environ()
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Debug("running command", "command", command, "interpreter", interp[0])

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("command failed", "command", command, "exit_code", exitErr.ExitCode())
		} else {
			log.Warn("command could not be started", "command", command, "error", err)
		}
		return false
	}
	return true
}

func (e *RealExecutor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}

// MockExecutor is a test double for Executor.
type MockExecutor struct {
	RunFunc func(command string) bool
	Calls   []string
}

// Run records the command and calls the mock function.
// With no RunFunc set every command passes.
func (m *MockExecutor) Run(command string) bool {
	m.Calls = append(m.Calls, command)
	if m.RunFunc != nil {
		return m.RunFunc(command)
	}
	return true
}
