// Package runner executes a list of checks in order and collects their results.
package runner

import (
	"log/slog"

	"github.com/vertti/cicheck/pkg/check"
	"github.com/vertti/cicheck/pkg/shell"
)

// Runner runs checks sequentially.
type Runner struct {
	Executor shell.Executor // runs shell actions
	Logger   *slog.Logger
}

// New returns a Runner that uses exec for shell actions.
func New(exec shell.Executor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Executor: exec, Logger: logger}
}

// Run executes every check in order and returns one result per check,
// in the same order. A failing check never stops the run.
func (r *Runner) Run(checks []check.Check) []check.Result {
	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		r.logger().Debug("running check", "label", c.Label, "kind", c.Action.Kind)
		passed := r.runOne(c)
		r.logger().Debug("check finished", "label", c.Label, "passed", passed)
		results = append(results, check.Result{
			Label:  c.Label,
			Action: c.Action,
			Passed: passed,
		})
	}
	return results
}

func (r *Runner) runOne(c check.Check) bool {
	switch c.Action.Kind {
	case check.KindShell:
		if r.Executor == nil {
			r.logger().Warn("no executor configured", "label", c.Label)
			return false
		}
		return r.Executor.Run(c.Action.Command)
	case check.KindPredicate:
		return r.callPredicate(c)
	default:
		r.logger().Warn("unknown action kind", "label", c.Label, "kind", c.Action.Kind)
		return false
	}
}

// callPredicate invokes the predicate, recording a panic as a failure.
func (r *Runner) callPredicate(c check.Check) (passed bool) {
	if c.Action.Func == nil {
		r.logger().Warn("predicate is nil", "label", c.Label)
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger().Warn("predicate panicked", "label", c.Label, "panic", rec)
			passed = false
		}
	}()
	return c.Action.Func()
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
