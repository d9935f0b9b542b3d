package check

import (
	"reflect"
	"runtime"
	"strings"
)

// Kind identifies which variant an Action holds.
type Kind int

const (
	KindShell Kind = iota
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindShell:
		return "shell"
	case KindPredicate:
		return "predicate"
	default:
		return "unknown"
	}
}

// Action is what a check does: either a shell command handed to the host
// interpreter, or an in-process predicate. Use Shell or Predicate to build one.
type Action struct {
	Kind    Kind
	Command string      // set for KindShell
	Name    string      // set for KindPredicate
	Func    func() bool // set for KindPredicate
}

// Shell returns an action that runs command through the host shell.
func Shell(command string) Action {
	return Action{Kind: KindShell, Command: command}
}

// Predicate returns an action that calls fn in-process.
// If name is empty the function's symbol name is used for display.
func Predicate(name string, fn func() bool) Action {
	return Action{Kind: KindPredicate, Name: name, Func: fn}
}

// String returns the command for shell actions and the predicate name otherwise.
func (a Action) String() string {
	if a.Kind == KindShell {
		return a.Command
	}
	if a.Name != "" {
		return a.Name
	}
	return funcName(a.Func)
}

// funcName returns the short symbol name of fn, e.g. "main.nodeModulesPresent"
// becomes "nodeModulesPresent". Closures keep their generated suffix.
func funcName(fn func() bool) string {
	if fn == nil {
		return "<nil>"
	}
	full := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return full
}

// Check pairs a human-readable label with the action that verifies it.
type Check struct {
	Label  string
	Action Action
}
