//go:build !windows

package shell

// defaultInterpreter returns the POSIX shell invocation.
func defaultInterpreter() []string {
	return []string{"sh", "-c"}
}
