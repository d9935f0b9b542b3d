//go:build windows

package shell

// defaultInterpreter returns the cmd.exe invocation.
// Windows has no sh by default, so commands go through cmd /C.
func defaultInterpreter() []string {
	return []string{"cmd", "/C"}
}
