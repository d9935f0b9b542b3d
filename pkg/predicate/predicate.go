// Package predicate provides in-process checks for use in a check registry.
package predicate

import (
	"os"
	"os/exec"

	"github.com/vertti/cicheck/pkg/check"
)

// EnvGetter abstracts environment lookup for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// FileStater abstracts os.Stat for testability.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// PathLooker abstracts executable lookup for testability.
type PathLooker interface {
	LookPath(file string) (string, error)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// RealFileStater uses os.Stat.
type RealFileStater struct{}

func (r *RealFileStater) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// RealPathLooker searches PATH.
type RealPathLooker struct{}

func (r *RealPathLooker) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// EnvSet passes when key is set to a non-empty value.
func EnvSet(key string) check.Action {
	return envSet(&RealEnvGetter{}, key)
}

func envSet(g EnvGetter, key string) check.Action {
	return check.Predicate("env: "+key, func() bool {
		v, ok := g.LookupEnv(key)
		return ok && v != ""
	})
}

// FileExists passes when path exists and is a regular file.
func FileExists(path string) check.Action {
	return fileExists(&RealFileStater{}, path)
}

func fileExists(fs FileStater, path string) check.Action {
	return check.Predicate("file: "+path, func() bool {
		info, err := fs.Stat(path)
		return err == nil && info.Mode().IsRegular()
	})
}

// DirExists passes when path exists and is a directory.
func DirExists(path string) check.Action {
	return dirExists(&RealFileStater{}, path)
}

func dirExists(fs FileStater, path string) check.Action {
	return check.Predicate("dir: "+path, func() bool {
		info, err := fs.Stat(path)
		return err == nil && info.IsDir()
	})
}

// CommandOnPath passes when name resolves to an executable on PATH.
func CommandOnPath(name string) check.Action {
	return commandOnPath(&RealPathLooker{}, name)
}

func commandOnPath(l PathLooker, name string) check.Action {
	return check.Predicate("cmd: "+name, func() bool {
		_, err := l.LookPath(name)
		return err == nil
	})
}
