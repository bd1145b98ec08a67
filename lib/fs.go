package lib

import (
	"os"
	"path/filepath"

	"github.com/friendsofgo/errors"
)

// FileExists reports whether path names an existing file.
// A directory at path is an error, as is any stat failure other than "does not exist".
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to check path %s", path)
	}

	if info.IsDir() {
		return false, errors.Errorf("expected a file, but found directory %s", path)
	}

	return true, nil
}

// RepoRootFromExecutable resolves the project root by ascending levels directories from the
// directory of the running binary.
func RepoRootFromExecutable(levels int) (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "could not get the path of the current executable")
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve executable path %s", execPath)
	}

	return RepoRoot(filepath.Dir(execPath), levels)
}

// RepoRoot ascends levels parent directories from start and canonicalizes the result.
// The resolved path must exist and be a directory.
func RepoRoot(start string, levels int) (string, error) {
	if levels < 0 {
		return "", errors.Errorf("levels must not be negative: %d", levels)
	}

	path := start
	for i := 0; i < levels; i++ {
		path = filepath.Join(path, "..")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to convert %s to an absolute path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve repo root %s", abs)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve repo root %s", resolved)
	}
	if !info.IsDir() {
		return "", errors.Errorf("repo root is not a directory: %s", resolved)
	}

	return resolved, nil
}
