package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RepoRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	runnerDir := filepath.Join(root, "vectors", "runners", "go")
	require.NoError(t, os.MkdirAll(runnerDir, 0o755))

	testCases := []struct {
		start    string
		levels   int
		valid    bool
		expected string
	}{
		{start: runnerDir, levels: 3, valid: true, expected: root},
		{start: runnerDir, levels: 1, valid: true, expected: filepath.Join(root, "vectors", "runners")},
		{start: runnerDir, levels: 0, valid: true, expected: runnerDir},
		{start: filepath.Join(root, "missing", "a", "b"), levels: 0, valid: false},
		{start: runnerDir, levels: -1, valid: false},
	}

	for _, tc := range testCases {
		resolved, err := RepoRoot(tc.start, tc.levels)
		if tc.valid {
			require.NoError(t, err)
			require.Equal(t, tc.expected, resolved)
		} else {
			require.Error(t, err)
		}
	}
}

func Test_RepoRoot_followsSymlinks(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "vectors"), 0o755))
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolved, err := RepoRoot(filepath.Join(link, "vectors"), 1)
	require.NoError(t, err)
	require.Equal(t, target, resolved)
}

func Test_RepoRoot_notADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := RepoRoot(file, 0)
	require.Error(t, err)
}

func Test_FileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o644))

	exists, err := FileExists(file)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = FileExists(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = FileExists(dir)
	require.ErrorContains(t, err, "found directory")
	require.False(t, exists)
}
