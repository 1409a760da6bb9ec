package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "ufood", "data")

	got, err := EnsureDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	_, err := EnsureDir(dir)
	require.NoError(t, err)
	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestEnsureDir_FailsWhenPathIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(file, "sub"))
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.ufood")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".ufood"), got)

	got, err = ExpandHome("/var/lib/ufood")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/ufood", got)
}

func TestResolveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	got, err := ResolveFile(dir, "session.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "session.db"), got)

	abs := filepath.Join(t.TempDir(), "elsewhere", "other.db")
	got, err = ResolveFile(dir, abs)
	require.NoError(t, err)
	require.Equal(t, abs, got)
	_, err = os.Stat(filepath.Dir(abs))
	require.NoError(t, err)
}
