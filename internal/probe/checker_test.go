package probe

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultFs fails every Open with err.
type faultFs struct {
	afero.Fs
	err error
}

func (f faultFs) Open(string) (afero.File, error) { return nil, f.err }

// closeErrFs hands out files whose Close fails.
type closeErrFs struct{ afero.Fs }

func (c closeErrFs) Open(name string) (afero.File, error) {
	f, err := c.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return closeErrFile{f}, nil
}

type closeErrFile struct{ afero.File }

func (closeErrFile) Close() error { return errors.New("input/output error") }

func TestCompilationChecker_InputAbsent(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/workspace", 0o755))

	out := NewCompilationChecker(afero.NewReadOnlyFs(mem), "/workspace/input.txt").Check(context.Background())
	assert.Equal(t, StatusInputAbsent, out.Status)
	assert.NoError(t, out.Err)
}

func TestCompilationChecker_WorkspaceMissingCountsAsAbsent(t *testing.T) {
	out := NewCompilationChecker(afero.NewMemMapFs(), "/workspace/input.txt").Check(context.Background())
	assert.Equal(t, StatusInputAbsent, out.Status)
}

func TestCompilationChecker_EmptyInputPresent(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/workspace/input.txt", nil, 0o644))

	out := NewCompilationChecker(afero.NewReadOnlyFs(mem), "/workspace/input.txt").Check(context.Background())
	assert.Equal(t, StatusInputPresent, out.Status)

	// the checker never modifies the workspace
	b, err := afero.ReadFile(mem, "/workspace/input.txt")
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestCompilationChecker_ParentIsFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "workspace")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))

	out := NewCompilationChecker(afero.NewOsFs(), filepath.Join(parent, "input.txt")).Check(context.Background())
	assert.Equal(t, StatusInputAbsent, out.Status)
}

func TestCompilationChecker_PermissionDeniedIsFault(t *testing.T) {
	perm := &fs.PathError{Op: "open", Path: "/workspace/input.txt", Err: fs.ErrPermission}
	c := NewCompilationChecker(faultFs{Fs: afero.NewMemMapFs(), err: perm}, "/workspace/input.txt")

	out := c.Check(context.Background())
	require.Equal(t, StatusFault, out.Status)
	assert.ErrorIs(t, out.Err, fs.ErrPermission)
}

func TestCompilationChecker_CloseErrorIsFault(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/workspace/input.txt", []byte("1 2\n"), 0o644))

	out := NewCompilationChecker(closeErrFs{mem}, "/workspace/input.txt").Check(context.Background())
	require.Equal(t, StatusFault, out.Status)
	assert.Contains(t, out.Err.Error(), "input/output error")
}

func TestCompilationChecker_CancelledContextIsFault(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewCompilationChecker(afero.NewMemMapFs(), "/workspace/input.txt").Check(ctx)
	require.Equal(t, StatusFault, out.Status)
	assert.ErrorIs(t, out.Err, context.Canceled)
}
