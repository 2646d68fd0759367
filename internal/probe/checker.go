package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/spf13/afero"
)

// CompilationChecker confirms that no runtime input file was placed in a
// compile-only workspace. It only ever opens Path for reading.
type CompilationChecker struct {
	Fs   afero.Fs
	Path string
}

func NewCompilationChecker(fsys afero.Fs, path string) *CompilationChecker {
	return &CompilationChecker{Fs: fsys, Path: path}
}

func (c *CompilationChecker) Check(ctx context.Context) Outcome {
	if err := ctx.Err(); err != nil {
		return Faulted(err)
	}

	f, err := c.Fs.Open(c.Path)
	if err != nil {
		if isAbsent(err) {
			return Absent()
		}
		return Faulted(err)
	}
	if err := f.Close(); err != nil {
		return Faulted(fmt.Errorf("close %s: %w", c.Path, err))
	}
	return Present()
}

// isAbsent reports whether err means the path does not exist. A missing
// parent directory (or a parent that is a regular file) counts as absent;
// anything else, permission errors included, is a fault.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
