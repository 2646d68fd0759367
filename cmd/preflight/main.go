// cmd/preflight/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/hamed0406/compileprobe/internal/config"
)

func main() {
	os.Exit(preflight(os.Stdout, os.Stderr, afero.NewOsFs()))
}

// preflight checks the probe's environment the same way the probe reads it
// and returns the exit code.
func preflight(stdout, stderr io.Writer, fsys afero.Fs) int {
	warn := func(msg string) { fmt.Fprintln(stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Fprintln(stdout, "✔", msg) }

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, "✖", err)
		return 1
	}
	ok("PROBE_WORKSPACE=" + cfg.Workspace)

	if info, err := fsys.Stat(cfg.Workspace); err != nil {
		warn("workspace " + cfg.Workspace + " not found; the sandbox must mount it before the probe runs.")
	} else if !info.IsDir() {
		warn("workspace " + cfg.Workspace + " is not a directory.")
	}

	if exists, err := afero.Exists(fsys, cfg.InputPath()); err != nil {
		warn("cannot stat " + cfg.InputPath() + ": " + err.Error())
	} else if exists {
		warn(cfg.InputPath() + " exists; the probe will report a failure for this workspace.")
	} else {
		ok("no input file at " + cfg.InputPath())
	}

	if cfg.LogDir == "" {
		warn("PROBE_LOG_DIR empty — diagnostic logging disabled.")
	} else {
		ok("PROBE_LOG_DIR=" + cfg.LogDir)
	}

	ok("preflight passed")
	return 0
}
