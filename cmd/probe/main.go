package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hamed0406/compileprobe/internal/config"
	"github.com/hamed0406/compileprobe/internal/logging"
	"github.com/hamed0406/compileprobe/internal/probe"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, afero.NewOsFs(), clock.New()))
}

// run writes exactly one result line to stdout and returns the exit code.
func run(ctx context.Context, stdout io.Writer, fsys afero.Fs, clk clock.Clock) int {
	start := clk.Now()

	cfg, err := config.FromEnv()
	if err != nil {
		return emit(stdout, probe.Faulted(err).Result(clk.Since(start)))
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		// the log is diagnostic only; never let it change the verdict
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	path := cfg.InputPath()
	runner := probe.NewRunner(logger.With(zap.String("input_path", path)), probe.NewCompilationChecker(fsys, path), clk)
	return emit(stdout, runner.Run(ctx))
}

func emit(w io.Writer, res probe.Result) int {
	if err := probe.WriteLine(w, res); err != nil {
		fmt.Fprintln(os.Stderr, "write result:", err)
		return 1
	}
	return res.ExitCode()
}
