package probe

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

type Runner struct {
	Logger  *zap.Logger
	Checker Checker
	Clock   clock.Clock
}

func NewRunner(logger *zap.Logger, checker Checker, clk clock.Clock) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Runner{Logger: logger, Checker: checker, Clock: clk}
}

// Run performs one timed check and returns the result to report. It never
// fails: every fault, including a panic inside the checker, becomes a
// "Runtime Error" result.
func (r *Runner) Run(ctx context.Context) Result {
	var out Outcome
	elapsed := Measure(r.Clock, func() {
		out = r.safeCheck(ctx)
	})
	res := out.Result(elapsed)

	fields := []zap.Field{
		zap.Bool("success", res.Success),
		zap.String("status", out.Status.String()),
		zap.Int64("runtime_ms", res.RuntimeMS),
	}
	if out.Err != nil {
		fields = append(fields, zap.Error(out.Err))
	}
	if res.Success {
		r.Logger.Info("probe_result", fields...)
	} else {
		r.Logger.Warn("probe_result", fields...)
	}
	return res
}

func (r *Runner) safeCheck(ctx context.Context) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = Faulted(fmt.Errorf("panic: %v", p))
		}
	}()
	if r.Checker == nil {
		return Faulted(fmt.Errorf("no checker configured"))
	}
	return r.Checker.Check(ctx)
}
