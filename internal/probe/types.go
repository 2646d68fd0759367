package probe

import "time"

const (
	MsgCompilationSuccessful = "Compilation successful"
	ErrCompilationOnly       = "This runner should only be used for compilation testing"
	RuntimeErrorPrefix       = "Runtime Error: "
)

// Result is the single line a probe invocation reports to the judging harness.
type Result struct {
	Success   bool    `json:"success"`
	Error     *string `json:"error"`
	Output    string  `json:"output"`
	RuntimeMS int64   `json:"runtime"`
}

// ExitCode maps the result onto the process exit status the harness expects.
func (r Result) ExitCode() int {
	if r.Success {
		return 0
	}
	return 1
}

// Result converts the outcome into the reported result, stamping it with
// the elapsed probe time.
func (o Outcome) Result(elapsed time.Duration) Result {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	switch o.Status {
	case StatusInputAbsent:
		return Result{Success: true, Output: MsgCompilationSuccessful, RuntimeMS: ms}
	case StatusInputPresent:
		return failure(ErrCompilationOnly, ms)
	default:
		desc := "unknown fault"
		if o.Err != nil && o.Err.Error() != "" {
			desc = o.Err.Error()
		}
		return failure(RuntimeErrorPrefix+desc, ms)
	}
}

func failure(msg string, ms int64) Result {
	return Result{Success: false, Error: &msg, Output: "", RuntimeMS: ms}
}
