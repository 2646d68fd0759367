package probe

import (
	"context"
	"errors"
)

// Status classifies what a Checker found in the workspace.
type Status int

const (
	// StatusInputAbsent is the healthy case: a compile-only workspace has no input.
	StatusInputAbsent Status = iota
	// StatusInputPresent means runtime input leaked into the workspace.
	StatusInputPresent
	// StatusFault means the check itself could not complete.
	StatusFault
)

func (s Status) String() string {
	switch s {
	case StatusInputAbsent:
		return "input_absent"
	case StatusInputPresent:
		return "input_present"
	case StatusFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Outcome is the explicit result of a single check. Err is set only for
// StatusFault.
type Outcome struct {
	Status Status
	Err    error
}

func Absent() Outcome  { return Outcome{Status: StatusInputAbsent} }
func Present() Outcome { return Outcome{Status: StatusInputPresent} }

// Faulted wraps err as a fault outcome. A nil err still produces a usable
// description.
func Faulted(err error) Outcome {
	if err == nil {
		err = errors.New("unknown fault")
	}
	return Outcome{Status: StatusFault, Err: err}
}

// Checker inspects a workspace and reports what it found.
type Checker interface {
	Check(ctx context.Context) Outcome
}
