package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FormatLine renders r in the fixed field order the harness reads:
//
//	{"success": true, "error": null, "output": "Compilation successful", "runtime": 3}
func FormatLine(r Result) string {
	errTok := "null"
	if r.Error != nil {
		errTok = quote(*r.Error)
	}
	ms := r.RuntimeMS
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf(`{"success": %t, "error": %s, "output": %s, "runtime": %d}`,
		r.Success, errTok, quote(r.Output), ms)
}

// WriteLine writes r as a single newline-terminated line.
func WriteLine(w io.Writer, r Result) error {
	_, err := io.WriteString(w, FormatLine(r)+"\n")
	return err
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// strings always marshal; keep the line well-formed regardless
		return `""`
	}
	return string(b)
}

type wireResult struct {
	Success *bool   `json:"success"`
	Error   *string `json:"error"`
	Output  *string `json:"output"`
	Runtime *int64  `json:"runtime"`
}

// ParseLine decodes a result line as emitted by a probe. All four fields
// must be present; error may be null.
func ParseLine(line string) (Result, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}, errors.New("empty result line")
	}
	if strings.Contains(line, "\n") {
		return Result{}, errors.New("result must be a single line")
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Result{}, fmt.Errorf("decode result line: %w", err)
	}
	for _, k := range []string{"success", "error", "output", "runtime"} {
		if _, ok := raw[k]; !ok {
			return Result{}, fmt.Errorf("result line missing %q", k)
		}
	}

	var w wireResult
	if err := json.Unmarshal([]byte(line), &w); err != nil {
		return Result{}, fmt.Errorf("decode result line: %w", err)
	}
	switch {
	case w.Success == nil:
		return Result{}, errors.New("success must be a boolean")
	case w.Output == nil:
		return Result{}, errors.New("output must be a string")
	case w.Runtime == nil || *w.Runtime < 0:
		return Result{}, errors.New("runtime must be a non-negative integer")
	}

	return Result{
		Success:   *w.Success,
		Error:     w.Error,
		Output:    *w.Output,
		RuntimeMS: *w.Runtime,
	}, nil
}
