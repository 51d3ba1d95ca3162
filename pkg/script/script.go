// Package script provides the optional Lisp configuration surface. A
// config script runs in a sandboxed zygomys environment whose builtins
// set fields of a config.Config; the sandbox exposes nothing else, so a
// script can reach exactly the recognized configuration record.
package script

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"stringmesh/pkg/config"
)

// EvalTimeout is the hard limit for a single script evaluation.
const EvalTimeout = 5 * time.Second

// EvalError is a non-fatal script failure, such as a parse error or a
// bad builtin argument, with a source line number where zygomys
// provides one.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

type evalResult struct {
	cfg    *config.Config
	errors []EvalError
	err    error
}

// Evaluate runs a config script and returns the resulting configuration.
// The script starts from config.Default(), so it only needs to state
// what it changes; empty source is a valid script.
//
// Return semantics:
//   - success: config + nil errors + nil error
//   - parse/eval failure: nil config + eval errors + nil error
//   - fatal failure (timeout, panic): nil + nil + error
func Evaluate(source string) (*config.Config, []EvalError, error) {
	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		cfg, evalErrs := evaluate(source)
		ch <- evalResult{cfg: cfg, errors: evalErrs}
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.cfg, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("script: evaluation timed out after %s", EvalTimeout)
	}
}

// LoadFile reads and evaluates the config script at path, flattening
// eval errors into a single error.
func LoadFile(path string) (*config.Config, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	cfg, evalErrs, err := Evaluate(string(source))
	if err != nil {
		return nil, err
	}
	if len(evalErrs) > 0 {
		msgs := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("script: %s: %s", path, strings.Join(msgs, "; "))
	}
	return cfg, nil
}

// evaluate runs the script in a fresh sandbox. Each call gets its own
// environment for determinism.
func evaluate(source string) (*config.Config, []EvalError) {
	cfg := config.Default()
	if strings.TrimSpace(source) == "" {
		return cfg, nil
	}

	// Sandbox mode keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, cfg)

	if err := env.LoadString(preprocess(source)); err != nil {
		return nil, parseZygoError(err)
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygoError(err)
	}

	return cfg, nil
}

// linePattern matches zygomys messages of the form "... on line N: ...".
var linePattern = regexp.MustCompile(`(?i)on line (\d+):\s*(.*)`)

// parseZygoError converts a zygomys error into EvalError values, pulling
// out a line number when the message carries one.
func parseZygoError(err error) []EvalError {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
