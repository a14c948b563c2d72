package dub

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// Runner builds a ready-to-run command for the resolved dub. Tests
// substitute a mock runner to inspect argument vectors without
// spawning anything.
type Runner interface {
	Command(args ...string) *exec.Cmd
}

// Command returns a command for the resolved dub with the three
// standard streams inherited, so dub's prompts and progress output
// reach the user directly. No buffering, no pipes.
func (e *Executable) Command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Execute checks the request's local preconditions, then runs dub with
// the request's tokens and blocks until it exits.
//
// The returned code is dub's own exit code and must be propagated
// verbatim. The error is non-nil only when dub was never run: a failed
// precondition or a classified start failure.
func Execute(r Runner, req Request) (int, error) {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return 0, err
		}
	}
	return Dispatch(r.Command(req.Tokens()...))
}

// Dispatch runs a fully built command synchronously and converts the
// OS outcome into an exit code or a classified start failure. A child
// terminated without a reported code (killed by a signal) maps to 1.
func Dispatch(cmd *exec.Cmd) (int, error) {
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return code, nil
	}
	return 0, classifyStartError(err)
}

// classifyStartError maps the OS error behind a failed spawn onto the
// start-failure buckets. Kept as a single table so new platforms or
// error kinds extend it without touching Dispatch.
func classifyStartError(err error) *StartError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &StartError{Kind: StartNotFound, cause: err}
	case errors.Is(err, fs.ErrPermission):
		return &StartError{Kind: StartPermission, cause: err}
	case errors.Is(err, syscall.EAGAIN):
		return &StartError{Kind: StartUnavailable, cause: err}
	default:
		return &StartError{Kind: StartOther, cause: err}
	}
}
