package dub

import (
	"errors"
	"io/fs"
	"os/exec"
	"runtime"
	"syscall"
	"testing"
)

// captureRunner records the argument vector it was asked to build and
// hands back a harmless command, so tests can observe dispatch without
// touching a real dub.
type captureRunner struct {
	args   []string
	called bool
}

func (r *captureRunner) Command(args ...string) *exec.Cmd {
	r.called = true
	r.args = args
	return exec.Command("true")
}

func TestExecutePassesRequestTokens(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX true binary")
	}
	t.Setenv(CompilerEnvVar, "")

	runner := &captureRunner{}
	req := &AddRequest{Packages: []string{"vibelog@1.0.0"}, Options: OptionSet{Yes: true}}

	code, err := Execute(runner, req)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if code != 0 {
		t.Errorf("Execute() code = %d, want 0", code)
	}
	want := []string{"add", "vibelog@1.0.0", "--yes"}
	if len(runner.args) != len(want) {
		t.Fatalf("runner args = %v, want %v", runner.args, want)
	}
	for i := range want {
		if runner.args[i] != want[i] {
			t.Errorf("runner args[%d] = %q, want %q", i, runner.args[i], want[i])
		}
	}
}

func TestExecutePreconditionSkipsSpawn(t *testing.T) {
	runner := &captureRunner{}
	req := &ConvertRequest{Format: FormatJSON, Dir: t.TempDir()}

	_, err := Execute(runner, req)
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("Execute() error = %T, want *PreconditionError", err)
	}
	if runner.called {
		t.Error("Execute() spawned a child despite a failed precondition")
	}
}

func TestDispatchExitCodePassthrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	code, err := Dispatch(exec.Command("sh", "-c", "exit 2"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if code != 2 {
		t.Errorf("Dispatch() code = %d, want 2", code)
	}
}

func TestDispatchZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	code, err := Dispatch(exec.Command("sh", "-c", "exit 0"))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if code != 0 {
		t.Errorf("Dispatch() code = %d, want 0", code)
	}
}

func TestDispatchStartFailureNotFound(t *testing.T) {
	_, err := Dispatch(exec.Command("/nonexistent/godub-test-binary"))
	if err == nil {
		t.Fatal("Dispatch() = nil error, want StartError")
	}
	var se *StartError
	if !errors.As(err, &se) {
		t.Fatalf("error = %T, want *StartError", err)
	}
	if se.Kind != StartNotFound {
		t.Errorf("Kind = %d, want StartNotFound", se.Kind)
	}
}

func TestClassifyStartError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StartKind
	}{
		{"not found", fs.ErrNotExist, StartNotFound},
		{"wrapped not found", &fs.PathError{Op: "fork/exec", Path: "dub", Err: fs.ErrNotExist}, StartNotFound},
		{"permission denied", fs.ErrPermission, StartPermission},
		{"resources unavailable", syscall.EAGAIN, StartUnavailable},
		{"anything else", errors.New("kaboom"), StartOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStartError(tt.err)
			if got.Kind != tt.want {
				t.Errorf("classifyStartError() kind = %d, want %d", got.Kind, tt.want)
			}
		})
	}
}

func TestStartErrorMessagesDistinct(t *testing.T) {
	notFound := (&StartError{Kind: StartNotFound}).Error()
	denied := (&StartError{Kind: StartPermission}).Error()

	if notFound == denied {
		t.Errorf("not-found and permission-denied messages must differ, both %q", notFound)
	}
	if notFound != "dub executable not found or not accessible" {
		t.Errorf("not-found message = %q", notFound)
	}
	if denied != "Permission denied when executing dub" {
		t.Errorf("permission message = %q", denied)
	}
}
