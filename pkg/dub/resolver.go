package dub

import (
	"os/exec"
	"runtime"
)

// probeArg is the harmless argument used to confirm a candidate is a
// working dub executable.
const probeArg = "--version"

// Executable is the confirmed-runnable dub binary. It is resolved once
// per process run, before any subcommand logic, and never mutated.
type Executable struct {
	// Path is the name or path that answered the probe; it may be
	// PATH-relative.
	Path string
	// Candidates is the probe order that produced Path.
	Candidates []string
}

// prober reports whether a candidate name responds to the liveness
// probe. Tests substitute their own.
type prober func(name string) bool

// runProbe starts the candidate with the probe argument, discarding
// its output. A zero exit status means the candidate is alive; a
// same-named binary that is not dub typically exits non-zero and is
// treated as absent.
func runProbe(name string) bool {
	return exec.Command(name, probeArg).Run() == nil
}

// Candidates returns the executable names to probe, most specific
// first. A non-empty override (from GODUB_DUB) is probed ahead of the
// platform names; on Windows the .exe-suffixed name is tried before
// the bare one.
func Candidates(override string) []string {
	var names []string
	if override != "" {
		names = append(names, override)
	}
	if runtime.GOOS == "windows" {
		names = append(names, "dub.exe")
	}
	return append(names, "dub")
}

// Resolve probes the platform candidates and returns the first one
// that answers. Callers hold the result for the rest of the run; it is
// never re-resolved.
func Resolve(override string) (*Executable, error) {
	return resolveWith(Candidates(override), runProbe)
}

func resolveWith(candidates []string, alive prober) (*Executable, error) {
	for _, name := range candidates {
		if alive(name) {
			return &Executable{Path: name, Candidates: candidates}, nil
		}
	}
	return nil, &NotFoundError{Candidates: candidates}
}
