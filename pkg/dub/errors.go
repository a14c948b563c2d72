package dub

import "fmt"

// NotFoundError reports that no dub candidate answered the liveness
// probe. Candidates is the probe order that was tried.
type NotFoundError struct {
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return "dub executable not found. Install DUB from https://dub.pm"
}

// PreconditionError reports a local check that failed before any child
// process was spawned.
type PreconditionError struct {
	File string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("Source file '%s' not found", e.File)
}

// StartKind buckets the reasons a resolved executable can fail to
// start. Not-found and permission-denied are operationally different
// failures and must stay distinguishable.
type StartKind int

const (
	StartOther StartKind = iota
	StartNotFound
	StartPermission
	StartUnavailable
)

// startMessages maps each bucket to its fixed operator-facing message.
var startMessages = map[StartKind]string{
	StartNotFound:    "dub executable not found or not accessible",
	StartPermission:  "Permission denied when executing dub",
	StartUnavailable: "System resources temporarily unavailable",
	StartOther:       "Failed to execute dub",
}

// StartError reports that the child process could not be launched at
// all, as opposed to running and exiting non-zero.
type StartError struct {
	Kind  StartKind
	cause error
}

func (e *StartError) Error() string { return startMessages[e.Kind] }

func (e *StartError) Unwrap() error { return e.cause }
