package invoker

import (
	"fmt"
	"strings"
)

// MissingInputError means the test file itself does not exist. It is reported
// before any scratch resources are allocated.
type MissingInputError struct {
	Path string
	Err  error
}

func (e MissingInputError) Error() string {
	return fmt.Sprintf("test file %s cannot be read: %s", e.Path, e.Err)
}

func (e MissingInputError) Unwrap() error { return e.Err }

// MissingFixtureError means an expected-output fixture file is absent. An
// empty fixture file is valid and is not this error.
type MissingFixtureError struct {
	Stream string
	Path   string
}

func (e MissingFixtureError) Error() string {
	return fmt.Sprintf("expected %s fixture %s does not exist", e.Stream, e.Path)
}

// LaunchError means the subject program could not be started at all, as
// opposed to starting and then exiting with an error status.
type LaunchError struct {
	Command string
	Err     error
}

func (e LaunchError) Error() string {
	return fmt.Sprintf("could not launch subject program (%s): %s", e.Command, e.Err)
}

func (e LaunchError) Unwrap() error { return e.Err }

// StreamMismatch describes how one captured stream differed from its fixture.
type StreamMismatch struct {
	Stream string
	Diff   string
}

// MismatchError reports every stream whose captured content differed from its
// fixture. This is the ordinary failure mode of a test run, not a fault.
type MismatchError struct {
	Mismatches []StreamMismatch
}

func (e MismatchError) Error() string {
	var sb strings.Builder
	for i, m := range e.Mismatches {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "captured %s did not match fixture:\n%s", m.Stream, m.Diff)
	}
	return sb.String()
}
