package invoker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"

	"github.com/AgustinCB/smoked/framework"
)

const (
	// DefaultSearchPathFlag is the flag the smoked interpreter takes for its
	// module search path.
	DefaultSearchPathFlag = "-p"

	// DefaultOutSuffix and DefaultErrSuffix are appended to a test file path
	// to locate its fixtures.
	DefaultOutSuffix = ".out"
	DefaultErrSuffix = ".err"
)

// Invoker knows how to run the subject program for one test case and verify
// its captured streams. The zero value is not usable; construct with New.
type Invoker struct {
	// SubjectPath is the command for the program under test. It is not
	// validated in advance; a bad path surfaces as a LaunchError.
	SubjectPath string

	// SearchPath is passed to the subject unexamined, after SearchPathFlag.
	SearchPath     string
	SearchPathFlag string

	OutSuffix string
	ErrSuffix string

	// Logger receives per-invocation debug output. Never nil after New.
	Logger framework.Logger
}

func New(subjectPath, searchPath string) *Invoker {
	return &Invoker{
		SubjectPath:    subjectPath,
		SearchPath:     searchPath,
		SearchPathFlag: DefaultSearchPathFlag,
		OutSuffix:      DefaultOutSuffix,
		ErrSuffix:      DefaultErrSuffix,
		Logger:         framework.NullLogger(),
	}
}

// Run executes one test case end to end: allocate a scratch directory, run
// the subject with the test file on stdin, capture its output and error
// streams, and compare both against the fixtures next to the test file.
//
// A nil return means both streams matched. The error otherwise carries the
// full story: a MismatchError with a diff per differing stream, and/or a
// MissingFixtureError per absent fixture. The subject's own exit status is
// never part of the verdict; it is only logged.
//
// The scratch directory is removed before Run returns on every path,
// including panics and context cancellation. A deletion failure is logged as
// a warning and does not change the verdict.
func (inv *Invoker) Run(ctx context.Context, testPath string) error {
	if _, err := os.Stat(testPath); err != nil {
		return MissingInputError{Path: testPath, Err: err}
	}

	scratch, err := newScratchDir(newRunID())
	if err != nil {
		return fmt.Errorf("could not allocate scratch directory: %w", err)
	}
	defer func() {
		if err := scratch.Release(); err != nil {
			inv.logger().Printf("warning: could not remove scratch directory %s: %s", scratch.Path(), err)
		}
	}()

	if err := inv.capture(ctx, testPath, scratch); err != nil {
		return err
	}

	// Both streams are always checked, so a run with two problems reports
	// both of them rather than just the first.
	var errs []error
	var mismatches []StreamMismatch
	streams := []struct {
		name     string
		captured string
		fixture  string
	}{
		{"stdout", scratch.OutFile(), testPath + inv.outSuffix()},
		{"stderr", scratch.ErrFile(), testPath + inv.errSuffix()},
	}
	for _, s := range streams {
		diff, err := compareStream(s.name, s.captured, s.fixture)
		switch {
		case err != nil:
			errs = append(errs, err)
		case diff != "":
			mismatches = append(mismatches, StreamMismatch{Stream: s.name, Diff: diff})
		}
	}
	if len(mismatches) > 0 {
		errs = append(errs, MismatchError{Mismatches: mismatches})
	}
	return errors.Join(errs...)
}

// capture launches the subject and waits for it to terminate with both
// stream files fully written and closed.
func (inv *Invoker) capture(ctx context.Context, testPath string, scratch *ScratchDir) error {
	input, err := os.Open(testPath)
	if err != nil {
		return MissingInputError{Path: testPath, Err: err}
	}
	defer input.Close()

	outFile, err := os.Create(scratch.OutFile())
	if err != nil {
		return fmt.Errorf("could not create captured stdout file: %w", err)
	}
	errFile, err := os.Create(scratch.ErrFile())
	if err != nil {
		outFile.Close()
		return fmt.Errorf("could not create captured stderr file: %w", err)
	}

	cmd := exec.CommandContext(ctx, inv.SubjectPath, inv.searchPathFlag(), inv.SearchPath)
	cmd.Stdin = input
	cmd.Stdout = outFile
	cmd.Stderr = errFile

	inv.logger().Printf("running: %s < %s", shellescape.QuoteCommand(cmd.Args), testPath)

	runErr := cmd.Run()
	closeOutErr := outFile.Close()
	closeErrErr := errFile.Close()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Only stream content decides the verdict; a non-zero exit can
			// still be a passing test.
			inv.logger().Printf("subject exited with %s (informational only)", exitErr.ProcessState)
		} else {
			return LaunchError{Command: inv.SubjectPath, Err: runErr}
		}
	}
	if closeOutErr != nil {
		return fmt.Errorf("could not finish writing captured stdout: %w", closeOutErr)
	}
	if closeErrErr != nil {
		return fmt.Errorf("could not finish writing captured stderr: %w", closeErrErr)
	}
	return nil
}

func (inv *Invoker) logger() framework.Logger {
	if inv.Logger == nil {
		return framework.NullLogger()
	}
	return inv.Logger
}

func (inv *Invoker) searchPathFlag() string {
	if inv.SearchPathFlag == "" {
		return DefaultSearchPathFlag
	}
	return inv.SearchPathFlag
}

func (inv *Invoker) outSuffix() string {
	if inv.OutSuffix == "" {
		return DefaultOutSuffix
	}
	return inv.OutSuffix
}

func (inv *Invoker) errSuffix() string {
	if inv.ErrSuffix == "" {
		return DefaultErrSuffix
	}
	return inv.ErrSuffix
}
