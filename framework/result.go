package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Results is the accumulated outcome of a whole test run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

// OK returns true if no test in the run failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test, possibly nested inside a group.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestFailure associates an error with the test that produced it.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the whole run to dest, with the verdict
// line in green or red.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		color.New(color.FgGreen).Fprintf(dest, "All tests passed (%d)\n", len(results.Tests))
		return
	}
	color.New(color.FgRed).Fprintf(dest, "FAILED: %d of %d tests\n",
		len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  %s\n", f.TestID)
	}
}
