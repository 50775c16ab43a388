// Package invoker runs a single golden-file test case: it feeds the test file
// to the subject interpreter's standard input, captures the interpreter's
// standard output and standard error into a per-invocation scratch directory,
// and compares each captured stream byte-for-byte against the recorded
// fixtures that sit next to the test file.
//
// The one hard guarantee is that the scratch directory never outlives the
// invocation, whatever happens in between: pass, mismatch, launch failure,
// panic, or cancellation of the provided context.
package invoker
