// Package framework contains the test harness infrastructure that is not specific
// to any particular program under test.
//
// The general model is:
//
// 1. Each test case is identified by a TestID and produces a TestResult; a whole
// run accumulates Results.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results, with debug output captured per test.
//
// 3. Tests can be selected or excluded with regex filters on their identifiers.
//
// The domain-specific code that knows what is being tested (here, running an
// interpreter against golden input/output files) lives on top of this package.
package framework
