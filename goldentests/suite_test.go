package goldentests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgustinCB/smoked/framework"
	"github.com/AgustinCB/smoked/invoker"
)

// fakeInterpreter copies stdin to stdout, ignoring the -p flag.
const fakeInterpreter = "#!/bin/sh\ncat\n"

func writeInterpreter(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smoked.sh")
	require.NoError(t, os.WriteFile(path, []byte(fakeInterpreter), 0o755))
	return path
}

func addTest(t *testing.T, testsDir, relPath, source, expectedOut string) {
	t.Helper()
	path := filepath.Join(testsDir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	require.NoError(t, os.WriteFile(path+".out", []byte(expectedOut), 0o644))
	require.NoError(t, os.WriteFile(path+".err", nil, 0o644))
}

func resultNames(results []framework.TestResult) []string {
	var names []string
	for _, r := range results {
		if r.TestID.String() != "" { // drop the root context entry
			names = append(names, r.TestID.String())
		}
	}
	return names
}

func TestDiscoverTestsSkipsFixturesAndSortsLexically(t *testing.T) {
	testsDir := t.TempDir()
	addTest(t, testsDir, "strings/concat.lox", "b\n", "b\n")
	addTest(t, testsDir, "arith.lox", "a\n", "a\n")

	files, err := DiscoverTests(testsDir)

	require.NoError(t, err)
	want := []string{"arith.lox", filepath.Join("strings", "concat.lox")}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("unexpected discovery result (-want +got):\n%s", diff)
	}
}

func TestDiscoverTestsMissingDirectory(t *testing.T) {
	_, err := DiscoverTests(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRunTestSuiteNamesTestsByRelativePath(t *testing.T) {
	testsDir := t.TempDir()
	addTest(t, testsDir, "arith.lox", "2\n", "2\n")
	addTest(t, testsDir, "strings/concat.lox", "ab\n", "ab\n")
	inv := invoker.New(writeInterpreter(t), "imports")

	results, err := RunTestSuite(context.Background(), inv, testsDir, nil, nil)

	require.NoError(t, err)
	assert.True(t, results.OK())
	want := []string{"arith", "strings/concat"}
	if diff := cmp.Diff(want, resultNames(results.Tests)); diff != "" {
		t.Errorf("unexpected test names (-want +got):\n%s", diff)
	}
}

func TestRunTestSuiteRecordsMismatchesAsFailures(t *testing.T) {
	testsDir := t.TempDir()
	addTest(t, testsDir, "good.lox", "fine\n", "fine\n")
	addTest(t, testsDir, "bad.lox", "2\n", "3\n")
	inv := invoker.New(writeInterpreter(t), "imports")

	results, err := RunTestSuite(context.Background(), inv, testsDir, nil, nil)

	require.NoError(t, err)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad", results.Failures[0].TestID.String())
	require.NotEmpty(t, results.Failures[0].Errors)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "did not match fixture")
}

func TestRunTestSuiteHonorsFilters(t *testing.T) {
	testsDir := t.TempDir()
	addTest(t, testsDir, "slow/big.lox", "x\n", "x\n")
	addTest(t, testsDir, "fast/small.lox", "y\n", "y\n")
	inv := invoker.New(writeInterpreter(t), "imports")

	var filters framework.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^slow/"))
	results, err := RunTestSuite(context.Background(), inv, testsDir, filters.AsFilter, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"fast/small"}, resultNames(results.Tests))
}

func TestRunTestFilesUsesBaseNames(t *testing.T) {
	dir := t.TempDir()
	addTest(t, dir, "one.lox", "1\n", "1\n")
	inv := invoker.New(writeInterpreter(t), "imports")

	results := RunTestFiles(context.Background(), inv,
		[]string{filepath.Join(dir, "one.lox")}, nil, nil)

	assert.True(t, results.OK())
	assert.Equal(t, []string{"one"}, resultNames(results.Tests))
}

func TestRunTestFilesMissingFileFails(t *testing.T) {
	inv := invoker.New(writeInterpreter(t), "imports")

	results := RunTestFiles(context.Background(), inv,
		[]string{filepath.Join(t.TempDir(), "ghost.lox")}, nil, nil)

	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "cannot be read")
}
