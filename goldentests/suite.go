// Package goldentests drives the golden-file suite: it discovers test files,
// runs each one through the invoker, and maps the invoker's error taxonomy
// onto per-test results.
package goldentests

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/AgustinCB/smoked/framework"
	"github.com/AgustinCB/smoked/invoker"
)

// TestFileSuffix identifies test case files inside the tests directory.
// Fixture files (.out, .err) are skipped by discovery.
const TestFileSuffix = ".lox"

// DiscoverTests returns the paths of all test files under testsDir, relative
// to testsDir, in lexical order. Tests always run in that fixed order, one
// at a time.
func DiscoverTests(testsDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(testsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, TestFileSuffix) {
			return nil
		}
		rel, err := filepath.Rel(testsDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not enumerate tests in %s: %w", testsDir, err)
	}
	return files, nil
}

// RunTestSuite runs every discovered test file under testsDir sequentially
// and returns the accumulated results. Each test is named by its path
// relative to testsDir, without the file suffix, so filters can select on
// subdirectory structure.
func RunTestSuite(
	ctx context.Context,
	inv *invoker.Invoker,
	testsDir string,
	filter framework.Filter,
	testLogger framework.TestLogger,
) (framework.Results, error) {
	files, err := DiscoverTests(testsDir)
	if err != nil {
		return framework.Results{}, err
	}
	results := framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, rel := range files {
			name := strings.TrimSuffix(filepath.ToSlash(rel), TestFileSuffix)
			path := filepath.Join(testsDir, rel)
			c.Run(name, func(c *framework.Context) {
				runOne(ctx, c, inv, path)
			})
		}
	})
	return results, nil
}

// RunTestFiles runs an explicit list of test files, named by their base name.
// This is the single-invocation mode of the command line.
func RunTestFiles(
	ctx context.Context,
	inv *invoker.Invoker,
	paths []string,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, path := range paths {
			name := strings.TrimSuffix(filepath.Base(path), TestFileSuffix)
			testPath := path
			c.Run(name, func(c *framework.Context) {
				runOne(ctx, c, inv, testPath)
			})
		}
	})
}

func runOne(ctx context.Context, c *framework.Context, inv *invoker.Invoker, testPath string) {
	perTest := *inv
	perTest.Logger = c.DebugLogger()
	if err := perTest.Run(ctx, testPath); err != nil {
		c.Errorf("%s", err)
	}
}
