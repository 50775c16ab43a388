package invoker

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// compareStream checks one captured stream against its fixture byte-for-byte.
// It returns a non-empty unified diff when the contents differ, or an error
// when the fixture is absent or either file cannot be read.
func compareStream(stream, capturedPath, fixturePath string) (string, error) {
	expected, err := os.ReadFile(fixturePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", MissingFixtureError{Stream: stream, Path: fixturePath}
		}
		return "", fmt.Errorf("reading fixture %s: %w", fixturePath, err)
	}
	actual, err := os.ReadFile(capturedPath)
	if err != nil {
		return "", fmt.Errorf("reading captured %s: %w", stream, err)
	}
	if bytes.Equal(expected, actual) {
		return "", nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(expected)),
		B:        difflib.SplitLines(string(actual)),
		FromFile: fixturePath,
		ToFile:   "captured " + stream,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s against %s: %w", stream, fixturePath, err)
	}
	if diff == "" {
		// bytes.Equal already said they differ; the difference must be one
		// the line splitter cannot show, such as a missing final newline.
		diff = fmt.Sprintf("contents differ (expected %d bytes, captured %d bytes)\n",
			len(expected), len(actual))
	}
	return diff, nil
}
