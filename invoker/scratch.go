package invoker

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	capturedOutName = "captured.out"
	capturedErrName = "captured.err"
)

var (
	entropyLock sync.Mutex
	entropy     = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// newRunID returns a unique identifier for one invocation. ULIDs sort by
// creation time, which keeps leftover directories attributable if deletion
// ever fails.
func newRunID() string {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// ScratchDir is the ephemeral directory owned by exactly one invocation. It
// holds the two captured stream files and nothing else.
type ScratchDir struct {
	path        string
	releaseOnce sync.Once
	releaseErr  error
}

// newScratchDir allocates a fresh uniquely-named directory under the system
// temporary root. os.MkdirTemp guarantees no collision with concurrent
// invocations; the run ID makes the owner identifiable.
func newScratchDir(runID string) (*ScratchDir, error) {
	path, err := os.MkdirTemp("", "smoked-test-"+runID+"-")
	if err != nil {
		return nil, err
	}
	return &ScratchDir{path: path}, nil
}

func (d *ScratchDir) Path() string { return d.path }

// OutFile is where the subject's standard output is captured.
func (d *ScratchDir) OutFile() string { return filepath.Join(d.path, capturedOutName) }

// ErrFile is where the subject's standard error is captured.
func (d *ScratchDir) ErrFile() string { return filepath.Join(d.path, capturedErrName) }

// Release deletes the directory and everything in it. It is safe to call more
// than once; only the first call does the deletion.
func (d *ScratchDir) Release() error {
	d.releaseOnce.Do(func() {
		d.releaseErr = os.RemoveAll(d.path)
	})
	return d.releaseErr
}
