package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Fixtures describes resources from saved describe outputs named
// describe-<kind>.json in a directory. A missing file is an unavailable kind.
type Fixtures struct {
	Dir string
}

// NewFixtures creates a fixtures-backed source.
func NewFixtures(dir string) *Fixtures {
	return &Fixtures{Dir: dir}
}

// Label returns the display name of the fixtures mode.
func (f *Fixtures) Label() string {
	return "Fixtures"
}

// Path returns the file consulted for kind.
func (f *Fixtures) Path(kind Kind) string {
	return filepath.Join(f.Dir, kind.Command()+".json")
}

func (f *Fixtures) Describe(ctx context.Context, kind Kind) Result {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return failed(kind, start, fmt.Errorf("%w: %v", ErrTimeout, err))
	}

	data, err := os.ReadFile(f.Path(kind))
	if err != nil {
		return failed(kind, start, fmt.Errorf("%w: %v", ErrUnavailable, err))
	}

	items, err := Parse(kind, data)
	if err != nil {
		return failed(kind, start, err)
	}
	return Result{Kind: kind, Items: items, Duration: time.Since(start)}
}

// Preflight checks that the fixtures directory exists.
func (f *Fixtures) Preflight(ctx context.Context) error {
	info, err := os.Stat(f.Dir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", f.Dir)
	}
	if err != nil {
		return &PreflightError{
			Check: "fixtures directory",
			Err:   err,
			Hint:  "set query.fixtures_dir to a directory of describe-*.json files",
		}
	}
	return nil
}
