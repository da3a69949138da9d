package inventory

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnavailable reports an unreachable endpoint or a provider error.
	ErrUnavailable = errors.New("inventory unavailable")
	// ErrTimeout reports a describe call that exceeded its deadline.
	ErrTimeout = errors.New("describe call timed out")
	// ErrMalformed reports a response body that could not be parsed.
	ErrMalformed = errors.New("malformed describe response")
)

// Result is the outcome of one describe call. Items is empty whenever Err is set.
type Result struct {
	Kind     Kind
	Items    []Item
	Err      error
	Duration time.Duration
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Outcome returns a short label for metrics and logs.
func (r Result) Outcome() string {
	switch {
	case r.Err == nil:
		return "ok"
	case errors.Is(r.Err, ErrTimeout):
		return "timeout"
	case errors.Is(r.Err, ErrMalformed):
		return "malformed"
	}
	return "unavailable"
}

// Describer issues one read-only describe request per resource kind.
// Implementations never panic and report every failure through Result.Err.
type Describer interface {
	Describe(ctx context.Context, kind Kind) Result
}

// Source is a Describer that can also verify its endpoint before serving.
type Source interface {
	Describer
	Preflight(ctx context.Context) error
	Label() string
}

// NewSource returns the fixtures-backed source when a fixtures directory is
// configured, the aws CLI source otherwise.
func NewSource(opts Options) Source {
	if opts.FixturesDir != "" {
		return NewFixtures(opts.FixturesDir)
	}
	return NewCLI(opts)
}

func failed(kind Kind, start time.Time, err error) Result {
	return Result{Kind: kind, Err: err, Duration: time.Since(start)}
}
