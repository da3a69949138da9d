package inventory

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Mode selects the endpoint the aws CLI talks to.
type Mode string

const (
	ModeLocalStack Mode = "localstack"
	ModeAWS        Mode = "aws"
)

// Label returns the mode name shown to users.
func (m Mode) Label() string {
	if m == ModeAWS {
		return "Real AWS"
	}
	return "LocalStack"
}

const (
	DefaultBinary   = "aws"
	DefaultEndpoint = "http://localhost:4566"
	DefaultTimeout  = 15 * time.Second
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Options configures a Source.
type Options struct {
	Mode        Mode
	Binary      string
	Endpoint    string
	Region      string
	Profile     string
	Timeout     time.Duration
	FixturesDir string

	// Runner replaces process execution in tests.
	Runner Runner
}

// CLI describes resources by running `aws ec2 describe-*`.
type CLI struct {
	mode     Mode
	binary   string
	endpoint string
	region   string
	profile  string
	timeout  time.Duration
	run      Runner
}

// NewCLI creates a CLI source, filling unset options with defaults.
func NewCLI(opts Options) *CLI {
	c := &CLI{
		mode:     opts.Mode,
		binary:   opts.Binary,
		endpoint: opts.Endpoint,
		region:   opts.Region,
		profile:  opts.Profile,
		timeout:  opts.Timeout,
		run:      opts.Runner,
	}
	if c.mode == "" {
		c.mode = ModeLocalStack
	}
	if c.binary == "" {
		c.binary = DefaultBinary
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.run == nil {
		c.run = execRunner
	}
	return c
}

// Label returns the display name of the configured mode.
func (c *CLI) Label() string {
	return c.mode.Label()
}

// Args returns the aws CLI arguments for an ec2 sub-command.
func (c *CLI) Args(service, action string) []string {
	var args []string
	if c.mode == ModeLocalStack {
		args = append(args, "--endpoint-url", c.endpoint)
	}
	if c.region != "" {
		args = append(args, "--region", c.region)
	}
	if c.profile != "" {
		args = append(args, "--profile", c.profile)
	}
	return append(args, service, action, "--output", "json")
}

// Describe runs one describe call with its own timeout. It makes a single
// attempt; the next page load is the retry.
func (c *CLI) Describe(ctx context.Context, kind Kind) Result {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.run(callCtx, c.binary, c.Args("ec2", kind.Command())...)
	if callErr := callCtx.Err(); callErr != nil {
		return failed(kind, start, fmt.Errorf("%w: %s after %s: %v", ErrTimeout, kind.Command(), time.Since(start).Round(time.Millisecond), callErr))
	}
	if err != nil {
		return failed(kind, start, fmt.Errorf("%w: %s: %v", ErrUnavailable, kind.Command(), err))
	}

	items, err := Parse(kind, out)
	if err != nil {
		return failed(kind, start, err)
	}
	return Result{Kind: kind, Items: items, Duration: time.Since(start)}
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				return nil, fmt.Errorf("%w: %s", err, stderr)
			}
		}
		return nil, err
	}
	return out, nil
}
