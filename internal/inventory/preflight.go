package inventory

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	healthPath         = "/_localstack/health"
	healthTimeout      = 5 * time.Second
	healthRetries      = 2
	credentialsTimeout = 10 * time.Second
)

// PreflightError reports that the selected endpoint cannot be used, with a
// remediation hint for the operator.
type PreflightError struct {
	Check string
	Err   error
	Hint  string
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("%s: %v", e.Check, e.Err)
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

// Preflight verifies the endpoint once at startup: LocalStack must answer its
// health check, real AWS must accept the configured credentials.
func (c *CLI) Preflight(ctx context.Context) error {
	if c.mode == ModeAWS {
		return c.checkCredentials(ctx)
	}
	return c.checkLocalStack(ctx)
}

func (c *CLI) checkLocalStack(ctx context.Context) error {
	url := strings.TrimRight(c.endpoint, "/") + healthPath

	client := retryablehttp.NewClient()
	client.RetryMax = healthRetries
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 500 * time.Millisecond
	client.HTTPClient.Timeout = healthTimeout
	client.Logger = nil

	fail := func(err error) error {
		return &PreflightError{
			Check: "LocalStack at " + c.endpoint,
			Err:   err,
			Hint:  "start LocalStack first: docker-compose up -d",
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fail(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Errorf("health check returned %d", resp.StatusCode))
	}
	return nil
}

func (c *CLI) checkCredentials(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, credentialsTimeout)
	defer cancel()

	if _, err := c.run(callCtx, c.binary, c.Args("sts", "get-caller-identity")...); err != nil {
		return &PreflightError{
			Check: "AWS credentials",
			Err:   err,
			Hint:  "configure AWS credentials first: aws configure",
		}
	}
	return nil
}
