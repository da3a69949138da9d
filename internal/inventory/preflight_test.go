package inventory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflightLocalStackHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_localstack/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"services": {"ec2": "running"}}`))
	}))
	defer srv.Close()

	c := NewCLI(Options{Mode: ModeLocalStack, Endpoint: srv.URL + "/"})
	assert.NoError(t, c.Preflight(context.Background()))
}

func TestPreflightLocalStackDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewCLI(Options{Mode: ModeLocalStack, Endpoint: url})
	err := c.Preflight(context.Background())

	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Hint, "docker-compose up -d")
	assert.Contains(t, pe.Error(), "LocalStack")
}

func TestPreflightLocalStackNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := NewCLI(Options{Endpoint: srv.URL}).Preflight(context.Background())
	assert.Error(t, err)
}

func TestPreflightAWSCredentials(t *testing.T) {
	fr := &fakeRunner{answer: func(ctx context.Context, args []string) ([]byte, error) {
		return []byte(`{"Account": "123456789012"}`), nil
	}}
	c := NewCLI(Options{Mode: ModeAWS, Runner: fr.run})

	require.NoError(t, c.Preflight(context.Background()))
	require.Len(t, fr.calls, 1)
	assert.Equal(t, []string{"sts", "get-caller-identity", "--output", "json"}, fr.calls[0].args)
}

func TestPreflightAWSNoCredentials(t *testing.T) {
	fr := &fakeRunner{answer: func(ctx context.Context, args []string) ([]byte, error) {
		return nil, errors.New("Unable to locate credentials")
	}}
	c := NewCLI(Options{Mode: ModeAWS, Runner: fr.run})

	err := c.Preflight(context.Background())
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "AWS credentials", pe.Check)
	assert.Contains(t, pe.Hint, "aws configure")
}
