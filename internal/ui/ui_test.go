package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestFormatError(t *testing.T) {
	out := FormatError("LocalStack is not running", "connection refused", "docker-compose up -d")
	assert.Contains(t, out, "Error: LocalStack is not running")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "Hint: docker-compose up -d")

	out = FormatError("boom", "", "")
	assert.NotContains(t, out, "Hint")
}

func TestStatusLines(t *testing.T) {
	buf := capture(t)

	CheckOK("LocalStack")
	SourceDone("Subnets", "2 public")
	SourceFailed("Security Groups", errors.New("describe call timed out"))
	ValidationErr("server.port", "port 0 out of range", "use a port between 1 and 65535")
	Serving("http://localhost:8080")

	out := buf.String()
	assert.Contains(t, out, "Checking LocalStack...")
	assert.Contains(t, out, "Subnets")
	assert.Contains(t, out, "unavailable: describe call timed out")
	assert.Contains(t, out, "Hint: use a port between 1 and 65535")
	assert.Contains(t, out, "http://localhost:8080")
}
