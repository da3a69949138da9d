package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesDescribe(t *testing.T) {
	f := NewFixtures("../../testdata/localstack")

	tests := []struct {
		kind  Kind
		count int
	}{
		{KindVPC, 3},
		{KindSubnet, 9},
		{KindInstance, 5},
		{KindSecurityGroup, 6},
		{KindInternetGateway, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			res := f.Describe(context.Background(), tt.kind)
			require.NoError(t, res.Err)
			assert.Len(t, res.Items, tt.count)
		})
	}
}

func TestFixturesMissingFile(t *testing.T) {
	f := NewFixtures(t.TempDir())
	res := f.Describe(context.Background(), KindVPC)
	assert.ErrorIs(t, res.Err, ErrUnavailable)
	assert.Empty(t, res.Items)
}

func TestFixturesMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "describe-vpcs.json"), []byte("not json"), 0644))

	res := NewFixtures(dir).Describe(context.Background(), KindVPC)
	assert.ErrorIs(t, res.Err, ErrMalformed)
}

func TestFixturesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewFixtures("../../testdata/localstack").Describe(ctx, KindVPC)
	assert.ErrorIs(t, res.Err, ErrTimeout)
}

func TestFixturesPreflight(t *testing.T) {
	assert.NoError(t, NewFixtures("../../testdata/localstack").Preflight(context.Background()))

	err := NewFixtures("../../testdata/does-not-exist").Preflight(context.Background())
	var pe *PreflightError
	require.ErrorAs(t, err, &pe)
	assert.NotEmpty(t, pe.Hint)

	err = NewFixtures("../../testdata/localstack/describe-vpcs.json").Preflight(context.Background())
	assert.Error(t, err)
}
