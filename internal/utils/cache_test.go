package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A nil client means caching is disabled: reads miss, writes are no-ops,
// and nothing errors. Handlers rely on this to serve straight from the
// database when no Redis address is configured.
func TestCacheNilClient(t *testing.T) {
	ctx := context.Background()

	var dest []string
	found, err := GetCache(ctx, nil, "some-key", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, dest)

	assert.NoError(t, SetCache(ctx, nil, "some-key", []string{"a"}, time.Minute))
	assert.NoError(t, DeleteCache(ctx, nil, "some-key", "other-key"))
	assert.NoError(t, DeleteCache(ctx, nil))
}
