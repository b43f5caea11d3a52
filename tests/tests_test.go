package tests_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlabs/flow-common/tests"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	ctx := tests.GetUniqueContext(t)

	info, ok := tests.GetTestInfo(ctx)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(info.Id, "test-"))
	assert.Equal(t, "TestGetUniqueContext", info.Name)
}

func TestGetUniqueContext_DistinctIds(t *testing.T) {
	t.Parallel()

	first, ok := tests.GetTestInfo(tests.GetUniqueContext(t))
	require.True(t, ok)

	second, ok := tests.GetTestInfo(tests.GetUniqueContext(t))
	require.True(t, ok)

	assert.NotEqual(t, first.Id, second.Id)
}

func TestGetTestInfo_Missing(t *testing.T) {
	t.Parallel()

	_, ok := tests.GetTestInfo(context.Background())
	assert.False(t, ok)
}
