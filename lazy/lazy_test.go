package lazy_test

import (
	"testing"

	"github.com/flowlabs/flow-common/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_InitializesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	val := lazy.New(func() string {
		calls++

		return "computed"
	})

	assert.False(t, val.Initialized())
	assert.Equal(t, "computed", val.Get())
	assert.Equal(t, "computed", val.Get())
	assert.Equal(t, 1, calls)
	assert.True(t, val.Initialized())
}

func TestSet_SkipsInitializer(t *testing.T) {
	t.Parallel()

	val := lazy.New(func() int {
		t.Fatal("initializer should not run")

		return 0
	})

	val.Set(42)

	assert.Equal(t, 42, val.Get())
	assert.True(t, val.Initialized())
}

func TestGet_RetriesAfterPanic(t *testing.T) {
	t.Parallel()

	calls := 0
	val := lazy.New(func() int {
		calls++
		if calls == 1 {
			panic("first attempt fails")
		}

		return calls
	})

	require.Panics(t, func() {
		val.Get()
	})

	assert.Equal(t, 2, val.Get())
}
