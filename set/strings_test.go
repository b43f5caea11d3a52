package set_test

import (
	"errors"
	"testing"

	"github.com/flowlabs/flow-common/hashing"
	"github.com/flowlabs/flow-common/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings_AddAndContains(t *testing.T) {
	t.Parallel()

	s := set.NewStrings()

	require.NoError(t, s.AddAll("Step 1", "Step 2", "Step 1"))

	assert.Equal(t, 2, s.Size())

	found, err := s.Contains("Step 1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Contains("Step 3")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStrings_Remove(t *testing.T) {
	t.Parallel()

	s := set.NewStrings()

	require.NoError(t, s.Add("Step 1"))
	require.NoError(t, s.Remove("Step 1"))
	require.NoError(t, s.Remove("never added"))

	assert.Zero(t, s.Size())
}

func TestStrings_Clear(t *testing.T) {
	t.Parallel()

	s := set.NewStrings()

	require.NoError(t, s.AddAll("a", "b"))

	s.Clear()

	assert.Zero(t, s.Size())
	assert.Empty(t, s.Entries())
}

func TestStrings_SortedEntries(t *testing.T) {
	t.Parallel()

	s := set.NewStrings()

	require.NoError(t, s.AddAll("Step 10", "Step 2", "Step 1"))

	// Lexicographic order puts "Step 10" before "Step 2".
	assert.Equal(t, []string{"Step 1", "Step 10", "Step 2"}, s.SortedEntries())

	// Natural order treats the numbers numerically.
	assert.Equal(t, []string{"Step 1", "Step 2", "Step 10"}, s.NaturalSortedEntries())
}

func TestStrings_CustomHash(t *testing.T) {
	t.Parallel()

	s := set.NewStringsWithHash(hashing.Sha256)

	require.NoError(t, s.AddAll("a", "b"))
	assert.Equal(t, 2, s.Size())
}

var errHashFailed = errors.New("hash failed")

func failingHash(_ hashing.Hashable) (string, error) {
	return "", errHashFailed
}

func TestStrings_HashError(t *testing.T) {
	t.Parallel()

	s := set.NewStringsWithHash(failingHash)

	require.ErrorIs(t, s.Add("a"), errHashFailed)

	_, err := s.Contains("a")
	require.ErrorIs(t, err, errHashFailed)

	require.ErrorIs(t, s.Remove("a"), errHashFailed)
}

// constantHash forces every member onto the same key so collision handling
// can be exercised.
func constantHash(_ hashing.Hashable) (string, error) {
	return "constant", nil
}

func TestStrings_HashCollision(t *testing.T) {
	t.Parallel()

	s := set.NewStringsWithHash(constantHash)

	require.NoError(t, s.Add("a"))
	require.NoError(t, s.Add("a"))
	require.ErrorIs(t, s.Add("b"), set.ErrHashCollision)

	_, err := s.Contains("b")
	require.ErrorIs(t, err, set.ErrHashCollision)
}
