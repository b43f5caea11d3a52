package seqfmt_test

import (
	"reflect"
	"testing"

	"github.com/flowlabs/flow-common/seqfmt"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	seq := []any{1, 2, "3", 4}

	assert.Equal(t, "1, 2, 3, 4", seqfmt.Format(seq))
	assert.Equal(t, "1, 2, 3 and 4", seqfmt.Format(seq, seqfmt.WithLastSep("and")))
	assert.Equal(t, "1, 2, 3 or 4", seqfmt.Format(seq, seqfmt.WithLastSep("or")))
	assert.Equal(t, "1;2;3;4", seqfmt.Format(seq, seqfmt.WithSep(";")))
}

func TestFormat_Scalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", seqfmt.Format(7))
	assert.Equal(t, "some_str", seqfmt.Format("some_str"))

	// Separator options have no effect on scalars.
	assert.Equal(t, "7", seqfmt.Format(7, seqfmt.WithSep(";")))
	assert.Equal(t, "7", seqfmt.Format(7, seqfmt.WithLastSep("or")))
}

func TestFormat_Types(t *testing.T) {
	t.Parallel()

	types := []any{reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem()}

	assert.Equal(t, "int, string", seqfmt.Format(types))
	assert.Equal(t, "int and string", seqfmt.Format(types, seqfmt.WithLastSep("and")))
}

func TestFormat_Edge(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seqfmt.Format([]any{}))
	assert.Equal(t, "only", seqfmt.Format([]string{"only"}, seqfmt.WithLastSep("and")))
	assert.Equal(t, "<nil>", seqfmt.Format(nil))
}

func TestToSlice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{7}, seqfmt.ToSlice(7))
	assert.Equal(t, []any{"some_str"}, seqfmt.ToSlice("some_str"))
	assert.Equal(t, []any{1, 2}, seqfmt.ToSlice([]int{1, 2}))
	assert.Equal(t, []any{1, 2}, seqfmt.ToSlice([2]int{1, 2}))
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", seqfmt.TypeName(reflect.TypeOf((*int)(nil)).Elem()))
	assert.Equal(t, "[]string", seqfmt.TypeName(reflect.TypeOf((*[]string)(nil)).Elem()))
	assert.Equal(t, "<nil>", seqfmt.TypeName(nil))
}
