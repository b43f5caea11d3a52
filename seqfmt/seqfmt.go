// Package seqfmt formats scalars and sequences into deterministic,
// human-readable strings. It exists mainly to build error messages that list
// allowed values or types, e.g. "int, string or bool".
package seqfmt

import (
	"fmt"
	"reflect"
	"strings"
)

type options struct {
	sep     string
	lastSep string
}

// Option configures Format.
type Option func(*options)

// WithSep sets the separator placed between items. Defaults to ", ".
func WithSep(sep string) Option {
	return func(o *options) {
		o.sep = sep
	}
}

// WithLastSep sets a word (such as "and" or "or") placed before the final
// item instead of the separator: "1, 2, 3 and 4".
func WithLastSep(lastSep string) Option {
	return func(o *options) {
		o.lastSep = lastSep
	}
}

// Format renders a value as a joined string. Slices and arrays are formatted
// element by element; anything else (including strings) is treated as a
// single scalar. A single item is rendered bare, with no separators.
func Format(value any, opts ...Option) string {
	o := options{sep: ", "}

	for _, opt := range opts {
		opt(&o)
	}

	items := ToSlice(value)

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = itemString(item)
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	if o.lastSep == "" {
		return strings.Join(parts, o.sep)
	}

	head := strings.Join(parts[:len(parts)-1], o.sep)

	return head + " " + o.lastSep + " " + parts[len(parts)-1]
}

// ToSlice lifts a scalar into a one-element slice, and flattens slices and
// arrays into []any. Strings are scalars, not sequences of characters.
func ToSlice(value any) []any {
	if value == nil {
		return []any{nil}
	}

	val := reflect.ValueOf(value)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		items := make([]any, val.Len())
		for i := range items {
			items[i] = val.Index(i).Interface()
		}

		return items
	}

	return []any{value}
}

// TypeName renders a reflect.Type the way it should appear in an error
// message. Interface and named types keep their package qualifier; a nil
// type renders as "<nil>".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

func itemString(item any) string {
	if t, ok := item.(reflect.Type); ok {
		return TypeName(t)
	}

	return fmt.Sprintf("%v", item)
}
