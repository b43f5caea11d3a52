package namedobjects

import (
	"reflect"

	"github.com/flowlabs/flow-common/objects"
)

type options struct {
	allowMap           bool
	requireUniqueNames bool
	objectType         reflect.Type
	sequenceName       string
}

func buildOptions(opts []Option) options {
	o := options{
		allowMap:   true,
		objectType: reflect.TypeOf((*objects.Object)(nil)).Elem(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Option configures a validation.
type Option func(*options)

// DisallowMap rejects the map representation: only ordered sequences of
// (string name, object) pairs conform.
func DisallowMap() Option {
	return func(o *options) {
		o.allowMap = false
	}
}

// RequireUniqueNames makes duplicate names invalidate the candidate.
func RequireUniqueNames() Option {
	return func(o *options) {
		o.requireUniqueNames = true
	}
}

// WithObjectType replaces the default object constraint. An interface type
// is satisfied by any implementation, a concrete type only by itself. The
// default is the objects.Object base capability.
func WithObjectType(t reflect.Type) Option {
	return func(o *options) {
		if t != nil {
			o.objectType = t
		}
	}
}

// WithObjectTypeOf is a convenience for WithObjectType(reflect.TypeOf((*T)(nil)).Elem()).
func WithObjectTypeOf[T any]() Option {
	return WithObjectType(reflect.TypeOf((*T)(nil)).Elem())
}

// WithSequenceName labels the candidate in error messages, typically with
// the name of the parameter being validated. Defaults to "Input".
func WithSequenceName(name string) Option {
	return func(o *options) {
		o.sequenceName = name
	}
}
