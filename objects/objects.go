// Package objects defines the base capability that framework values must
// satisfy to participate in named-object sequences, together with a compact
// tag and config registry for introspecting them.
package objects

import (
	"facette.io/natsort"
)

// Object is the base capability: the minimal interface a value must satisfy
// to be accepted as the object half of a (name, object) pair. It is the
// default type constraint applied by the namedobjects package.
type Object interface {
	// Tags returns the object's tag set. Implementations should return a
	// copy; callers must not rely on mutating the result.
	Tags() Tags
}

// Tags is a set of named metadata values attached to an object.
type Tags map[string]any

// Clone returns a shallow copy of the tag set.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))

	for name, value := range t {
		out[name] = value
	}

	return out
}

// Merge returns a new tag set combining t with other. Values in other win on
// conflicting names. Neither input is mutated.
func (t Tags) Merge(other Tags) Tags {
	out := t.Clone()

	for name, value := range other {
		out[name] = value
	}

	return out
}

// Names returns the tag names in natural sort order, so "step2" comes before
// "step10". The ordering is deterministic, which matters for fingerprints
// and for readable output.
func (t Tags) Names() []string {
	names := make([]string, 0, len(t))

	for name := range t {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}
