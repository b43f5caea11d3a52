// Package namedobjects validates the named-object-sequence convention used
// to pass collections of named framework objects around, in particular as
// pipeline step parameters. A conforming candidate is either an ordered
// sequence of (string name, object) pairs or a map from string name to
// object, where every object satisfies a caller-supplied type constraint.
package namedobjects
