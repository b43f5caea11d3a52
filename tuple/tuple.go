// Package tuple provides small fixed-arity value groupings.
package tuple

// Pair is an ordered pair of values. Fields are exported so that pairs can be
// destructured reflectively; the namedobjects package recognizes any
// two-field struct as a candidate (name, object) entry.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two components.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		First:  first,
		Second: second,
	}
}

// Unpack returns both components of the pair.
func (p Pair[A, B]) Unpack() (A, B) { //nolint:ireturn
	return p.First, p.Second
}

// Triple is an ordered grouping of three values.
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds a Triple from its three components.
func TripleOf[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  first,
		Second: second,
		Third:  third,
	}
}

// Unpack returns all three components of the triple.
func (t Triple[A, B, C]) Unpack() (A, B, C) { //nolint:ireturn
	return t.First, t.Second, t.Third
}
