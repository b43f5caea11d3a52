// Package set provides a string set keyed by a pluggable hash function.
// Uniqueness is determined by the hash value; collisions between non-equal
// members are detected and reported instead of silently overwriting.
package set

import (
	"errors"
	"sort"

	"facette.io/natsort"

	"github.com/flowlabs/flow-common/compare"
	"github.com/flowlabs/flow-common/hashing"
)

// ErrHashCollision is returned when two different (non-equal) members hash to
// the same value.
var ErrHashCollision = errors.New("hash collision")

// Strings is a set of unique strings. The zero value is not usable; construct
// one with NewStrings or NewStringsWithHash.
type Strings struct {
	hash    hashing.HashFunc
	members map[string]hashing.HashableString
}

// NewStrings creates a string set keyed by the 64-bit xxHash function, which
// is the right default for in-process membership checks.
func NewStrings() *Strings {
	return NewStringsWithHash(hashing.XX64)
}

// NewStringsWithHash creates a string set keyed by the provided hash function.
func NewStringsWithHash(hash hashing.HashFunc) *Strings {
	return &Strings{
		hash:    hash,
		members: make(map[string]hashing.HashableString),
	}
}

// Add adds a single string to the set. Adding a member that is already
// present is a no-op. An error is returned if hashing fails or a hash
// collision with a different member is detected.
func (s *Strings) Add(member string) error {
	key, err := s.hash(hashing.HashableString(member))
	if err != nil {
		return err
	}

	prev, ok := s.members[key]
	if ok {
		if compare.Equals(prev, hashing.HashableString(member)) {
			return nil
		}

		return ErrHashCollision
	}

	s.members[key] = hashing.HashableString(member)

	return nil
}

// AddAll adds multiple strings to the set, stopping at the first error.
func (s *Strings) AddAll(members ...string) error {
	for _, member := range members {
		if err := s.Add(member); err != nil {
			return err
		}
	}

	return nil
}

// Contains reports whether the member is in the set. An error is returned if
// hashing fails or a collision is detected.
func (s *Strings) Contains(member string) (bool, error) {
	key, err := s.hash(hashing.HashableString(member))
	if err != nil {
		return false, err
	}

	prev, ok := s.members[key]
	if !ok {
		return false, nil
	}

	if !compare.Equals(prev, hashing.HashableString(member)) {
		return false, ErrHashCollision
	}

	return true, nil
}

// Remove removes a member from the set. Removing an absent member is a no-op.
func (s *Strings) Remove(member string) error {
	key, err := s.hash(hashing.HashableString(member))
	if err != nil {
		return err
	}

	delete(s.members, key)

	return nil
}

// Clear removes all members from the set.
func (s *Strings) Clear() {
	s.members = make(map[string]hashing.HashableString)
}

// Size returns the number of members in the set.
func (s *Strings) Size() int {
	return len(s.members)
}

// Entries returns all members as a slice. The order is not guaranteed.
func (s *Strings) Entries() []string {
	items := make([]string, 0, len(s.members))

	for _, member := range s.members {
		items = append(items, member.String())
	}

	return items
}

// SortedEntries returns all members sorted lexicographically.
func (s *Strings) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns all members sorted using natural sort order.
// Natural sort treats numbers within strings numerically, so "Step 2" comes
// before "Step 10".
func (s *Strings) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}
