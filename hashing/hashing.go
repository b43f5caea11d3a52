// Package hashing provides a small abstraction for hashing objects so they
// can be fingerprinted and compared cheaply. Objects describe how to feed
// themselves into a hash.Hash, and hash functions turn that into a stable
// hex-encoded digest.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object and returns a string
// representation of its hash. XX64, XXH3 and Sha256 are all HashFuncs, which
// lets callers talk about hashing strategies generically.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update a hash.Hash with
// its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// XX64 returns the 64-bit xxHash digest of the given Hashable as a
// hex-encoded string. It is the default choice for in-process keys where
// speed matters more than collision resistance.
func XX64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

// XXH3 returns the 128-bit XXH3 digest of the given Hashable as a
// hex-encoded string. Use this for fingerprints that may be persisted or
// compared across processes.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	sum := h.Sum128().Bytes()

	return hex.EncodeToString(sum[:]), nil
}

// Sha256 returns the SHA256 digest of the given Hashable as a hex-encoded
// string, for callers that need a cryptographic hash.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString adapts a plain string to the Hashable interface.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableBytes adapts a byte slice to the Hashable interface.
type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	if len(b) != len(other) {
		return false
	}

	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}

	return true
}
