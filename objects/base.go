package objects

import (
	"github.com/google/uuid"
)

// Base is an embeddable Object implementation carrying an instance identity,
// a tag set, and a config set. Tags describe what an object is; config
// controls how it behaves. Base is not safe for concurrent mutation.
type Base struct {
	id     string
	tags   Tags
	config Tags
}

// Compile-time assertion that Base implements Object.
var _ Object = (*Base)(nil)

// NewBase creates a Base with a fresh instance ID and empty tag and config
// sets.
func NewBase() *Base {
	return &Base{
		id:     uuid.NewString(),
		tags:   Tags{},
		config: Tags{},
	}
}

// ID returns the object's unique instance identifier.
func (b *Base) ID() string {
	return b.id
}

// Tags returns a copy of the object's tag set.
func (b *Base) Tags() Tags {
	return b.tags.Clone()
}

// Tag looks up a single tag by name.
func (b *Base) Tag(name string) (any, bool) {
	value, ok := b.tags[name]

	return value, ok
}

// SetTags merges the given tags into the object's tag set and returns the
// receiver for chaining.
func (b *Base) SetTags(tags Tags) *Base {
	b.tags = b.tags.Merge(tags)

	return b
}

// Config looks up a single config value by name.
func (b *Base) Config(name string) (any, bool) {
	value, ok := b.config[name]

	return value, ok
}

// SetConfig merges the given values into the object's config set and returns
// the receiver for chaining.
func (b *Base) SetConfig(config Tags) *Base {
	b.config = b.config.Merge(config)

	return b
}
