package objects

import (
	"fmt"
	"hash"

	"github.com/flowlabs/flow-common/hashing"
)

// tagsHashable feeds a tag set into a hash in natural name order, so the
// digest does not depend on map iteration order.
type tagsHashable Tags

func (t tagsHashable) UpdateHash(h hash.Hash) error {
	for _, name := range Tags(t).Names() {
		entry := fmt.Sprintf("%s=%v;", name, Tags(t)[name])

		if _, err := h.Write([]byte(entry)); err != nil {
			return err
		}
	}

	return nil
}

// Fingerprint returns a stable 128-bit XXH3 digest of the object's tag set.
// Two objects with equal tags produce the same fingerprint, which makes it a
// cheap change-detection key.
func Fingerprint(obj Object) (string, error) {
	return hashing.XXH3(tagsHashable(obj.Tags()))
}
