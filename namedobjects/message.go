package namedobjects

import "fmt"

// displayName labels the candidate in errors and logs, defaulting to the
// generic "Input" when no sequence name was configured.
func displayName(o options) string {
	if o.sequenceName == "" {
		return "Input"
	}

	return o.sequenceName
}

// errorMessage states the expected format. Deterministic: it depends only on
// the sequence name and whether the map shape is allowed. Shape failures and
// uniqueness failures are deliberately not distinguished; there is a single
// "does not conform" taxonomy.
func errorMessage(o options) string {
	name := displayName(o)

	allowed := "a sequence of (string name, Object instance) pairs"
	if o.allowMap {
		allowed += " or map[string]Object"
	}

	return fmt.Sprintf("invalid %q, %q should be %s", name, name, allowed)
}
