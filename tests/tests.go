// Package tests provides helpers for carrying test metadata through
// context.Context. Tests get a unique identifier they can use to name
// external resources and to correlate log output with a test run.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/flowlabs/flow-common/logger"
)

// contextKey is a private type for context keys, preventing collisions with
// other packages.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info describes the test a context belongs to.
type Info struct {
	// Id is a unique identifier for this test run, of the form
	// "test-<uuid>".
	Id string

	// Name is the full test name from testing.T.Name().
	Name string
}

// GetUniqueContext returns a context derived from t.Context() carrying a
// unique test ID and the test name. Loggers obtained from the returned
// context include both values.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.NewString()

	base, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	ctx := context.WithValue(base, testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// GetTestInfo extracts the test metadata from a context. The second return
// is false when the context did not come from GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := ctx.Value(testIdKey).(string)
	if !ok {
		return Info{}, false
	}

	name, _ := ctx.Value(testNameKey).(string)

	return Info{Id: id, Name: name}, true
}
