package validate

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/flowlabs/flow-common/errors"
	"github.com/flowlabs/flow-common/logger"
)

// HasValidate is the interface for types that can validate themselves
// without a context. Validate should be idempotent and return nil when the
// value is valid.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is the interface for types that need a context
// during validation, for cancellation or request-scoped values.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate checks a value against the validation interfaces. Values that
// implement HasValidate are validated directly; values that implement
// HasValidateWithContext are validated with the given context; values that
// implement neither (including nil values) pass. Failures are wrapped with
// errors.ErrValidation so callers can detect them with errors.Is.
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	err := validateInternal(ctx, value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

func validateInternal(ctx context.Context, value any) error {
	if isNilish(value) {
		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}

	switch v := value.(type) {
	case HasValidate:
		return timed(v, func() error {
			return v.Validate()
		})
	case HasValidateWithContext:
		return timed(v, func() error {
			return v.Validate(ctx)
		})
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		validationsTotal.WithLabelValues("false", "false").Inc()

		return nil
	}
}

// timed runs a validation function, recording call counts and duration.
func timed(value any, validate func() error) error {
	start := time.Now()
	err := validate()
	millis := float64(time.Since(start).Milliseconds())

	hasError := strconv.FormatBool(err != nil)

	validationsTotal.WithLabelValues("true", hasError).Inc()
	validationTime.WithLabelValues(fmt.Sprintf("%T", value), hasError).Observe(millis)

	return err
}

// isNilish returns true for a literal nil and for typed values that point at
// nothing (nil pointers, maps, slices, channels, funcs, interfaces).
func isNilish(value any) bool {
	if value == nil {
		return true
	}

	val := reflect.ValueOf(value)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return val.IsNil()
	}

	return false
}
