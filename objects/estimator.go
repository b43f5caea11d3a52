package objects

import (
	"fmt"

	"github.com/flowlabs/flow-common/errors"
)

// Estimator is an Object that learns state from data before it can be used.
type Estimator interface {
	Object

	// IsFitted reports whether the estimator has been fitted.
	IsFitted() bool
}

// EstimatorBase is an embeddable Estimator implementation tracking fitted
// state on top of Base.
type EstimatorBase struct {
	Base

	fitted bool
}

// Compile-time assertion that EstimatorBase implements Estimator.
var _ Estimator = (*EstimatorBase)(nil)

// NewEstimatorBase creates an unfitted EstimatorBase.
func NewEstimatorBase() *EstimatorBase {
	return &EstimatorBase{
		Base: *NewBase(),
	}
}

// IsFitted reports whether MarkFitted has been called.
func (e *EstimatorBase) IsFitted() bool {
	return e.fitted
}

// MarkFitted records that fitting has completed. Implementations call this
// at the end of their fit routine.
func (e *EstimatorBase) MarkFitted() {
	e.fitted = true
}

// CheckIsFitted returns errors.ErrNotFitted when the estimator has not been
// fitted yet, and nil otherwise.
func CheckIsFitted(e Estimator) error {
	if !e.IsFitted() {
		return fmt.Errorf("%w: %T must be fitted before use", errors.ErrNotFitted, e)
	}

	return nil
}
