package validate

import "context"

// Func wraps a validation function into a HasValidate implementation. A nil
// function validates successfully.
func Func(f func() error) HasValidate {
	return &validateFunc{
		validate: f,
	}
}

// FuncWithContext wraps a context-aware validation function into a
// HasValidateWithContext implementation. A nil function validates
// successfully.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return &validateFuncWithContext{
		validate: f,
	}
}

type validateFunc struct {
	validate func() error
}

var _ HasValidate = (*validateFunc)(nil)

func (v *validateFunc) Validate() error {
	if v.validate != nil {
		return v.validate()
	}

	return nil
}

type validateFuncWithContext struct {
	validate func(ctx context.Context) error
}

var _ HasValidateWithContext = (*validateFuncWithContext)(nil)

func (v *validateFuncWithContext) Validate(ctx context.Context) error {
	if v.validate != nil {
		return v.validate(ctx)
	}

	return nil
}
