// Package validate provides a unified validation framework: interface-driven
// validation for types that can check themselves, and reflection-driven type
// and sequence checks for caller-supplied constraints.
package validate
