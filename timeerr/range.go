// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

import "fmt"

// ComponentRangeError occurs when a calendar component is outside of its legal range.
type ComponentRangeError struct {
	// Name is the symbolic name of the component, e.g. "ordinal".
	Name    string
	Minimum int64
	Maximum int64
	Value   int64

	// Conditional reports whether the legal range depends on the
	// values of other components, e.g. the day of a month.
	Conditional bool
}

// Error implements the [builtin.error] interface.
func (e ComponentRangeError) Error() string {
	msg := fmt.Sprintf("%s must be in the range %d..=%d", e.Name, e.Minimum, e.Maximum)
	if e.Conditional {
		msg += ", given values of other parameters"
	}
	return msg
}

func (ComponentRangeError) errorVariant() {}

// ConversionRangeError occurs when a value overflows the target
// representation during a lossy conversion.
type ConversionRangeError struct{}

// Error implements the [builtin.error] interface.
func (ConversionRangeError) Error() string {
	return "source value is out of range for the target type"
}

func (ConversionRangeError) errorVariant() {}

// IndeterminateOffsetError occurs when an operation requires a UTC offset
// which was never supplied and cannot be assumed.
type IndeterminateOffsetError struct{}

// Error implements the [builtin.error] interface.
func (IndeterminateOffsetError) Error() string {
	return "the utc offset could not be determined"
}

func (IndeterminateOffsetError) errorVariant() {}

// DifferentVariantError occurs when narrowing an error into a kind
// which does not match the stored variant.
type DifferentVariantError struct{}

// Error implements the [builtin.error] interface.
func (DifferentVariantError) Error() string {
	return "value was of a different variant than required"
}

func (DifferentVariantError) errorVariant() {}
