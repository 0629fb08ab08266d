// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

import "fmt"

// ParseComponentKind enumerates the ways input can fail to match a format description.
type ParseComponentKind int

const (
	// InvalidLiteral means the input did not contain the expected literal.
	InvalidLiteral ParseComponentKind = iota + 1

	// InvalidComponent means the input could not be decoded as the named component.
	InvalidComponent
)

// ParseComponentError occurs when input does not match a single
// item of a format description.
type ParseComponentError struct {
	Kind ParseComponentKind

	// Name is the component name, e.g. "week number", or
	// the expected literal for InvalidLiteral.
	Name string
}

// Error implements the [builtin.error] interface.
func (e ParseComponentError) Error() string {
	if e.Kind == InvalidLiteral {
		return fmt.Sprintf("the literal `%s` was not found", e.Name)
	}
	return fmt.Sprintf("the `%s` component could not be parsed", e.Name)
}

func (ParseComponentError) errorVariant() {}
func (ParseComponentError) parseVariant() {}

// TrailingCharactersError occurs when input remains after
// an entire format description has been matched.
type TrailingCharactersError struct{}

// Error implements the [builtin.error] interface.
func (TrailingCharactersError) Error() string {
	return "unexpected trailing characters; the end of input was expected"
}

func (TrailingCharactersError) errorVariant() {}
func (TrailingCharactersError) parseVariant() {}

// ParseVariant is implemented by every error kind a [ParseError] can hold.
type ParseVariant interface {
	error
	parseVariant()
}

// ParseError occurs when text cannot be parsed into a calendar value.
// It holds exactly one of [ResolveError], [ParseComponentError],
// [TrailingCharactersError] or [InvalidDescriptionError].
type ParseError struct {
	variant ParseVariant
}

// ParseOf wraps v in a ParseError.
func ParseOf(v ParseVariant) ParseError {
	return ParseError{variant: v}
}

// ParseFrom narrows the universal error e into a ParseError.
func ParseFrom(e Error) (ParseError, error) {
	v, ok := e.variant.(ParseVariant)
	if !ok {
		return ParseError{}, DifferentVariantError{}
	}
	return ParseError{variant: v}, nil
}

// ParseInto narrows e into the exact error kind T.
func ParseInto[T ParseVariant](e ParseError) (T, error) {
	v, ok := e.variant.(T)
	if !ok {
		var zero T
		return zero, DifferentVariantError{}
	}
	return v, nil
}

// Variant returns the error held by e.
func (e ParseError) Variant() ParseVariant {
	return e.variant
}

// Error implements the [builtin.error] interface.
func (e ParseError) Error() string {
	if e.variant == nil {
		return "failed to parse"
	}
	return e.variant.Error()
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ParseError) Unwrap() error {
	return causeOf(e.variant)
}

// As implements the implicit interface used by [errors.As] so that
// variants without a cause can still be extracted.
func (e ParseError) As(target any) bool {
	return assignVariant(e.variant, target)
}

func (ParseError) errorVariant() {}
