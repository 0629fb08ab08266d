// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

import "fmt"

// DescriptionErrorKind enumerates the ways a format description can be malformed.
type DescriptionErrorKind int

const (
	// UnclosedOpeningBracket is a '[' with no matching ']'.
	UnclosedOpeningBracket DescriptionErrorKind = iota + 1

	// MissingComponentName is a bracketed span containing nothing but whitespace.
	MissingComponentName

	// InvalidComponentName is a bracketed span naming an unknown component.
	InvalidComponentName

	// InvalidModifier is a modifier which the named component does not accept.
	InvalidModifier
)

// InvalidDescriptionError occurs when a format description cannot be compiled.
type InvalidDescriptionError struct {
	Kind DescriptionErrorKind

	// Index is the 0-based byte offset of the offending input.
	Index int

	// Value is the offending component name or modifier. It is
	// empty for unclosed brackets and missing component names.
	Value string
}

// Error implements the [builtin.error] interface.
func (e InvalidDescriptionError) Error() string {
	switch e.Kind {
	case UnclosedOpeningBracket:
		return fmt.Sprintf("unclosed opening bracket at byte index %d", e.Index)
	case MissingComponentName:
		return fmt.Sprintf("missing component name at byte index %d", e.Index)
	case InvalidComponentName:
		return fmt.Sprintf("invalid component name `%s` at byte index %d", e.Value, e.Index)
	case InvalidModifier:
		return fmt.Sprintf("invalid modifier `%s` at byte index %d", e.Value, e.Index)
	default:
		return fmt.Sprintf("invalid format description at byte index %d", e.Index)
	}
}

func (InvalidDescriptionError) errorVariant() {}
func (InvalidDescriptionError) parseVariant() {}
