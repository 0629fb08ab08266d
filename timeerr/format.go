// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

import "fmt"

type formatKind int

const (
	formatInsufficientTypeInformation formatKind = iota + 1
	formatInvalidComponent
	formatIO
)

// FormatError occurs when a value cannot be formatted. It holds exactly one of:
// insufficient type information, an invalid component or an I/O failure
// encountered while writing the output.
type FormatError struct {
	kind      formatKind
	component string
	err       error
}

// ErrInsufficientTypeInformation occurs when the type being formatted
// cannot supply a value required by one of the components.
var ErrInsufficientTypeInformation = FormatError{kind: formatInsufficientTypeInformation}

// FormatInvalidComponent returns a FormatError for a component
// whose value cannot be rendered by the requested format.
func FormatInvalidComponent(name string) FormatError {
	return FormatError{kind: formatInvalidComponent, component: name}
}

// FormatIO wraps an I/O failure encountered while writing formatted output.
func FormatIO(err error) FormatError {
	return FormatError{kind: formatIO, err: err}
}

// Error implements the [builtin.error] interface.
func (e FormatError) Error() string {
	switch e.kind {
	case formatInsufficientTypeInformation:
		return "the type being formatted does not contain sufficient information to format a component"
	case formatInvalidComponent:
		return fmt.Sprintf("the %s component cannot be formatted into the requested format", e.component)
	case formatIO:
		return e.err.Error()
	default:
		return "failed to format value"
	}
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
// Only the I/O variant has a cause.
func (e FormatError) Unwrap() error {
	if e.kind != formatIO {
		return nil
	}
	return e.err
}

// IsInsufficientTypeInformation reports whether e is [ErrInsufficientTypeInformation].
func (e FormatError) IsInsufficientTypeInformation() bool {
	return e.kind == formatInsufficientTypeInformation
}

// InvalidComponent returns the name of the component which could not be formatted.
func (e FormatError) InvalidComponent() (string, bool) {
	return e.component, e.kind == formatInvalidComponent
}

// UnwrapIO narrows e back to the I/O failure it wraps.
func (e FormatError) UnwrapIO() (ioErr error, err error) {
	if e.kind != formatIO {
		return nil, DifferentVariantError{}
	}
	return e.err, nil
}

func (FormatError) errorVariant() {}
