// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

import "fmt"

type resolveKind int

const (
	resolveComponentRange resolveKind = iota + 1
	resolveInsufficientInformation
	resolveInconsistent
)

// ResolveError occurs when parsed fields cannot be turned into a calendar value.
// It holds exactly one of: a [ComponentRangeError], insufficient information or
// a field inconsistent with the rest of the parsed fields.
type ResolveError struct {
	kind  resolveKind
	rng   ComponentRangeError
	field string
}

// ErrInsufficientInformation occurs when the parsed fields do not
// determine a unique value of the requested type.
var ErrInsufficientInformation = ResolveError{kind: resolveInsufficientInformation}

// ResolveComponentRange wraps a range violation found during resolution.
func ResolveComponentRange(e ComponentRangeError) ResolveError {
	return ResolveError{kind: resolveComponentRange, rng: e}
}

// ResolveInconsistent returns a ResolveError for a field which
// contradicts the value implied by the other parsed fields.
func ResolveInconsistent(field string) ResolveError {
	return ResolveError{kind: resolveInconsistent, field: field}
}

// Error implements the [builtin.error] interface.
func (e ResolveError) Error() string {
	switch e.kind {
	case resolveComponentRange:
		return e.rng.Error()
	case resolveInsufficientInformation:
		return "the parsed fields do not include enough information to construct the requested type"
	case resolveInconsistent:
		return fmt.Sprintf("the parsed %s is inconsistent with the other parsed fields", e.field)
	default:
		return "failed to resolve parsed fields"
	}
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
// Only the component range variant has a cause.
func (e ResolveError) Unwrap() error {
	if e.kind != resolveComponentRange {
		return nil
	}
	return e.rng
}

// ComponentRange narrows e back to the range violation it wraps.
func (e ResolveError) ComponentRange() (ComponentRangeError, error) {
	if e.kind != resolveComponentRange {
		return ComponentRangeError{}, DifferentVariantError{}
	}
	return e.rng, nil
}

// IsInsufficientInformation reports whether e is [ErrInsufficientInformation].
func (e ResolveError) IsInsufficientInformation() bool {
	return e.kind == resolveInsufficientInformation
}

// Inconsistent returns the name of the contradicting field.
func (e ResolveError) Inconsistent() (string, bool) {
	return e.field, e.kind == resolveInconsistent
}

func (ResolveError) errorVariant() {}
func (ResolveError) parseVariant() {}
