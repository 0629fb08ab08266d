// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package description

import "github.com/z5labs/timefmt/timeerr"

// Item is one compiled unit of a format description. It is one of
// [Literal], a [Component], [Compound] or [WellKnown].
type Item interface {
	item()
}

// Literal is raw bytes which are emitted or matched verbatim.
type Literal string

func (Literal) item() {}

// Compound is a nested run of items which behaves exactly like
// its items would if they were inlined.
type Compound []Item

func (Compound) item() {}

// WellKnown is a standardized format with behavior which cannot be
// expressed as a sequence of components.
type WellKnown int

const (
	// RFC3339 is the internet date and time format of RFC 3339,
	// e.g. 1985-04-12T23:20:50.52Z.
	RFC3339 WellKnown = iota + 1
)

func (WellKnown) item() {}

// String implements the [fmt.Stringer] interface.
func (w WellKnown) String() string {
	if w == RFC3339 {
		return "RFC3339"
	}
	return "unknown"
}

// Equal reports whether a and b describe the same item.
// Compounds are compared element by element.
func Equal(a, b Item) bool {
	x, ok := a.(Compound)
	if !ok {
		if _, ok := b.(Compound); ok {
			return false
		}
		return a == b
	}
	y, ok := b.(Compound)
	return ok && EqualSequence(x, y)
}

// EqualSequence reports whether a and b hold equal items in the same order.
func EqualSequence(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// AsComponent narrows item to a Component.
func AsComponent(item Item) (Component, error) {
	c, ok := item.(Component)
	if !ok {
		return nil, timeerr.DifferentVariantError{}
	}
	return c, nil
}

// AsCompound narrows item to a Compound.
func AsCompound(item Item) (Compound, error) {
	c, ok := item.(Compound)
	if !ok {
		return nil, timeerr.DifferentVariantError{}
	}
	return c, nil
}
