// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timeerr

// Variant is implemented by every error kind an [Error] can hold.
type Variant interface {
	error
	errorVariant()
}

// Error can hold any error produced by this module.
type Error struct {
	variant Variant
}

// From wraps v in the universal error. A [ParseError] is flattened
// so that the stored variant is always a leaf or [FormatError] or [ResolveError].
func From(v Variant) Error {
	if p, ok := v.(ParseError); ok && p.variant != nil {
		return Error{variant: p.variant.(Variant)}
	}
	return Error{variant: v}
}

// Into narrows e into the exact error kind T. Narrowing into [ParseError]
// succeeds for any variant a ParseError can hold.
func Into[T Variant](e Error) (T, error) {
	var zero T
	if _, ok := any(zero).(ParseError); ok {
		p, err := ParseFrom(e)
		if err != nil {
			return zero, err
		}
		return any(p).(T), nil
	}

	v, ok := e.variant.(T)
	if !ok {
		return zero, DifferentVariantError{}
	}
	return v, nil
}

// Variant returns the error held by e.
func (e Error) Variant() Variant {
	return e.variant
}

// Error implements the [builtin.error] interface.
func (e Error) Error() string {
	if e.variant == nil {
		return "unknown error"
	}
	return e.variant.Error()
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e Error) Unwrap() error {
	return causeOf(e.variant)
}

// As implements the implicit interface used by [errors.As] so that
// variants without a cause can still be extracted.
func (e Error) As(target any) bool {
	if p, ok := target.(*ParseError); ok {
		pe, err := ParseFrom(e)
		if err != nil {
			return false
		}
		*p = pe
		return true
	}
	return assignVariant(e.variant, target)
}

// causeOf reports the cause exposed by a containing kind holding v.
// Trailing characters is a leaf with nothing richer beneath it.
func causeOf(v error) error {
	switch v.(type) {
	case nil, TrailingCharactersError:
		return nil
	}
	return v
}

func assignVariant(v error, target any) bool {
	switch t := target.(type) {
	case *TrailingCharactersError:
		x, ok := v.(TrailingCharactersError)
		if ok {
			*t = x
		}
		return ok
	case *ParseComponentError:
		x, ok := v.(ParseComponentError)
		if ok {
			*t = x
		}
		return ok
	case *InvalidDescriptionError:
		x, ok := v.(InvalidDescriptionError)
		if ok {
			*t = x
		}
		return ok
	case *ResolveError:
		x, ok := v.(ResolveError)
		if ok {
			*t = x
		}
		return ok
	}
	return false
}
