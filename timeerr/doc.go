// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package timeerr defines every error produced while compiling format descriptions,
// parsing text, resolving parsed fields and formatting calendar values.
//
// The errors form a small lattice:
//
//   - Leaf kinds describe exactly one failure, e.g. [ComponentRangeError] or [InvalidDescriptionError].
//   - Containing kinds hold one of several leaves: [FormatError], [ResolveError] and [ParseError].
//   - The universal kind, [Error], can hold any error this module produces.
//
// Widening is always explicit and total ([From], [ParseOf], [ResolveComponentRange], [FormatIO]).
// Narrowing is partial and fails with [DifferentVariantError] when the stored variant does
// not match the requested kind:
//
//	e := timeerr.From(timeerr.ConversionRangeError{})
//	_, err := timeerr.Into[timeerr.ComponentRangeError](e)
//	// err is a DifferentVariantError
//
// Every containing kind displays exactly the text of the leaf it holds and exposes that
// leaf through Unwrap, so errors.Is and errors.As traverse the whole chain.
package timeerr
