// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package parsing reads text described by format description items into a
// [Parsed] accumulator and resolves the accumulated fields into calendar values.
//
// Parsing is all-or-nothing: a call which fails leaves the accumulator exactly
// as it was before the call.
package parsing
