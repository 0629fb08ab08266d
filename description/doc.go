// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package description compiles textual format descriptions into the items
// which the formatting and parsing packages interpret.
//
// A format description is literal text interleaved with bracketed components:
//
//	[year]-[month repr:short]-[day padding:none] [hour repr:12]:[minute] [period case:lower]
//
// Text outside of brackets is matched or emitted verbatim and "[[" escapes a literal '['.
// A bracketed span names exactly one component followed by whitespace separated
// key:value modifiers. The zero value of every component is its default, so
//
//	items, _ := description.Compile("[month]")
//	items[0] == description.Month{}
package description
