// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package timefmt formats and parses calendar values using a small bracketed
// format description language.
//
// The module is built around three pieces:
//
//   - description: compiles text such as "[year]-[month]-[day]" into items
//   - formatting and parsing: interpret those items to render or read text
//   - timeerr: the error kinds every step reports, convertible between specific and general forms
//
// # Format Descriptions
//
// Literal text is copied verbatim. A component is written in brackets with
// optional key:value modifiers and "[[" produces a literal "[":
//
//	[weekday repr:short], [day padding:none] [month repr:long] [year]
//
// # Basic Usage
//
// Compile a description once and reuse it for any number of calls:
//
//	items := description.MustCompile("[hour]:[minute]")
//	t, err := timefmt.Parse[calendar.Time]("13:45", items...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := formatting.String(t, items...)
//
// Compiled items are immutable and safe to share between goroutines.
package timefmt
