// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package calendar provides the validated calendar values which format descriptions
// render and resolve into: [Date], [Time], [Offset], [DateTime] and [OffsetDateTime].
//
// Every constructor validates its inputs and reports the first invalid component as a
// [timeerr.ComponentRangeError]. Weekday and ISO week derivation are delegated to the
// standard library's proleptic Gregorian calendar.
package calendar
