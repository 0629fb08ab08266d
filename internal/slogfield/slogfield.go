// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides typed [slog.Attr] constructors for the fields
// the command line logs.
package slogfield

import (
	"log/slog"

	"github.com/z5labs/timefmt/description"
)

// Error logs err under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String logs a string value.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int logs an int value.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Description logs items in their canonical grammar form.
func Description(key string, items []description.Item) slog.Attr {
	return slog.String(key, description.Render(items...))
}

// Line logs a 1-based input line number.
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}
