// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package formatting renders calendar values as text according to compiled
// format description items.
//
// Output is rendered completely before anything is written, so a failed call
// never leaves a partial rendering behind in the destination.
package formatting
