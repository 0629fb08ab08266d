// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"errors"

	"github.com/z5labs/timefmt/timeerr"
)

// Exit codes reported by [Run].
const (
	ExitOK = iota
	ExitFailure
	ExitInvalidDescription
	ExitParse
	ExitResolve
	ExitFormat
	ExitRange
)

// ExitCode chooses the exit code for err from the kind of [timeerr.Error] it carries.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var terr timeerr.Error
	if !errors.As(err, &terr) {
		return ExitFailure
	}
	switch terr.Variant().(type) {
	case timeerr.InvalidDescriptionError:
		return ExitInvalidDescription
	case timeerr.ParseComponentError, timeerr.TrailingCharactersError:
		return ExitParse
	case timeerr.ResolveError:
		return ExitResolve
	case timeerr.FormatError:
		return ExitFormat
	case timeerr.ComponentRangeError, timeerr.ConversionRangeError:
		return ExitRange
	default:
		return ExitFailure
	}
}

// wrap converts errors from the library packages into the universal error.
func wrap(err error) error {
	if v, ok := err.(timeerr.Variant); ok {
		return timeerr.From(v)
	}
	return err
}
