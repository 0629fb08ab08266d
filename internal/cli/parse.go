// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/z5labs/timefmt"
	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/formatting"

	"github.com/spf13/cobra"
)

type value interface {
	fmt.Stringer
	formatting.Value
}

type parseFunc func(input string, items []description.Item) (value, error)

func parseAs[T timefmt.Value](input string, items []description.Item) (value, error) {
	v, err := timefmt.Parse[T](input, items...)
	if err != nil {
		return nil, wrap(err)
	}
	return any(v).(value), nil
}

var kinds = map[string]parseFunc{
	"date":            parseAs[calendar.Date],
	"time":            parseAs[calendar.Time],
	"offset":          parseAs[calendar.Offset],
	"datetime":        parseAs[calendar.DateTime],
	"offset-datetime": parseAs[calendar.OffsetDateTime],
}

// UnknownKindError occurs when --kind names no calendar value.
type UnknownKindError struct {
	Kind string
}

// Error implements the [builtin.error] interface.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown kind %q: expected one of date, time, offset, datetime or offset-datetime", e.Kind)
}

func parserFor(kind string) (parseFunc, error) {
	f, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}
	return f, nil
}

func (a *app) parseCmd() *cobra.Command {
	var (
		desc string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse input into a calendar value and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, err := parserFor(kind)
			if err != nil {
				return err
			}
			items, err := a.items(desc)
			if err != nil {
				return err
			}

			v, err := parse(args[0], items)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, v)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&desc, "description", "d", "", "format description or @name of a configured one")
	flags.StringVar(&kind, "kind", "offset-datetime", "value to parse: date, time, offset, datetime or offset-datetime")
	cmd.MarkFlagRequired("description")
	return cmd
}
