// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"github.com/z5labs/timefmt"
	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/formatting"
	"github.com/z5labs/timefmt/internal/slogfield"

	"github.com/spf13/cobra"
)

func (a *app) formatCmd() *cobra.Command {
	var (
		desc  string
		input string
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a date and time, the current time by default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.items(desc)
			if err != nil {
				return err
			}

			v, err := a.value(input)
			if err != nil {
				return err
			}
			a.log.DebugContext(
				cmd.Context(),
				"formatting value",
				slogfield.String("value", v.String()),
				slogfield.Description("description", items),
			)

			b, err := formatting.Append(nil, v, items...)
			if err != nil {
				return wrap(err)
			}
			_, err = a.stdout.Write(append(b, '\n'))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&desc, "description", "d", "", "format description or @name of a configured one")
	flags.StringVar(&input, "value", "", "RFC3339 date and time to format instead of now")
	cmd.MarkFlagRequired("description")
	return cmd
}

// value parses an RFC3339 timestamp, or returns the current time when s is empty.
func (a *app) value(s string) (calendar.OffsetDateTime, error) {
	if s == "" {
		now, err := calendar.FromStd(a.now())
		if err != nil {
			return calendar.OffsetDateTime{}, wrap(err)
		}
		return now, nil
	}

	v, err := timefmt.Parse[calendar.OffsetDateTime](s, description.RFC3339)
	if err != nil {
		return calendar.OffsetDateTime{}, wrap(err)
	}
	return v, nil
}
