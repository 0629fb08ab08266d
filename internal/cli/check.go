// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"fmt"

	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/internal/slogfield"

	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <description>",
		Short: "Validate a format description and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.items(args[0])
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "compiled description", slogfield.Int("items", len(items)))

			_, err = fmt.Fprintln(a.stdout, description.Render(items...))
			return err
		},
	}
}
