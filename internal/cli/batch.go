// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"

	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/formatting"
	"github.com/z5labs/timefmt/internal/slogfield"
	"github.com/z5labs/timefmt/internal/try"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// BatchError occurs when one or more input lines could not be reformatted.
type BatchError struct {
	Failed int

	// Cause is the failure of the first line which failed.
	Cause error
}

// Error implements the [builtin.error] interface.
func (e BatchError) Error() string {
	return fmt.Sprintf("failed to reformat %d line(s): %s", e.Failed, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e BatchError) Unwrap() error {
	return e.Cause
}

func (a *app) batchCmd() *cobra.Command {
	var (
		from    string
		to      string
		kind    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Reformat every line of stdin from one description to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, err := parserFor(kind)
			if err != nil {
				return err
			}
			fromItems, err := a.items(from)
			if err != nil {
				return err
			}
			toItems, err := a.items(to)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}

			var lines []string
			scanner := bufio.NewScanner(a.stdin)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			out, err := a.reformat(cmd.Context(), lines, parse, fromItems, toItems, workers)
			_, werr := a.stdout.Write(out)
			if err != nil {
				return err
			}
			return werr
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&from, "from", "", "description of the input lines or @name of a configured one")
	flags.StringVar(&to, "to", "", "description of the output lines or @name of a configured one")
	flags.StringVar(&kind, "kind", "offset-datetime", "value each line holds: date, time, offset, datetime or offset-datetime")
	flags.IntVar(&workers, "workers", 0, "maximum number of lines reformatted concurrently")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

// reformat converts every line concurrently while preserving input order.
// Lines which fail are logged and written out empty.
func (a *app) reformat(ctx context.Context, lines []string, parse parseFunc, from, to []description.Item, workers int) ([]byte, error) {
	results := make([][]byte, len(lines))
	errs := make([]error, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, line := range lines {
		g.Go(func() (err error) {
			defer try.Recover(&err)

			v, err := parse(line, from)
			if err == nil {
				results[i], err = formatting.Append(nil, v, to...)
				err = wrap(err)
			}
			if err != nil {
				errs[i] = err
				a.log.WarnContext(gctx, "failed to reformat line", slogfield.Line(i+1), slogfield.Error(err))
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	var (
		out    bytes.Buffer
		failed BatchError
	)
	for i, b := range results {
		out.Write(b)
		out.WriteByte('\n')
		if errs[i] == nil {
			continue
		}
		if failed.Failed == 0 {
			failed.Cause = errs[i]
		}
		failed.Failed++
	}
	if failed.Failed > 0 {
		return out.Bytes(), failed
	}
	return out.Bytes(), nil
}
