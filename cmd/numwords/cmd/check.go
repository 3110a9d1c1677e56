package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/internal/locale"
	"github.com/az-ai-labs/numwords/internal/sweep"
	"github.com/az-ai-labs/numwords/numwords"
)

var (
	// errCheckFailed is returned when a sweep finds violations.
	errCheckFailed = errors.New("check failed")

	errInvalidRange = errors.New("invalid range")
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		opts sweep.Options
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify output invariants over a range of numbers",
		Long: `Spell every number in [--from, --to] and verify that the output is
non-empty, has no stray separators, and that each negative number is the
minus word followed by its magnitude.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From > opts.To {
				return errors.Wrapf(errInvalidRange, "--from %d is greater than --to %d", opts.From, opts.To)
			}

			var langs []numwords.Language
			if all {
				langs = locale.Supported()
			} else {
				lang, err := a.language()
				if err != nil {
					return err
				}
				langs = []numwords.Language{lang}
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, lang := range langs {
				start := time.Now()
				stats := sweep.Run(lang, opts)
				a.logger.Debug("sweep done",
					slog.String("lang", lang.Name()),
					slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

				fmt.Fprintf(out, "%-10s checked %d  failed %d  errors %d\n",
					stats.Language, stats.Checked, stats.Failed, stats.Errors)
				for _, v := range stats.Violations {
					fmt.Fprintf(out, "  %d: %q: %s\n", v.Number, v.Words, v.Reason)
				}
				if !stats.OK() {
					failed = true
				}
			}

			if failed {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.From, "from", -10000, "first number")
	cmd.Flags().Int64Var(&opts.To, "to", 100000, "last number")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "concurrent workers")
	cmd.Flags().BoolVar(&all, "all", false, "check every bundled language")
	return cmd
}
