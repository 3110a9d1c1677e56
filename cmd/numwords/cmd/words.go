package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bobg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/numwords"
)

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words <number>...",
		Short: "Spell integers as words",
		Long: `Spell each integer argument as words, one per line.

Arguments are decimal digit strings of any length with an optional sign.
Put negative numbers after "--" so they are not read as flags.`,
		Example: `  numwords words 2025
  numwords words --lang de 1000001
  numwords words -- -42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			for _, arg := range args {
				words, err := numwords.ToWordsDigits(lang, arg)
				if err != nil {
					return errors.Wrapf(err, "spelling %q", arg)
				}
				a.logger.Debug("spelled", slog.String("input", arg), slog.Int("bytes", len(words)))
				fmt.Fprintln(cmd.OutOrStdout(), words)
			}
			return nil
		},
	}
}
