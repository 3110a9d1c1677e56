package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/internal/locale"
)

func newLanguagesCmd(a *app) *cobra.Command {
	var codes bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the bundled languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, l := range locale.Supported() {
				lex := l.Lexicon()
				table := l.Currencies()
				fmt.Fprintf(out, "%-4s %-10s %2d digits  %2d currencies\n",
					l.Tag(), l.Name(), lex.MaxDigits(), len(table.Codes()))
				if codes {
					fmt.Fprintf(out, "     %s\n", strings.Join(table.Codes(), " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&codes, "codes", false, "list currency codes")
	return cmd
}
