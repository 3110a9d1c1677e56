package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bobg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/numwords"
)

func newCurrencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currency <amount> [code]",
		Short: "Spell a currency amount as words",
		Long: `Spell a decimal amount followed by the currency's unit names.

The amount is rounded to the currency's minor unit. The code defaults to
the "currency" setting (NUMWORDS_CURRENCY or the config file).`,
		Example: `  numwords currency 12.50 USD
  numwords currency --lang de 1.01 EUR`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return errors.Wrapf(numwords.ErrInvalidNumber, "amount %q", args[0])
			}

			code := a.v.GetString("currency")
			if len(args) == 2 {
				code = args[1]
			}
			if code == "" {
				return errors.New("no currency code given")
			}

			words, err := numwords.ToCurrencyWordsDecimal(lang, code, amount)
			if err != nil {
				return err
			}
			a.logger.Debug("spelled amount", slog.String("amount", amount.String()), slog.String("code", code))
			fmt.Fprintln(cmd.OutOrStdout(), words)
			return nil
		},
	}
}
