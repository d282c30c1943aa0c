package main

import (
	"fmt"
	"strconv"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPriceCmd(opts *rootOptions) *cobra.Command {
	var from, to, rate string

	cmd := &cobra.Command{
		Use:   "price AMOUNT",
		Short: "Format an amount the way the menu displays it",
		Example: `  menuctl price 5.5 --to LBP
  menuctl price 800000 --from LBP --to USD --rate 89500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[0])
			}
			base, ok := domain.ParseCurrency(from)
			if !ok {
				return fmt.Errorf("unsupported currency %q", from)
			}
			display, ok := domain.ParseCurrency(to)
			if !ok {
				return fmt.Errorf("unsupported currency %q", to)
			}

			lbpRate := opts.cfg.DefaultExchangeRate
			if rate != "" {
				if lbpRate, err = decimal.NewFromString(rate); err != nil {
					return fmt.Errorf("rate %q is not a number", rate)
				}
			}

			formatted, err := utils.FormatPriceFloat(amount, base, display, lbpRate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", string(domain.USD), "currency the amount is stored in")
	cmd.Flags().StringVar(&to, "to", string(domain.USD), "currency to display")
	cmd.Flags().StringVar(&rate, "rate", "", "LBP per USD (defaults to DEFAULT_EXCHANGE_RATE)")
	return cmd
}
