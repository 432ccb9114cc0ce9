package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Show the current native-token rate and the contract balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			currency := strings.ToUpper(app.cfg.Price.Currency)

			if err := app.oracle.Refresh(ctx); err != nil {
				fmt.Fprintf(out, "Rate:              %s\n", color.YellowString("unavailable"))
			} else {
				rate, _ := app.oracle.CurrentRate()
				fmt.Fprintf(out, "Rate:              1 %s = %s %s\n", domain.Symbol, rate.StringFixed(2), currency)
			}

			balance, err := app.ledger.ContractBalance(ctx)
			if err != nil {
				return errors.New(domain.UserMessage(err))
			}
			fmt.Fprintf(out, "Contract balance:  %s %s\n", domain.FormatAmount(balance), domain.Symbol)
			if app.signer != nil {
				fmt.Fprintf(out, "Signing account:   %s\n", app.signer.Account())
			}
			return nil
		},
	}
}
