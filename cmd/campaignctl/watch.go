package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/ethereum"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow network changes and reload campaigns until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			o := app.orchestrator(nil)
			watcher := ethereum.NewChainWatcher(app.ledger, app.cfg.Ledger.WatchInterval, app.logger)
			stop := o.Watch(ctx, watcher)
			defer stop()

			unsubscribe := watcher.Subscribe(func(ev domain.WalletEvent) {
				fmt.Fprintf(out, "%s chain=%d, reloading campaigns\n", color.CyanString(string(ev.Type)), ev.ChainID)
			})
			defer unsubscribe()

			dimColor.Fprintf(out, "watching chain %d every %s, press Ctrl+C to stop\n",
				app.chainID, app.cfg.Ledger.WatchInterval)
			watcher.Run(ctx)
			return nil
		},
	}
}
