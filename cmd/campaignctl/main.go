package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	app      *appDeps
	dimColor = color.New(color.Faint)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campaignctl",
		Short: "Manage on-chain marketing campaigns",
		Long: `campaignctl creates, lists, joins and claims marketing campaigns held by the
campaign contract. Configuration is read from the environment and an optional
.env file, using the same variables as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			a, err := newApp(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				app.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level to stderr")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newCreateCmd(),
		newParticipateCmd(),
		newClaimCmd(),
		newPriceCmd(),
		newWatchCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
