package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/usecase"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			campaigns, err := app.registry.FetchAll(ctx)
			if err != nil {
				if werr := app.registry.Warm(ctx); werr != nil {
					return err
				}
				cached, ok := app.registry.Cached()
				if !ok {
					return err
				}
				dimColor.Fprintf(out, "ledger unreachable (%s), showing last snapshot\n", domain.UserMessage(err))
				campaigns = cached
			}
			printCampaigns(out, campaigns, time.Now())
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := app.registry.FetchOne(cmd.Context(), id)
			if err != nil {
				return errors.New(domain.UserMessage(err))
			}
			printCampaign(cmd.OutOrStdout(), c, time.Now())
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		req domain.CampaignRequest
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign and fund it with its budget",
		Long: `Create a campaign and fund it with its budget.

Missing fields are prompted for interactively. A summary with the fiat value
of budget and reward is shown before anything is signed.

Examples:
  campaignctl create --title "Spring launch" --description "Share our post" \
    --budget 1 --reward 0.01 --duration 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if err := promptMissing(&req); err != nil {
				return err
			}
			if err := app.oracle.Refresh(ctx); err != nil {
				dimColor.Fprintln(out, "price unavailable, summary will omit fiat values")
			}

			var confirmer port.Confirmer = newPromptConfirmer(out)
			if yes {
				confirmer = autoConfirmer{out: out}
			}
			o := app.orchestrator(confirmer)
			o.Observe(transitionPrinter(out))

			result, err := o.Create(ctx, req)
			printOutcome(out, result)
			if err != nil {
				return errors.New(domain.UserMessage(err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Campaign title")
	cmd.Flags().StringVar(&req.Description, "description", "", "Campaign description")
	cmd.Flags().StringVar(&req.Budget, "budget", "", "Total budget in ETH")
	cmd.Flags().StringVar(&req.Reward, "reward", "", "Reward per participant in ETH")
	cmd.Flags().StringVar(&req.DurationDays, "duration", "", "Duration in days")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newParticipateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participate <id>",
		Short: "Join an active campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], (*usecase.Orchestrator).Participate)
		},
	}
}

func newClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim the reward of an ended campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], (*usecase.Orchestrator).Claim)
		},
	}
}

type actionFn func(o *usecase.Orchestrator, ctx context.Context, id uint64) (usecase.Outcome, error)

func runAction(cmd *cobra.Command, rawID string, fn actionFn) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	o := app.orchestrator(nil)
	o.Observe(transitionPrinter(out))

	result, err := fn(o, cmd.Context(), id)
	printOutcome(out, result)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}
	return nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid campaign id %q", s)
	}
	return id, nil
}

// promptMissing asks for every empty field of req.
func promptMissing(req *domain.CampaignRequest) error {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &req.Title},
		{"Description", &req.Description},
		{"Budget (ETH)", &req.Budget},
		{"Reward per participant (ETH)", &req.Reward},
		{"Duration (days)", &req.DurationDays},
	}
	for _, f := range fields {
		if strings.TrimSpace(*f.dst) != "" {
			continue
		}
		prompt := promptui.Prompt{
			Label:    f.label,
			Validate: notEmpty,
		}
		v, err := prompt.Run()
		if err != nil {
			return handlePromptError(err, strings.ToLower(f.label))
		}
		*f.dst = v
	}
	return nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func handlePromptError(err error, what string) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errCancelled
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
