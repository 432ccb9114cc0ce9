package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/usecase"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

func campaignStatus(c domain.Campaign, now time.Time) string {
	if c.EffectiveActive(now) {
		return color.GreenString("Active")
	}
	return color.YellowString("Ended")
}

func printCampaigns(w io.Writer, campaigns []domain.Campaign, now time.Time) {
	if len(campaigns) == 0 {
		fmt.Fprintln(w, "No campaigns found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBUDGET\tREWARD\tPARTICIPANTS\tENDS\tSTATUS")
	for _, c := range campaigns {
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s %s\t%d\t%s\t%s\n",
			c.ID, c.Title, c.Budget, domain.Symbol, c.Reward, domain.Symbol, c.ParticipantCount, c.EndDate(), campaignStatus(c, now))
	}
	tw.Flush()
}

func printCampaign(w io.Writer, c domain.Campaign, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", c.Title)
	fmt.Fprintf(tw, "Description:\t%s\n", c.Description)
	fmt.Fprintf(tw, "Owner:\t%s\n", c.Owner)
	fmt.Fprintf(tw, "Budget:\t%s %s\n", c.Budget, domain.Symbol)
	fmt.Fprintf(tw, "Reward:\t%s %s\n", c.Reward, domain.Symbol)
	fmt.Fprintf(tw, "Window:\t%s to %s\n", c.StartDate(), c.EndDate())
	fmt.Fprintf(tw, "Participants:\t%d\n", c.ParticipantCount)
	fmt.Fprintf(tw, "Status:\t%s\n", campaignStatus(c, now))
	tw.Flush()
}

// printOutcome reports the terminal state of a write flow. Errors are shown
// by their user message only.
func printOutcome(w io.Writer, out usecase.Outcome) {
	switch out.State {
	case usecase.StateConfirmed:
		fmt.Fprintf(w, "%s transaction %s mined in block %d\n",
			color.GreenString("Confirmed:"), out.Receipt.TxHash, out.Receipt.BlockNumber)
	case usecase.StateCancelled:
		fmt.Fprintln(w, color.YellowString("Cancelled."))
	case usecase.StateRejected:
		fmt.Fprintf(w, "%s %s\n", color.RedString("Rejected:"), domain.UserMessage(out.Err))
	case usecase.StateFailed:
		fmt.Fprintf(w, "%s %s\n", color.RedString("Failed:"), domain.UserMessage(out.Err))
	default:
		fmt.Fprintf(w, "Finished in state %s\n", out.State)
	}
}

// transitionPrinter returns an observer that echoes state changes dimmed.
func transitionPrinter(w io.Writer) func(usecase.Transition) {
	return func(t usecase.Transition) {
		if t.To == usecase.StateIdle {
			return
		}
		dimColor.Fprintf(w, "[%s] %s -> %s\n", t.Flow, t.From, t.To)
	}
}
