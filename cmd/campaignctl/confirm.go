package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

var errCancelled = errors.New("cancelled")

// promptConfirmer shows the campaign summary and asks for a yes/no answer on
// the terminal.
type promptConfirmer struct {
	out io.Writer
	ask func(label string) error
}

func newPromptConfirmer(out io.Writer) *promptConfirmer {
	return &promptConfirmer{out: out, ask: askConfirm}
}

func (p *promptConfirmer) Confirm(_ context.Context, s domain.Summary) (bool, error) {
	fmt.Fprintf(p.out, "\n%s\n\n", s.String())

	err := p.ask("Create this campaign")
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, errCancelled
	default:
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
}

func askConfirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err
}

// autoConfirmer approves every campaign. Used with --yes.
type autoConfirmer struct {
	out io.Writer
}

func (a autoConfirmer) Confirm(_ context.Context, s domain.Summary) (bool, error) {
	fmt.Fprintf(a.out, "\n%s\n\n", s.String())
	return true, nil
}
