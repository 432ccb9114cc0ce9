package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/adapter/usecase"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

func init() {
	color.NoColor = true
}

var outputNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPrintCampaigns(t *testing.T) {
	var out bytes.Buffer
	printCampaigns(&out, []domain.Campaign{
		{ID: 0, Title: "Open", Budget: "1.0", Reward: "0.1", IsActive: true, EndTime: outputNow.Add(24 * time.Hour), ParticipantCount: 3},
		{ID: 1, Title: "Closed", Budget: "2.0", Reward: "0.2", IsActive: true, EndTime: outputNow.Add(-time.Hour)},
	}, outputNow)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "PARTICIPANTS")
	assert.Contains(t, string(lines[1]), "Open")
	assert.Contains(t, string(lines[1]), "Active")
	assert.Contains(t, string(lines[1]), "2024-06-02")
	assert.Contains(t, string(lines[2]), "Ended")
}

func TestPrintCampaigns_Empty(t *testing.T) {
	var out bytes.Buffer
	printCampaigns(&out, nil, outputNow)
	assert.Equal(t, "No campaigns found.\n", out.String())
}

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		name string
		out  usecase.Outcome
		want string
	}{
		{
			name: "confirmed",
			out:  usecase.Outcome{State: usecase.StateConfirmed, Receipt: domain.Receipt{TxHash: "0xabc", BlockNumber: 7}},
			want: "Confirmed: transaction 0xabc mined in block 7\n",
		},
		{
			name: "cancelled",
			out:  usecase.Outcome{State: usecase.StateCancelled},
			want: "Cancelled.\n",
		},
		{
			name: "rejected",
			out:  usecase.Outcome{State: usecase.StateRejected, Err: domain.NewValidationError(domain.MsgRewardExceedsBudget)},
			want: "Rejected: " + domain.MsgRewardExceedsBudget + "\n",
		},
		{
			name: "failed hides raw errors",
			out:  usecase.Outcome{State: usecase.StateFailed, Err: errors.New("dial tcp: secret host")},
			want: "Failed: " + domain.UserMessage(errors.New("x")) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printOutcome(&out, tt.out)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	_, err = parseID("-1")
	assert.Error(t, err)
	_, err = parseID("abc")
	assert.Error(t, err)
}
