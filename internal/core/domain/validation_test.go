package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() CampaignRequest {
	return CampaignRequest{
		Title:        "Launch",
		Description:  "D",
		Budget:       "1.0",
		Reward:       "0.5",
		DurationDays: "7",
	}
}

func requireRejected(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "expected validation error, got %v", err)
	require.Equal(t, msg, UserMessage(err))
}

func TestValidateCampaign(t *testing.T) {
	in, err := ValidateCampaign(validRequest())
	require.NoError(t, err)
	require.Equal(t, "Launch", in.Title)
	require.Equal(t, "1000000000000000000", in.Budget.String())
	require.Equal(t, "500000000000000000", in.Reward.String())
	require.Equal(t, uint64(7), in.DurationDays)
}

func TestValidateCampaignZeroReward(t *testing.T) {
	req := validRequest()
	req.Budget, req.Reward = "1", "0"

	in, err := ValidateCampaign(req)
	require.NoError(t, err)
	require.Equal(t, int64(0), in.Reward.Int64())
	require.Equal(t, "1000000000000000000", in.Budget.String())
}

func TestValidateCampaignMissingFields(t *testing.T) {
	mutators := map[string]func(*CampaignRequest){
		"title":       func(r *CampaignRequest) { r.Title = "" },
		"description": func(r *CampaignRequest) { r.Description = "  " },
		"budget":      func(r *CampaignRequest) { r.Budget = "" },
		"reward":      func(r *CampaignRequest) { r.Reward = "" },
		"duration":    func(r *CampaignRequest) { r.DurationDays = "" },
	}
	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := ValidateCampaign(req)
			requireRejected(t, err, MsgMissingFields)
		})
	}
}

func TestValidateCampaignRewardExceedsBudget(t *testing.T) {
	pairs := [][2]string{
		{"1", "2"},
		{"0", "0.000000000000000001"},
		{"-1", "0"},
		{"10.5", "10.50000001"},
	}
	durations := []string{"7", "0", "x"}
	for _, p := range pairs {
		for _, d := range durations {
			req := validRequest()
			req.Budget, req.Reward, req.DurationDays = p[0], p[1], d
			_, err := ValidateCampaign(req)
			requireRejected(t, err, MsgRewardExceedsBudget)
		}
	}
}

func TestValidateCampaignInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		req  func() CampaignRequest
		msg  string
	}{
		{"budget not a number", func() CampaignRequest { r := validRequest(); r.Budget = "lots"; return r }, MsgInvalidAmount},
		{"negative amounts", func() CampaignRequest { r := validRequest(); r.Budget, r.Reward = "-1", "-2"; return r }, MsgInvalidAmount},
		{"zero budget", func() CampaignRequest { r := validRequest(); r.Budget, r.Reward = "0", "0"; return r }, MsgInvalidAmount},
		{"too precise", func() CampaignRequest { r := validRequest(); r.Budget = "1.0000000000000000001"; return r }, MsgInvalidAmount},
		{"zero days", func() CampaignRequest { r := validRequest(); r.DurationDays = "0"; return r }, MsgInvalidDuration},
		{"fractional days", func() CampaignRequest { r := validRequest(); r.DurationDays = "1.5"; return r }, MsgInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCampaign(tt.req())
			requireRejected(t, err, tt.msg)
		})
	}
}

func TestCheckBalance(t *testing.T) {
	budget := big.NewInt(100)
	require.NoError(t, CheckBalance(big.NewInt(100), budget))
	requireRejected(t, CheckBalance(big.NewInt(99), budget), MsgInsufficientBalance)
	requireRejected(t, CheckBalance(nil, budget), MsgInsufficientBalance)
}
