package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rawCampaign() RawCampaign {
	return RawCampaign{
		ID:               2,
		Owner:            "0x00000000000000000000000000000000000000aa",
		Title:            "Launch",
		Description:      "D",
		Budget:           big.NewInt(1_000_000_000_000_000_000),
		Reward:           big.NewInt(250_000_000_000_000_000),
		StartTime:        1_700_000_000,
		EndTime:          1_700_604_800,
		IsActive:         true,
		ParticipantCount: 4,
	}
}

func TestNormalize(t *testing.T) {
	c := Normalize(rawCampaign())
	require.Equal(t, "1.0", c.Budget)
	require.Equal(t, "0.25", c.Reward)
	require.Equal(t, time.Unix(1_700_000_000, 0).UTC(), c.StartTime)
	require.Equal(t, "2023-11-14", c.StartDate())
	require.Equal(t, "2023-11-21", c.EndDate())
	require.Equal(t, uint64(4), c.ParticipantCount)

	empty := Normalize(RawCampaign{})
	require.Equal(t, "0.0", empty.Budget)
	require.NotNil(t, empty.RewardWei)
}

func TestEffectiveActive(t *testing.T) {
	c := Normalize(rawCampaign())
	end := c.EndTime

	require.True(t, c.EffectiveActive(end.Add(-time.Hour)))
	require.True(t, c.EffectiveActive(end))
	require.False(t, c.EffectiveActive(end.Add(time.Second)))

	// once past the end it never comes back
	for d := time.Second; d < 48*time.Hour; d += 37 * time.Minute {
		require.False(t, c.EffectiveActive(end.Add(d)))
	}

	c.IsActive = false
	require.False(t, c.EffectiveActive(end.Add(-time.Hour)))
}

func TestGating(t *testing.T) {
	c := Normalize(rawCampaign())
	during := c.EndTime.Add(-time.Minute)
	after := c.EndTime.Add(time.Minute)

	require.True(t, c.CanParticipate(during))
	require.False(t, c.CanClaim(during))
	require.False(t, c.CanParticipate(after))
	require.True(t, c.CanClaim(after))
}
