package domain

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCreateScenario(t *testing.T) {
	in, err := ValidateCampaign(validRequest())
	require.NoError(t, err)

	d := BuildCreate(in)
	require.Equal(t, Descriptor{
		Method: "createCampaign",
		Params: []any{"Launch", "D", "1000000000000000000", "500000000000000000", uint64(604800)},
		Value:  "1000000000000000000",
	}, d)
}

func TestBuildCreateProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		days := uint64(r.Intn(3650) + 1)
		req := CampaignRequest{
			Title:        "t",
			Description:  "d",
			Budget:       strconv.Itoa(r.Intn(1000) + 1),
			Reward:       "1",
			DurationDays: strconv.FormatUint(days, 10),
		}
		in, err := ValidateCampaign(req)
		require.NoError(t, err)

		first, second := BuildCreate(in), BuildCreate(in)
		require.Equal(t, first, second)
		require.Equal(t, first.Value, first.Params[2])
		require.Equal(t, days*86400, first.Params[4])

		v, ok := first.ValueInt()
		require.True(t, ok)
		require.Equal(t, in.Budget, v)
	}
}

func TestBuildParticipateAndClaim(t *testing.T) {
	p := BuildParticipate(3)
	require.Equal(t, MethodParticipate, p.Method)
	require.Equal(t, []any{"3"}, p.Params)
	require.Equal(t, "0", p.Value)

	c := BuildClaim(4)
	require.Equal(t, MethodClaimReward, c.Method)
	require.Equal(t, []any{"4"}, c.Params)
}
