package domain

import (
	"math/big"
	"strconv"
)

// Contract methods invoked through descriptors.
const (
	MethodCreateCampaign = "createCampaign"
	MethodParticipate    = "participateInCampaign"
	MethodClaimReward    = "claimReward"
)

const SecondsPerDay = 86400

// Descriptor describes a contract call before it is signed. Params are
// ordered as the contract method expects them; big integers travel as
// base-10 strings. Value is the base-unit amount attached to the call.
type Descriptor struct {
	Method string
	Params []any
	Value  string
}

// ValueInt returns Value as an integer. An empty value is zero.
func (d Descriptor) ValueInt() (*big.Int, bool) {
	if d.Value == "" {
		return new(big.Int), true
	}
	return new(big.Int).SetString(d.Value, 10)
}

// BuildCreate produces the createCampaign call for a validated input. The
// budget is attached as value.
func BuildCreate(in CampaignInput) Descriptor {
	budget := in.Budget.String()
	return Descriptor{
		Method: MethodCreateCampaign,
		Params: []any{
			in.Title,
			in.Description,
			budget,
			in.Reward.String(),
			in.DurationDays * SecondsPerDay,
		},
		Value: budget,
	}
}

// BuildParticipate produces the participateInCampaign call.
func BuildParticipate(id uint64) Descriptor {
	return Descriptor{Method: MethodParticipate, Params: []any{strconv.FormatUint(id, 10)}, Value: "0"}
}

// BuildClaim produces the claimReward call.
func BuildClaim(id uint64) Descriptor {
	return Descriptor{Method: MethodClaimReward, Params: []any{strconv.FormatUint(id, 10)}, Value: "0"}
}

// Receipt is what the signing agent reports for a mined transaction.
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}
