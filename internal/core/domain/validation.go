package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CampaignRequest is raw user input for a new campaign. Amounts are decimal
// strings in display units and DurationDays is a whole number of days.
type CampaignRequest struct {
	Title        string
	Description  string
	Budget       string
	Reward       string
	DurationDays string
}

// CampaignInput is a validated CampaignRequest.
type CampaignInput struct {
	Title        string
	Description  string
	Budget       *big.Int
	Reward       *big.Int
	DurationDays uint64
}

// ValidateCampaign checks req and returns the parsed input. Rules run in
// order and stop at the first failure: missing fields, malformed amounts,
// reward above budget, amount range and precision, duration.
func ValidateCampaign(req CampaignRequest) (CampaignInput, error) {
	fields := []string{req.Title, req.Description, req.Budget, req.Reward, req.DurationDays}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return CampaignInput{}, NewValidationError(MsgMissingFields)
		}
	}

	budgetDec, err := decimal.NewFromString(strings.TrimSpace(req.Budget))
	if err != nil {
		return CampaignInput{}, NewValidationError(MsgInvalidAmount)
	}
	rewardDec, err := decimal.NewFromString(strings.TrimSpace(req.Reward))
	if err != nil {
		return CampaignInput{}, NewValidationError(MsgInvalidAmount)
	}
	if rewardDec.GreaterThan(budgetDec) {
		return CampaignInput{}, NewValidationError(MsgRewardExceedsBudget)
	}

	budget, err := ParseAmount(req.Budget)
	if err != nil || budget.Sign() == 0 {
		return CampaignInput{}, NewValidationError(MsgInvalidAmount)
	}
	reward, err := ParseAmount(req.Reward)
	if err != nil {
		return CampaignInput{}, NewValidationError(MsgInvalidAmount)
	}

	days, err := strconv.ParseUint(strings.TrimSpace(req.DurationDays), 10, 64)
	if err != nil || days == 0 || days > math.MaxUint64/SecondsPerDay {
		return CampaignInput{}, NewValidationError(MsgInvalidDuration)
	}

	return CampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Budget:       budget,
		Reward:       reward,
		DurationDays: days,
	}, nil
}

// CheckBalance enforces that the acting account can fund the budget.
func CheckBalance(balance, budget *big.Int) error {
	if balance == nil || balance.Cmp(budget) < 0 {
		return NewValidationError(MsgInsufficientBalance)
	}
	return nil
}
