package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary is the human readable view of a pending campaign shown before the
// user confirms. Fiat fields are empty when no rate is known.
type Summary struct {
	Title        string
	Budget       string
	Reward       string
	DurationDays uint64
	BudgetFiat   string
	RewardFiat   string
	Currency     string
}

// NewSummary renders in. rate is applied only when ok is true.
func NewSummary(in CampaignInput, rate decimal.Decimal, ok bool, currency string) Summary {
	s := Summary{
		Title:        in.Title,
		Budget:       FormatAmount(in.Budget),
		Reward:       FormatAmount(in.Reward),
		DurationDays: in.DurationDays,
		Currency:     strings.ToUpper(currency),
	}
	if ok {
		s.BudgetFiat = FiatValue(in.Budget, rate)
		s.RewardFiat = FiatValue(in.Reward, rate)
	}
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", s.Title)
	fmt.Fprintf(&b, "Budget: %s %s%s\n", s.Budget, Symbol, s.fiat(s.BudgetFiat))
	fmt.Fprintf(&b, "Reward: %s %s%s\n", s.Reward, Symbol, s.fiat(s.RewardFiat))
	fmt.Fprintf(&b, "Duration: %d days\n", s.DurationDays)
	fmt.Fprintf(&b, "This will transfer %s %s to the contract.", s.Budget, Symbol)
	return b.String()
}

func (s Summary) fiat(v string) string {
	if v == "" {
		return ""
	}
	return fmt.Sprintf(" (%s %s)", v, s.Currency)
}
