package domain

import (
	"math/big"
	"time"
)

// DateLayout is the calendar date format used for campaign windows.
const DateLayout = "2006-01-02"

// RawCampaign is a campaign as encoded by the ledger: amounts in base units
// and times in unix seconds.
type RawCampaign struct {
	ID               uint64
	Owner            string
	Title            string
	Description      string
	Budget           *big.Int
	Reward           *big.Int
	StartTime        uint64
	EndTime          uint64
	IsActive         bool
	ParticipantCount uint64
}

// Campaign is the display-ready view of a ledger campaign. Budget and
// Reward are decimal strings in display units.
type Campaign struct {
	ID               uint64
	Owner            string
	Title            string
	Description      string
	Budget           string
	Reward           string
	BudgetWei        *big.Int
	RewardWei        *big.Int
	StartTime        time.Time
	EndTime          time.Time
	IsActive         bool
	ParticipantCount uint64
}

// Normalize converts ledger encodings into display values.
func Normalize(raw RawCampaign) Campaign {
	budget := raw.Budget
	if budget == nil {
		budget = new(big.Int)
	}
	reward := raw.Reward
	if reward == nil {
		reward = new(big.Int)
	}
	return Campaign{
		ID:               raw.ID,
		Owner:            raw.Owner,
		Title:            raw.Title,
		Description:      raw.Description,
		Budget:           FormatAmount(budget),
		Reward:           FormatAmount(reward),
		BudgetWei:        budget,
		RewardWei:        reward,
		StartTime:        time.Unix(int64(raw.StartTime), 0).UTC(),
		EndTime:          time.Unix(int64(raw.EndTime), 0).UTC(),
		IsActive:         raw.IsActive,
		ParticipantCount: raw.ParticipantCount,
	}
}

// EffectiveActive reports whether the campaign accepts participants at now:
// the ledger flag is set and the window has not closed. Once now passes
// EndTime it stays false.
func (c Campaign) EffectiveActive(now time.Time) bool {
	return c.IsActive && now.Unix() <= c.EndTime.Unix()
}

// CanParticipate reports whether participation is open at now.
func (c Campaign) CanParticipate(now time.Time) bool {
	return c.EffectiveActive(now)
}

// CanClaim reports whether rewards can be claimed at now. Claims open only
// once the campaign is no longer effectively active.
func (c Campaign) CanClaim(now time.Time) bool {
	return !c.EffectiveActive(now)
}

func (c Campaign) StartDate() string {
	return c.StartTime.Format(DateLayout)
}

func (c Campaign) EndDate() string {
	return c.EndTime.Format(DateLayout)
}

// Participation records a confirmed participation made through this
// service.
type Participation struct {
	CampaignID uint64
	Account    string
	TxHash     string
	CreatedAt  time.Time
}
