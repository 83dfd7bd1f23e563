// Package budget classifies spending against a monthly limit and decides
// when an over-budget alert should be raised.
package budget

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidBudget is returned when a limit is zero or negative.
var ErrInvalidBudget = errors.New("budget limit must be positive")

// Tier is a budget-utilization bracket.
type Tier string

const (
	TierGood        Tier = "good"
	TierApproaching Tier = "approaching"
	TierWarning     Tier = "warning"
	TierCritical    Tier = "critical"
	TierExceeded    Tier = "exceeded"
)

var (
	hundred = decimal.NewFromInt(100)

	approachingFloor = decimal.NewFromInt(60)
	warningFloor     = decimal.NewFromInt(75)
	criticalFloor    = decimal.NewFromInt(90)
)

// Rank orders tiers from least to most severe. Unknown tiers rank below good.
func (t Tier) Rank() int {
	switch t {
	case TierGood:
		return 0
	case TierApproaching:
		return 1
	case TierWarning:
		return 2
	case TierCritical:
		return 3
	case TierExceeded:
		return 4
	default:
		return -1
	}
}

// Classification is the result of comparing spent against limit.
type Classification struct {
	Tier       Tier
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
}

// Classify maps spent and limit to a tier. Brackets include their lower bound
// and exclude their upper bound, so exactly 75% is warning and exactly 100% is
// exceeded. The tier is decided on the unrounded ratio; Percentage is rounded
// to two places half away from zero for reporting.
func Classify(spent, limit decimal.Decimal) (Classification, error) {
	if !limit.IsPositive() {
		return Classification{}, ErrInvalidBudget
	}

	ratio := spent.Mul(hundred).Div(limit)

	return Classification{
		Tier:       tierFor(ratio),
		Spent:      spent,
		Limit:      limit,
		Remaining:  limit.Sub(spent),
		Percentage: ratio.Round(2),
	}, nil
}

func tierFor(percentage decimal.Decimal) Tier {
	switch {
	case percentage.GreaterThanOrEqual(hundred):
		return TierExceeded
	case percentage.GreaterThanOrEqual(criticalFloor):
		return TierCritical
	case percentage.GreaterThanOrEqual(warningFloor):
		return TierWarning
	case percentage.GreaterThanOrEqual(approachingFloor):
		return TierApproaching
	default:
		return TierGood
	}
}
