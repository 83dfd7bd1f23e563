package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// coefficientOfVariation returns the population standard deviation of values
// as a percentage of their mean. ok is false when the mean is not positive.
func coefficientOfVariation(values []decimal.Decimal) (cv float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	n := decimal.NewFromInt(int64(len(values)))
	mean := decimal.Sum(decimal.Zero, values...).Div(n)
	if !mean.IsPositive() {
		return 0, false
	}

	sq := decimal.Zero
	for _, v := range values {
		diff := v.Sub(mean)
		sq = sq.Add(diff.Mul(diff))
	}
	variance, _ := sq.Div(n).Float64()
	m, _ := mean.Float64()
	return math.Sqrt(variance) / m * 100, true
}

// percentChange returns (to - from) / from * 100. from must be non-zero.
func percentChange(from, to decimal.Decimal) decimal.Decimal {
	return to.Sub(from).Mul(hundred).Div(from)
}
