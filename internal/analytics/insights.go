package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
)

const (
	consistentBelow   = 15.0
	irregularAbove    = 40.0
	concentrationTop  = 3
	minDiversified    = 5
	weekendBiasAbove  = 30
	concentratedAbove = 80
)

type rule func(s *snapshot) *Insight

var rules = []rule{
	dailyAverageInsight,
	topCategoryInsight,
	thresholdInsight,
	monthOverMonthInsight,
	consistencyInsight,
	outlierInsight,
	diversificationInsight,
	weekendInsight,
}

// generateInsights evaluates every rule against the same snapshot in a fixed order.
func generateInsights(s *snapshot) []Insight {
	insights := make([]Insight, 0, len(rules))
	for _, r := range rules {
		if in := r(s); in != nil {
			insights = append(insights, *in)
		}
	}
	return insights
}

func dailyAverageInsight(s *snapshot) *Insight {
	if len(s.expenses) == 0 {
		return nil
	}
	return &Insight{
		Type:        InsightInfo,
		Title:       "Daily Average",
		Description: fmt.Sprintf("You spend an average of %s per day", dailyAverage(s.total, s.months).StringFixed(2)),
	}
}

func topCategoryInsight(s *snapshot) *Insight {
	if len(s.categories) == 0 || !s.total.IsPositive() {
		return nil
	}
	top := s.categories[0]
	return &Insight{
		Type:        InsightWarning,
		Title:       "Top Spending Category",
		Description: fmt.Sprintf("%s accounts for %s%% of your total spending", top.Name, top.Percentage.StringFixed(0)),
	}
}

// thresholdInsight reports only the most severe tier any current budget has reached.
func thresholdInsight(s *snapshot) *Insight {
	counts := make(map[budget.Tier]int)
	for _, p := range s.performance {
		counts[p.Status]++
	}

	switch {
	case counts[budget.TierExceeded] > 0:
		return &Insight{
			Type:        InsightNegative,
			Title:       "Budget Alert",
			Description: fmt.Sprintf("You've exceeded %d budget(s) this month", counts[budget.TierExceeded]),
		}
	case counts[budget.TierCritical] > 0:
		return &Insight{
			Type:        InsightWarning,
			Title:       "Budget Nearly Exhausted",
			Description: fmt.Sprintf("%d budget(s) have used 90%% or more of their limit", counts[budget.TierCritical]),
		}
	case counts[budget.TierWarning] > 0:
		return &Insight{
			Type:        InsightWarning,
			Title:       "Budget Warning",
			Description: fmt.Sprintf("%d budget(s) have used 75%% or more of their limit", counts[budget.TierWarning]),
		}
	case counts[budget.TierApproaching] > 0:
		return &Insight{
			Type:        InsightInfo,
			Title:       "Approaching Budget",
			Description: fmt.Sprintf("%d budget(s) have passed 60%% of their limit", counts[budget.TierApproaching]),
		}
	default:
		return nil
	}
}

func monthOverMonthInsight(s *snapshot) *Insight {
	if len(s.trends) < 2 {
		return nil
	}
	prev := s.trends[len(s.trends)-2].Total
	last := s.trends[len(s.trends)-1].Total
	if !prev.IsPositive() || last.Equal(prev) {
		return nil
	}

	delta := percentChange(prev, last)
	if last.LessThan(prev) {
		return &Insight{
			Type:  InsightPositive,
			Title: "Spending Reduced",
			Description: fmt.Sprintf("You spent %s%% less than last month, saving %s",
				delta.Abs().StringFixed(1), prev.Sub(last).StringFixed(2)),
		}
	}
	return &Insight{
		Type:        InsightNegative,
		Title:       "Spending Increased",
		Description: fmt.Sprintf("You spent %s%% more than last month", delta.StringFixed(1)),
	}
}

func consistencyInsight(s *snapshot) *Insight {
	if len(s.trends) < 3 {
		return nil
	}
	values := make([]decimal.Decimal, len(s.trends))
	for i, t := range s.trends {
		values[i] = t.Total
	}
	cv, ok := coefficientOfVariation(values)
	if !ok {
		return nil
	}

	switch {
	case cv < consistentBelow:
		return &Insight{
			Type:        InsightPositive,
			Title:       "Consistent Spending",
			Description: fmt.Sprintf("Your monthly spending varies by only %.1f%%", cv),
		}
	case cv > irregularAbove:
		return &Insight{
			Type:        InsightWarning,
			Title:       "Irregular Spending",
			Description: fmt.Sprintf("Your monthly spending varies by %.1f%% from month to month", cv),
		}
	default:
		return nil
	}
}

func outlierInsight(s *snapshot) *Insight {
	if len(s.expenses) == 0 || !s.total.IsPositive() {
		return nil
	}
	cutoff := s.total.Div(decimal.NewFromInt(int64(len(s.expenses)))).Mul(threshold)

	count := 0
	sum := decimal.Zero
	for _, e := range s.expenses {
		if e.Amount.GreaterThan(cutoff) {
			count++
			sum = sum.Add(e.Amount)
		}
	}
	if count == 0 {
		return nil
	}
	return &Insight{
		Type:  InsightWarning,
		Title: "High-Value Expenses",
		Description: fmt.Sprintf("%d expense(s) above 3x your average make up %s%% of your total spending",
			count, sum.Mul(hundred).Div(s.total).StringFixed(1)),
	}
}

func diversificationInsight(s *snapshot) *Insight {
	if len(s.categories) == 0 || !s.total.IsPositive() {
		return nil
	}
	share := decimal.Zero
	for _, c := range head(s.categories, concentrationTop) {
		share = share.Add(c.Percentage)
	}

	if share.GreaterThan(decimal.NewFromInt(concentratedAbove)) {
		return &Insight{
			Type:        InsightWarning,
			Title:       "Concentrated Spending",
			Description: fmt.Sprintf("Your top %d categories account for %s%% of your spending", concentrationTop, share.StringFixed(1)),
		}
	}
	if len(s.categories) >= minDiversified {
		return &Insight{
			Type:        InsightPositive,
			Title:       "Diversified Spending",
			Description: fmt.Sprintf("Your spending is spread across %d categories", len(s.categories)),
		}
	}
	return nil
}

func weekendInsight(s *snapshot) *Insight {
	weekendSum, weekdaySum := decimal.Zero, decimal.Zero
	weekendCount, weekdayCount := 0, 0
	for _, e := range s.expenses {
		switch dateOf(e.Date).Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum = weekendSum.Add(e.Amount)
			weekendCount++
		default:
			weekdaySum = weekdaySum.Add(e.Amount)
			weekdayCount++
		}
	}
	if weekendCount == 0 || weekdayCount == 0 {
		return nil
	}
	weekendAvg := weekendSum.Div(decimal.NewFromInt(int64(weekendCount)))
	weekdayAvg := weekdaySum.Div(decimal.NewFromInt(int64(weekdayCount)))
	if !weekdayAvg.IsPositive() {
		return nil
	}

	diff := percentChange(weekdayAvg, weekendAvg)
	if !diff.GreaterThan(decimal.NewFromInt(weekendBiasAbove)) {
		return nil
	}
	return &Insight{
		Type:        InsightInfo,
		Title:       "Weekend Spending",
		Description: fmt.Sprintf("You spend %s%% more per transaction on weekends", diff.StringFixed(0)),
	}
}
