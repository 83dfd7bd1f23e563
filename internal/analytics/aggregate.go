package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

var (
	hundred   = decimal.NewFromInt(100)
	thirty    = decimal.NewFromInt(30)
	threshold = decimal.NewFromInt(3)
)

// Aggregate builds a Report from one snapshot. Expenses outside the window
// are ignored, budgets outside the month of asOf do not count toward budget
// performance, and empty inputs produce empty sections rather than errors.
// Amounts accumulate unrounded and are rounded to two places on output.
func Aggregate(expenses []*sqlconfig.Expense, budgets []*sqlconfig.Budget, window Window, asOf time.Time) *Report {
	months := window.Months
	if months <= 0 {
		months = DefaultMonths
	}
	asOf = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	start := monthStart(asOf).AddDate(0, -(months - 1), 0)

	inWindow := make([]*sqlconfig.Expense, 0, len(expenses))
	for _, e := range expenses {
		d := dateOf(e.Date)
		if d.Before(start) || d.After(asOf) {
			continue
		}
		inWindow = append(inWindow, e)
	}

	total := decimal.Zero
	for _, e := range inWindow {
		total = total.Add(e.Amount)
	}

	trends := monthlyTrends(inWindow, start, months)
	categories := categoryTotals(inWindow, total)
	performance := budgetPerformance(inWindow, budgets, asOf)

	s := &snapshot{
		expenses:    inWindow,
		total:       total,
		months:      months,
		trends:      trends,
		categories:  categories,
		performance: performance,
	}

	return &Report{
		MonthlyTrends:     roundTrends(trends),
		CategoryBreakdown: roundCategories(head(categories, topN)),
		TopMerchants:      topMerchants(inWindow, topN),
		BudgetPerformance: roundPerformance(performance),
		Insights:          generateInsights(s),
		Summary:           summarize(inWindow, total, months),
	}
}

type snapshot struct {
	expenses    []*sqlconfig.Expense
	total       decimal.Decimal
	months      int
	trends      []MonthlyTrend
	categories  []CategorySlice
	performance []BudgetPerformance
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthlyTrends returns one unrounded bucket per month, oldest first.
func monthlyTrends(expenses []*sqlconfig.Expense, start time.Time, months int) []MonthlyTrend {
	trends := make([]MonthlyTrend, months)
	for i := range trends {
		trends[i] = MonthlyTrend{Month: start.AddDate(0, i, 0).Format(trendLayout), Total: decimal.Zero}
	}
	for _, e := range expenses {
		d := dateOf(e.Date)
		idx := (d.Year()-start.Year())*12 + int(d.Month()-start.Month())
		if idx >= 0 && idx < months {
			trends[idx].Total = trends[idx].Total.Add(e.Amount)
		}
	}
	return trends
}

// categoryTotals returns every category sorted by amount descending, with
// unrounded shares of total.
func categoryTotals(expenses []*sqlconfig.Expense, total decimal.Decimal) []CategorySlice {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		name := e.CategoryName
		if name == "" {
			name = uncategorized
		}
		sums[name] = sums[name].Add(e.Amount)
	}

	slices := make([]CategorySlice, 0, len(sums))
	for name, value := range sums {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = value.Mul(hundred).Div(total)
		}
		slices = append(slices, CategorySlice{Name: name, Value: value, Percentage: pct})
	}
	sort.Slice(slices, func(i, j int) bool {
		if c := slices[i].Value.Cmp(slices[j].Value); c != 0 {
			return c > 0
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

func budgetPerformance(expenses []*sqlconfig.Expense, budgets []*sqlconfig.Budget, asOf time.Time) []BudgetPerformance {
	year, month, _ := asOf.Date()

	spent := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		if d := dateOf(e.Date); d.Year() == year && d.Month() == month {
			spent[e.CategoryID] = spent[e.CategoryID].Add(e.Amount)
		}
	}

	result := make([]BudgetPerformance, 0, len(budgets))
	for _, b := range budgets {
		if b.Month != int(month) || b.Year != year {
			continue
		}
		c, err := budget.Classify(spent[b.CategoryID], b.MonthlyLimit)
		if errors.Is(err, budget.ErrInvalidBudget) {
			continue
		}
		name := b.CategoryName
		if name == "" {
			name = uncategorized
		}
		result = append(result, BudgetPerformance{
			Category:   name,
			Limit:      c.Limit,
			Spent:      c.Spent,
			Remaining:  c.Remaining,
			Percentage: c.Percentage,
			Status:     c.Tier,
		})
	}
	return result
}

func summarize(expenses []*sqlconfig.Expense, total decimal.Decimal, months int) Summary {
	s := Summary{
		TotalExpenses: len(expenses),
		TotalSpent:    total.Round(2),
		AvgPerExpense: decimal.Zero,
		AvgDaily:      dailyAverage(total, months).Round(2),
	}
	if len(expenses) > 0 {
		s.AvgPerExpense = total.Div(decimal.NewFromInt(int64(len(expenses)))).Round(2)
	}
	return s
}

// dailyAverage approximates every month as 30 days.
func dailyAverage(total decimal.Decimal, months int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(months)).Mul(thirty))
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func roundTrends(trends []MonthlyTrend) []MonthlyTrend {
	out := make([]MonthlyTrend, len(trends))
	for i, t := range trends {
		out[i] = MonthlyTrend{Month: t.Month, Total: t.Total.Round(2)}
	}
	return out
}

func roundCategories(categories []CategorySlice) []CategorySlice {
	out := make([]CategorySlice, len(categories))
	for i, c := range categories {
		out[i] = CategorySlice{Name: c.Name, Value: c.Value.Round(2), Percentage: c.Percentage.Round(2)}
	}
	return out
}

func roundPerformance(performance []BudgetPerformance) []BudgetPerformance {
	out := make([]BudgetPerformance, len(performance))
	for i, p := range performance {
		out[i] = BudgetPerformance{
			Category:   p.Category,
			Limit:      p.Limit.Round(2),
			Spent:      p.Spent.Round(2),
			Remaining:  p.Remaining.Round(2),
			Percentage: p.Percentage,
			Status:     p.Status,
		}
	}
	return out
}
