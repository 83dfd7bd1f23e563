// Package analytics turns one snapshot of expenses and budgets into trend,
// category, merchant and budget summaries plus rule-based insights.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/budget"
)

const (
	DefaultMonths = 6
	topN          = 5

	uncategorized = "Uncategorized"
	trendLayout   = "Jan 2006"
)

// Window selects how many calendar months, ending with the month of asOf,
// the report covers.
type Window struct {
	Months int
}

type MonthlyTrend struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type CategorySlice struct {
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

type Merchant struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
	Average  decimal.Decimal `json:"average"`
}

type BudgetPerformance struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     budget.Tier     `json:"status"`
}

type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightNegative InsightType = "negative"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
)

type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

type Summary struct {
	TotalExpenses int             `json:"totalExpenses"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	AvgPerExpense decimal.Decimal `json:"avgPerExpense"`
	AvgDaily      decimal.Decimal `json:"avgDaily"`
}

// Report is derived on every request and never stored.
type Report struct {
	MonthlyTrends     []MonthlyTrend      `json:"monthlyTrends"`
	CategoryBreakdown []CategorySlice     `json:"categoryBreakdown"`
	TopMerchants      []Merchant          `json:"topMerchants"`
	BudgetPerformance []BudgetPerformance `json:"budgetPerformance"`
	Insights          []Insight           `json:"insights"`
	Summary           Summary             `json:"summary"`
}
