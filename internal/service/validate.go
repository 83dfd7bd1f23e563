package service

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxDescriptionLength = 500
	maxCategoryName      = 50
	maxCategoryIcon      = 50
	minBudgetYear        = 2020
	maxBudgetYear        = 2100
)

var (
	categoryColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	maxExpenseAmount = decimal.NewFromInt(10_000_000)
	maxBudgetLimit   = decimal.NewFromInt(100_000_000)
)

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidf("amount must be positive")
	}
	if amount.GreaterThan(maxExpenseAmount) {
		return invalidf("amount must not exceed %s", maxExpenseAmount)
	}
	return nil
}

func validateLimit(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return invalidf("monthly limit must be positive")
	}
	if limit.GreaterThan(maxBudgetLimit) {
		return invalidf("monthly limit must not exceed %s", maxBudgetLimit)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return invalidf("description must be at most %d characters", maxDescriptionLength)
	}
	return nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return invalidf("month must be between 1 and 12")
	}
	if year < minBudgetYear || year > maxBudgetYear {
		return invalidf("year must be between %d and %d", minBudgetYear, maxBudgetYear)
	}
	return nil
}

// monthRange returns the first and last calendar dates of month.
func monthRange(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// validateCategory checks a trimmed name and icon. Icon and color are optional.
func validateCategory(name, icon, color string) error {
	if name == "" {
		return invalidf("name is required")
	}
	if utf8.RuneCountInString(name) > maxCategoryName {
		return invalidf("name must be at most %d characters", maxCategoryName)
	}
	if utf8.RuneCountInString(icon) > maxCategoryIcon {
		return invalidf("icon must be at most %d characters", maxCategoryIcon)
	}
	if color != "" && !categoryColor.MatchString(color) {
		return invalidf("color must be a hex value like #1a2b3c")
	}
	return nil
}
