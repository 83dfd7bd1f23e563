package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AlertKindBudgetExceeded is the alert kind raised for an over-budget category.
const AlertKindBudgetExceeded = "budget_exceeded"

// AlertPolicy decides whether an expense insert should raise an over-budget alert.
type AlertPolicy string

const (
	// AlertPolicyEdge alerts only when an insert moves the category from a
	// lower tier into exceeded.
	AlertPolicyEdge AlertPolicy = "edge"
	// AlertPolicyLevel alerts on every insert while the category is exceeded.
	AlertPolicyLevel AlertPolicy = "level"
)

// ParseAlertPolicy accepts "edge" or "level" in any case.
func ParseAlertPolicy(raw string) (AlertPolicy, error) {
	switch AlertPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case AlertPolicyEdge:
		return AlertPolicyEdge, nil
	case AlertPolicyLevel:
		return AlertPolicyLevel, nil
	default:
		return "", fmt.Errorf("unknown alert policy %q", raw)
	}
}

// ShouldAlert reports whether moving from before to after warrants an alert.
func (p AlertPolicy) ShouldAlert(before, after Tier) bool {
	if after != TierExceeded {
		return false
	}
	if p == AlertPolicyLevel {
		return true
	}
	return before != TierExceeded
}

// Alert is the payload handed to the alert sink.
type Alert struct {
	Kind     string
	Title    string
	Message  string
	Severity string
}

// Evaluation is the outcome of checking one expense insert against its budget.
type Evaluation struct {
	Before Classification
	After  Classification
	Alert  *Alert
}

// EvaluateInsert classifies the category total before and after an insert of
// amount and builds the alert the policy calls for, if any.
func EvaluateInsert(policy AlertPolicy, totalAfter, amount, limit decimal.Decimal) (Evaluation, error) {
	before, err := Classify(totalAfter.Sub(amount), limit)
	if err != nil {
		return Evaluation{}, err
	}
	after, err := Classify(totalAfter, limit)
	if err != nil {
		return Evaluation{}, err
	}

	eval := Evaluation{Before: before, After: after}
	if policy.ShouldAlert(before.Tier, after.Tier) {
		eval.Alert = &Alert{
			Kind:     AlertKindBudgetExceeded,
			Title:    "Budget Exceeded",
			Message:  fmt.Sprintf("You've exceeded your budget for this category by %s", after.Remaining.Neg().StringFixed(2)),
			Severity: "warning",
		}
	}
	return eval, nil
}
