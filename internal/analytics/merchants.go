package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/carson-networks/budget-engine/internal/recurrence"
	"github.com/carson-networks/budget-engine/internal/storage/sqlconfig"
)

const merchantTokens = 3

// MerchantKey normalizes a description to its grouping key: the recurring
// marker is dropped, then the first three whitespace-separated tokens are
// lower-cased. Empty descriptions have no merchant.
func MerchantKey(description string) string {
	description = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(description), strings.TrimSpace(recurrence.DescriptionSuffix)))
	fields := strings.Fields(description)
	if len(fields) > merchantTokens {
		fields = fields[:merchantTokens]
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// MerchantDisplay title-cases each word of a merchant key.
func MerchantDisplay(key string) string {
	return cases.Title(language.Und).String(key)
}

type merchantTotal struct {
	key    string
	amount decimal.Decimal
	count  int
}

func topMerchants(expenses []*sqlconfig.Expense, n int) []Merchant {
	totals := make(map[string]*merchantTotal)
	for _, e := range expenses {
		key := MerchantKey(e.Description)
		if key == "" {
			continue
		}
		t, ok := totals[key]
		if !ok {
			t = &merchantTotal{key: key}
			totals[key] = t
		}
		t.amount = t.amount.Add(e.Amount)
		t.count++
	}

	ranked := make([]*merchantTotal, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].amount.Cmp(ranked[j].amount); c != 0 {
			return c > 0
		}
		return ranked[i].key < ranked[j].key
	})
	ranked = head(ranked, n)

	result := make([]Merchant, len(ranked))
	for i, t := range ranked {
		result[i] = Merchant{
			Merchant: MerchantDisplay(t.key),
			Amount:   t.amount.Round(2),
			Count:    t.count,
			Average:  t.amount.Div(decimal.NewFromInt(int64(t.count))).Round(2),
		}
	}
	return result
}
