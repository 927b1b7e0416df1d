package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const topCategoriesLimit = 3

type CategoryTotal struct {
	CategoryID string
	Amount     decimal.Decimal
}

type Summary struct {
	Period Period
	Start  time.Time
	End    time.Time

	Total decimal.Decimal
	Count int
	// ByCategory keeps first-encountered order.
	ByCategory []CategoryTotal
	Top        []CategoryTotal
}

// Amount returns the total of one category.
func (s Summary) Amount(categoryID string) decimal.Decimal {
	for _, c := range s.ByCategory {
		if c.CategoryID == categoryID {
			return c.Amount
		}
	}
	return decimal.Zero
}

// Summarize computes the totals of p's window ending at t from scratch.
func Summarize(exps []expense.Expense, p Period, t time.Time) Summary {
	start, end := Window(p, t)
	inWindow := filterWindow(exps, start, end)

	res := Summary{Period: p, Start: start, End: end, Total: decimal.Zero, Count: len(inWindow)}
	index := make(map[string]int)
	for _, e := range inWindow {
		res.Total = res.Total.Add(e.Amount)
		i, ok := index[e.CategoryID]
		if !ok {
			i = len(res.ByCategory)
			index[e.CategoryID] = i
			res.ByCategory = append(res.ByCategory, CategoryTotal{CategoryID: e.CategoryID, Amount: decimal.Zero})
		}
		res.ByCategory[i].Amount = res.ByCategory[i].Amount.Add(e.Amount)
	}
	res.Top = topCategories(res.ByCategory)
	return res
}

// FromBreakdown builds a summary out of pre-aggregated server rows, keeping their order
// as the encounter order.
func FromBreakdown(rows []expense.CategoryBreakdown) Summary {
	res := Summary{Total: decimal.Zero}
	for _, r := range rows {
		res.Total = res.Total.Add(r.Amount)
		res.Count += r.Count
		res.ByCategory = append(res.ByCategory, CategoryTotal{CategoryID: r.CategoryID, Amount: r.Amount})
	}
	res.Top = topCategories(res.ByCategory)
	return res
}

// topCategories sorts by amount descending, ties keep insertion order.
func topCategories(totals []CategoryTotal) []CategoryTotal {
	sorted := make([]CategoryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if len(sorted) > topCategoriesLimit {
		sorted = sorted[:topCategoriesLimit]
	}
	return sorted
}
