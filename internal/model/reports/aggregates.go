package reports

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// The functions below mirror the named server aggregates so a local store can
// answer the same queries. Date bounds are inclusive "2006-01-02" strings.

var hundred = decimal.NewFromInt(100)

func inRange(e expense.Expense, startDate, endDate string) bool {
	return e.Date >= startDate && e.Date <= endDate
}

func categoryIndex(cats []expense.Category) map[string]expense.Category {
	m := make(map[string]expense.Category, len(cats))
	for _, c := range cats {
		m[c.ID] = c
	}
	return m
}

// Breakdown groups the range by category, largest amount first.
func Breakdown(exps []expense.Expense, cats []expense.Category, startDate, endDate string) []expense.CategoryBreakdown {
	byID := categoryIndex(cats)
	index := make(map[string]int)
	res := make([]expense.CategoryBreakdown, 0)
	total := decimal.Zero

	for _, e := range exps {
		if !inRange(e, startDate, endDate) {
			continue
		}
		i, ok := index[e.CategoryID]
		if !ok {
			cat, found := byID[e.CategoryID]
			row := expense.CategoryBreakdown{
				CategoryID:          e.CategoryID,
				CategoryName:        expense.FallbackName,
				CategoryDisplayName: expense.FallbackName,
				CategoryColor:       expense.FallbackColor,
				Amount:              decimal.Zero,
			}
			if found {
				row.CategoryName = cat.Name
				row.CategoryDisplayName = cat.DisplayName
				row.CategoryColor = cat.Color
			}
			i = len(res)
			index[e.CategoryID] = i
			res = append(res, row)
		}
		res[i].Amount = res[i].Amount.Add(e.Amount)
		res[i].Count++
		total = total.Add(e.Amount)
	}

	for i := range res {
		if total.IsZero() {
			res[i].Percentage = decimal.Zero
			continue
		}
		res[i].Percentage = res[i].Amount.Mul(hundred).Div(total).Round(2)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Amount.GreaterThan(res[j].Amount)
	})
	return res
}

// MonthlyTrend returns twelve rows for year, zero-filled.
func MonthlyTrend(exps []expense.Expense, year int) []expense.MonthlyTrend {
	res := make([]expense.MonthlyTrend, 12)
	for m := 1; m <= 12; m++ {
		res[m-1] = expense.MonthlyTrend{
			Month:      m,
			MonthLabel: time.Month(m).String()[:3],
			Amount:     decimal.Zero,
		}
	}
	prefix := strconv.Itoa(year) + "-"
	for _, e := range exps {
		if len(e.Date) < len(expense.DateLayout) || e.Date[:5] != prefix {
			continue
		}
		m, err := strconv.Atoi(e.Date[5:7])
		if err != nil || m < 1 || m > 12 {
			continue
		}
		res[m-1].Amount = res[m-1].Amount.Add(e.Amount)
	}
	return res
}

// YearlyTrend sums every year that has expenses, oldest first.
func YearlyTrend(exps []expense.Expense) []expense.YearlyTrend {
	sums := make(map[int]decimal.Decimal)
	for _, e := range exps {
		if len(e.Date) < 4 {
			continue
		}
		y, err := strconv.Atoi(e.Date[:4])
		if err != nil {
			continue
		}
		sums[y] = sums[y].Add(e.Amount)
	}
	res := make([]expense.YearlyTrend, 0, len(sums))
	for y, amount := range sums {
		res = append(res, expense.YearlyTrend{Year: y, Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Year < res[j].Year })
	return res
}

func PeriodSummary(exps []expense.Expense, startDate, endDate string) expense.PeriodSummary {
	res := expense.PeriodSummary{TotalAmount: decimal.Zero}
	for _, e := range exps {
		if inRange(e, startDate, endDate) {
			res.TotalAmount = res.TotalAmount.Add(e.Amount)
			res.ExpenseCount++
		}
	}
	return res
}

// PeriodExpenses returns the range newest first with category fields joined.
func PeriodExpenses(exps []expense.Expense, cats []expense.Category, startDate, endDate string) []expense.Expense {
	byID := categoryIndex(cats)
	res := make([]expense.Expense, 0)
	for _, e := range exps {
		if !inRange(e, startDate, endDate) {
			continue
		}
		if cat, ok := byID[e.CategoryID]; ok {
			e.CategoryName = cat.Name
			e.CategoryDisplayName = cat.DisplayName
			e.CategoryColor = cat.Color
		}
		res = append(res, e)
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Date != res[j].Date {
			return res[i].Date > res[j].Date
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

// CategoryTree orders categories by level, then sort order.
func CategoryTree(cats []expense.Category) []expense.Category {
	res := make([]expense.Category, len(cats))
	copy(res, cats)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Level != res[j].Level {
			return res[i].Level < res[j].Level
		}
		return res[i].SortOrder < res[j].SortOrder
	})
	return res
}
