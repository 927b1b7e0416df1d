package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnBreakdown_ShouldGroupJoinAndComputePercentages(t *testing.T) {
	cats := []expense.Category{
		{ID: "c1", Name: "Food", DisplayName: "餐饮", Color: "orange"},
	}
	exps := []expense.Expense{
		exp("25", "c1", "2025-10-02"),
		exp("50", "c1", "2025-10-03"),
		exp("25", "missing", "2025-10-04"),
		exp("999", "c1", "2025-11-01"),
	}

	rows := Breakdown(exps, cats, "2025-10-01", "2025-10-31")

	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].CategoryID)
	assert.Equal(t, "餐饮", rows[0].CategoryDisplayName)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "75", rows[0].Percentage.String())
	assert.Equal(t, expense.FallbackName, rows[1].CategoryName)
	assert.Equal(t, expense.FallbackColor, rows[1].CategoryColor)
}

func Test_OnMonthlyTrend_ShouldZeroFillTwelveMonths(t *testing.T) {
	exps := []expense.Expense{
		exp("10", "c", "2025-01-15"),
		exp("5", "c", "2025-01-20"),
		exp("7", "c", "2025-12-31"),
		exp("100", "c", "2024-01-01"),
	}

	rows := MonthlyTrend(exps, 2025)

	require.Len(t, rows, 12)
	assert.Equal(t, "Jan", rows[0].MonthLabel)
	assert.True(t, decimal.NewFromInt(15).Equal(rows[0].Amount))
	assert.True(t, rows[5].Amount.IsZero())
	assert.True(t, decimal.NewFromInt(7).Equal(rows[11].Amount))
}

func Test_OnYearlyTrend_ShouldSortYears(t *testing.T) {
	rows := YearlyTrend([]expense.Expense{
		exp("1", "c", "2025-01-01"),
		exp("2", "c", "2023-05-01"),
		exp("3", "c", "2025-03-01"),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 2023, rows[0].Year)
	assert.True(t, decimal.NewFromInt(4).Equal(rows[1].Amount))
}

func Test_OnPeriodExpenses_ShouldReturnNewestFirst(t *testing.T) {
	cats := []expense.Category{{ID: "c", Name: "Food"}}
	rows := PeriodExpenses([]expense.Expense{
		exp("1", "c", "2025-10-01"),
		exp("2", "c", "2025-10-05"),
		exp("3", "c", "2025-09-30"),
	}, cats, "2025-10-01", "2025-10-31")

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-10-05", rows[0].Date)
	assert.Equal(t, "Food", rows[0].CategoryName)

	summary := PeriodSummary(rows, "2025-10-01", "2025-10-31")
	assert.Equal(t, 2, summary.ExpenseCount)
	assert.Equal(t, "3", summary.TotalAmount.String())
}
