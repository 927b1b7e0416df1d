package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func exp(amount, category, date string) expense.Expense {
	return expense.New(decimal.RequireFromString(amount), category, date, "")
}

func localTime(t *testing.T, value string) time.Time {
	res, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	require.NoError(t, err)
	return res
}

func Test_OnWindow_ShouldStartAtLocalMidnights(t *testing.T) {
	now := localTime(t, "2025-10-13T10:00:00")

	start, end := Window(Day, now)
	assert.Equal(t, localTime(t, "2025-10-13T00:00:00"), start)
	assert.Equal(t, now, end)

	start, _ = Window(Week, now)
	assert.Equal(t, localTime(t, "2025-10-12T00:00:00"), start)
	assert.Equal(t, time.Sunday, start.Weekday())

	start, _ = Window(Month, now)
	assert.Equal(t, localTime(t, "2025-10-01T00:00:00"), start)
}

func Test_OnSummarize_ShouldSelectExpensesByWindow(t *testing.T) {
	now := localTime(t, "2025-10-13T10:00:00")
	exps := []expense.Expense{
		exp("10", "food", "2025-10-13"),
		exp("20", "food", "2025-10-12"),
		exp("40", "transport", "2025-10-01"),
		exp("80", "food", "2025-09-30"),
		exp("160", "food", "2025-09-01"),
		exp("320", "food", "2025-10-14"),
	}

	day := Summarize(exps, Day, now)
	assert.True(t, decimal.RequireFromString("10").Equal(day.Total))
	assert.Equal(t, 1, day.Count)

	week := Summarize(exps, Week, now)
	assert.True(t, decimal.RequireFromString("30").Equal(week.Total))
	assert.Equal(t, 2, week.Count)

	month := Summarize(exps, Month, now)
	assert.True(t, decimal.RequireFromString("70").Equal(month.Total), month.Total.String())
	assert.Equal(t, 3, month.Count)
	assert.True(t, decimal.RequireFromString("40").Equal(month.Amount("transport")))
}

func Test_OnSummarize_ShouldAddDecimalsExactly(t *testing.T) {
	now := localTime(t, "2025-10-13T10:00:00")
	exps := []expense.Expense{
		exp("0.1", "food", "2025-10-13"),
		exp("0.2", "food", "2025-10-13"),
	}

	s := Summarize(exps, Day, now)

	assert.Equal(t, "0.3", s.Total.String())
}

func Test_OnTopCategories_ShouldBreakTiesByInsertionOrder(t *testing.T) {
	now := localTime(t, "2025-10-13T10:00:00")
	exps := []expense.Expense{
		exp("100", "Food", "2025-10-13"),
		exp("100", "Transport", "2025-10-13"),
		exp("50", "Shopping", "2025-10-13"),
		exp("10", "Other", "2025-10-13"),
	}

	s := Summarize(exps, Day, now)

	require.Len(t, s.Top, 3)
	assert.Equal(t, "Food", s.Top[0].CategoryID)
	assert.Equal(t, "Transport", s.Top[1].CategoryID)
	assert.Equal(t, "Shopping", s.Top[2].CategoryID)
}

func Test_OnFromBreakdown_ShouldSumServerRows(t *testing.T) {
	rows := []expense.CategoryBreakdown{
		{CategoryID: "a", Amount: decimal.NewFromInt(5), Count: 1},
		{CategoryID: "b", Amount: decimal.NewFromInt(15), Count: 3},
	}

	s := FromBreakdown(rows)

	assert.True(t, decimal.NewFromInt(20).Equal(s.Total))
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, "b", s.Top[0].CategoryID)
}

func Test_OnParsePeriod_ShouldRejectUnknown(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Day, p)

	_, err = ParsePeriod("decade")
	assert.Error(t, err)
}
