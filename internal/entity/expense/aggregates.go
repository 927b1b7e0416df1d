package expense

import "github.com/shopspring/decimal"

type CategoryBreakdown struct {
	CategoryID          string
	CategoryName        string
	CategoryDisplayName string
	CategoryColor       string
	Amount              decimal.Decimal
	Count               int
	Percentage          decimal.Decimal
}

type MonthlyTrend struct {
	Month      int
	MonthLabel string
	Amount     decimal.Decimal
}

type YearlyTrend struct {
	Year   int
	Amount decimal.Decimal
}

type PeriodSummary struct {
	TotalAmount  decimal.Decimal
	ExpenseCount int
}
