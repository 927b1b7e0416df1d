package expense

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/model/translate"
)

// Rows produced and consumed here use camelCase keys; the gateway boundary
// converts them with the translate package.

const TimestampLayout = time.RFC3339Nano

// ToRow encodes every set field of e.
func (e Expense) ToRow() translate.Row {
	r := translate.Row{
		"amount":     e.Amount.String(),
		"categoryId": e.CategoryID,
		"date":       e.Date,
	}
	if e.ID != "" {
		r["id"] = e.ID
	}
	if e.Note != "" {
		r["note"] = e.Note
	}
	if e.UserID != "" {
		r["userId"] = e.UserID
	}
	if !e.CreatedAt.IsZero() {
		r["createdAt"] = FormatTimestamp(e.CreatedAt)
	}
	if !e.UpdatedAt.IsZero() {
		r["updatedAt"] = FormatTimestamp(e.UpdatedAt)
	}
	return r
}

// MutableRow encodes the fields an update may change.
func (e Expense) MutableRow() translate.Row {
	return translate.Row{
		"amount":     e.Amount.String(),
		"categoryId": e.CategoryID,
		"note":       e.Note,
		"date":       e.Date,
		"updatedAt":  FormatTimestamp(e.UpdatedAt),
	}
}

func FromRow(r translate.Row) (Expense, error) {
	if !r.Has("amount") {
		return Expense{}, errors.New("decode expense: amount is missing")
	}
	amount, err := decimal.NewFromString(r.Str("amount"))
	if err != nil {
		return Expense{}, errors.Wrap(err, "decode expense amount")
	}
	e := Expense{
		ID:                  r.Str("id"),
		Amount:              amount,
		CategoryID:          r.Str("categoryId"),
		Note:                r.Str("note"),
		Date:                normalizeDate(r.Str("date")),
		UserID:              r.Str("userId"),
		CategoryName:        r.Str("categoryName"),
		CategoryDisplayName: r.Str("categoryDisplayName"),
		CategoryColor:       r.Str("categoryColor"),
	}
	if e.CreatedAt, err = parseTimestamp(r, "createdAt"); err != nil {
		return Expense{}, err
	}
	if e.UpdatedAt, err = parseTimestamp(r, "updatedAt"); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func FromRows(rows []translate.Row) ([]Expense, error) {
	res := make([]Expense, 0, len(rows))
	for _, r := range rows {
		e, err := FromRow(r)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func (c Category) ToRow() translate.Row {
	r := translate.Row{
		"userId":      c.UserID,
		"name":        c.Name,
		"displayName": c.DisplayName,
		"color":       c.Color,
		"chartColor":  c.ChartColor,
		"icon":        c.Icon,
		"level":       c.Level,
		"sortOrder":   c.SortOrder,
		"isDefault":   c.IsDefault,
	}
	if c.ID != "" {
		r["id"] = c.ID
	}
	if c.ParentID != "" {
		r["parentId"] = c.ParentID
	}
	return r
}

func CategoryFromRow(r translate.Row) Category {
	return Category{
		ID:          r.Str("id"),
		UserID:      r.Str("userId"),
		ParentID:    r.Str("parentId"),
		Name:        r.Str("name"),
		DisplayName: r.Str("displayName"),
		Color:       r.Str("color"),
		ChartColor:  r.Str("chartColor"),
		Icon:        r.Str("icon"),
		Level:       r.Int("level"),
		SortOrder:   r.Int("sortOrder"),
		IsDefault:   r.Bool("isDefault"),
	}
}

func CategoriesFromRows(rows []translate.Row) []Category {
	res := make([]Category, 0, len(rows))
	for _, r := range rows {
		res = append(res, CategoryFromRow(r))
	}
	return res
}

func (b CategoryBreakdown) ToRow() translate.Row {
	return translate.Row{
		"categoryId":          b.CategoryID,
		"categoryName":        b.CategoryName,
		"categoryDisplayName": b.CategoryDisplayName,
		"categoryColor":       b.CategoryColor,
		"amount":              b.Amount.String(),
		"count":               b.Count,
		"percentage":          b.Percentage.String(),
	}
}

func BreakdownFromRow(r translate.Row) (CategoryBreakdown, error) {
	amount, err := decimalField(r, "amount")
	if err != nil {
		return CategoryBreakdown{}, err
	}
	pct, err := decimalField(r, "percentage")
	if err != nil {
		return CategoryBreakdown{}, err
	}
	return CategoryBreakdown{
		CategoryID:          r.Str("categoryId"),
		CategoryName:        r.Str("categoryName"),
		CategoryDisplayName: r.Str("categoryDisplayName"),
		CategoryColor:       r.Str("categoryColor"),
		Amount:              amount,
		Count:               r.Int("count"),
		Percentage:          pct,
	}, nil
}

func (m MonthlyTrend) ToRow() translate.Row {
	return translate.Row{"month": m.Month, "monthLabel": m.MonthLabel, "amount": m.Amount.String()}
}

func MonthlyTrendFromRow(r translate.Row) (MonthlyTrend, error) {
	amount, err := decimalField(r, "amount")
	if err != nil {
		return MonthlyTrend{}, err
	}
	return MonthlyTrend{Month: r.Int("month"), MonthLabel: r.Str("monthLabel"), Amount: amount}, nil
}

func (y YearlyTrend) ToRow() translate.Row {
	return translate.Row{"year": y.Year, "amount": y.Amount.String()}
}

func YearlyTrendFromRow(r translate.Row) (YearlyTrend, error) {
	amount, err := decimalField(r, "amount")
	if err != nil {
		return YearlyTrend{}, err
	}
	return YearlyTrend{Year: r.Int("year"), Amount: amount}, nil
}

func (p PeriodSummary) ToRow() translate.Row {
	return translate.Row{"totalAmount": p.TotalAmount.String(), "expenseCount": p.ExpenseCount}
}

func PeriodSummaryFromRow(r translate.Row) (PeriodSummary, error) {
	total, err := decimalField(r, "totalAmount")
	if err != nil {
		return PeriodSummary{}, err
	}
	return PeriodSummary{TotalAmount: total, ExpenseCount: r.Int("expenseCount")}, nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func decimalField(r translate.Row, key string) (decimal.Decimal, error) {
	if !r.Has(key) {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(r.Str(key))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "decode %s", key)
	}
	return d, nil
}

func parseTimestamp(r translate.Row, key string) (time.Time, error) {
	switch v := r[key].(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	}
	raw := r.Str(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "decode %s", key)
	}
	return t, nil
}

func normalizeDate(raw string) string {
	if len(raw) > len(DateLayout) {
		return raw[:len(DateLayout)]
	}
	return raw
}
