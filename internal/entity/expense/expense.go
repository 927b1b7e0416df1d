package expense

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format of Expense.Date.
const DateLayout = "2006-01-02"

var (
	ErrNegativeAmount  = errors.New("expense amount must not be negative")
	ErrMissingCategory = errors.New("expense category is required")
	ErrIDOnCreate      = errors.New("expense id is assigned by the store")
	ErrMissingID       = errors.New("expense id is required")
)

type Expense struct {
	ID         string
	Amount     decimal.Decimal
	CategoryID string
	Note       string
	Date       string
	UserID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// filled by joined aggregate rows only
	CategoryName        string
	CategoryDisplayName string
	CategoryColor       string
}

func New(amount decimal.Decimal, categoryID, date, note string) Expense {
	return Expense{
		Amount:     amount,
		CategoryID: categoryID,
		Date:       date,
		Note:       note,
	}
}

// Validate checks the fields required for persistence.
func (e Expense) Validate() error {
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if e.CategoryID == "" {
		return ErrMissingCategory
	}
	return nil
}

// Day parses Date as a calendar day in loc.
func (e Expense) Day(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse expense date %q", e.Date)
	}
	return d, nil
}

// FormatDate renders t as an Expense.Date value.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
