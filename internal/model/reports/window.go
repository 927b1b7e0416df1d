package reports

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

var nowConfig = &now.Config{WeekStartDay: time.Sunday}

// ParsePeriod accepts "day", "week" and "month"; an empty string means day.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "", Day:
		return Day, nil
	case Week, Month:
		return Period(s), nil
	}
	return "", fmt.Errorf("report period %s is not supported", s)
}

// Window returns [start, end] for p relative to t. The start is local midnight of
// today, of the most recent Sunday or of the first day of the month; the end is t.
func Window(p Period, t time.Time) (start, end time.Time) {
	n := nowConfig.With(t)
	switch p {
	case Week:
		return n.BeginningOfWeek(), t
	case Month:
		return n.BeginningOfMonth(), t
	default:
		return n.BeginningOfDay(), t
	}
}

// InWindow reports whether the expense date, read as a calendar day in the
// location of start, lies within [start, end]. Unparseable dates are outside.
func InWindow(e expense.Expense, start, end time.Time) bool {
	d, err := e.Day(start.Location())
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

func filterWindow(exps []expense.Expense, start, end time.Time) []expense.Expense {
	res := make([]expense.Expense, 0, len(exps))
	for _, e := range exps {
		if InWindow(e, start, end) {
			res = append(res, e)
		}
	}
	return res
}
