package messages

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/categories"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	commandParts = 2
	listLimit    = 20
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// metricLabel keeps the label cardinality bounded to known commands.
func metricLabel(cmd string) string {
	if _, ok := knownCommands[cmd]; ok {
		return cmd
	}
	return "other"
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatSummary(s reports.Summary, catalog *categories.Catalog) string {
	if s.Count == 0 {
		return noExpensesMessage
	}
	res := make([]string, 0, len(s.ByCategory)+4)
	for _, c := range s.ByCategory {
		res = append(res, fmt.Sprintf("%s: %s", catalog.Lookup(c.CategoryID).Name, money(c.Amount)))
	}
	res = append(res, "", fmt.Sprintf("Total: %s (%d expenses)", money(s.Total), s.Count))
	if len(s.Top) > 0 {
		top := make([]string, 0, len(s.Top))
		for _, c := range s.Top {
			top = append(top, catalog.Lookup(c.CategoryID).Name)
		}
		res = append(res, "Top: "+strings.Join(top, ", "))
	}
	return strings.Join(res, "\n")
}

func formatBreakdown(rows []expense.CategoryBreakdown) string {
	if len(rows) == 0 {
		return noExpensesMessage
	}
	res := make([]string, 0, len(rows))
	for _, r := range rows {
		name := r.CategoryDisplayName
		if name == "" {
			name = r.CategoryName
		}
		res = append(res, fmt.Sprintf("%s: %s (%s%%, %d)", name, money(r.Amount), r.Percentage.StringFixed(1), r.Count))
	}
	return strings.Join(res, "\n")
}

func formatMonthly(year int, rows []expense.MonthlyTrend) string {
	res := []string{fmt.Sprintf("%d:", year)}
	for _, r := range rows {
		res = append(res, fmt.Sprintf("%s: %s", r.MonthLabel, money(r.Amount)))
	}
	return strings.Join(res, "\n")
}

func formatYearly(rows []expense.YearlyTrend) string {
	if len(rows) == 0 {
		return noExpensesMessage
	}
	res := make([]string, 0, len(rows))
	for _, r := range rows {
		res = append(res, fmt.Sprintf("%d: %s", r.Year, money(r.Amount)))
	}
	return strings.Join(res, "\n")
}

func formatExpenses(exps []expense.Expense, catalog *categories.Catalog) string {
	if len(exps) == 0 {
		return noExpensesMessage
	}
	if len(exps) > listLimit {
		exps = exps[:listLimit]
	}
	res := make([]string, 0, len(exps))
	for _, e := range exps {
		line := fmt.Sprintf("%s %s %s %s", e.ID, e.Date, catalog.Lookup(e.CategoryID).Name, money(e.Amount))
		if e.Note != "" {
			line += " " + e.Note
		}
		res = append(res, line)
	}
	return strings.Join(res, "\n")
}

func formatTree(catalog *categories.Catalog) string {
	if catalog.Len() == 0 {
		return noCategoriesMessage
	}
	var b strings.Builder
	var walk func(nodes []*categories.Node, depth int)
	walk = func(nodes []*categories.Node, depth int) {
		for _, n := range nodes {
			label := catalog.Lookup(n.ID)
			fmt.Fprintf(&b, "%s%s (%s)\n", strings.Repeat("  ", depth), label.Name, label.Color)
			walk(n.Children, depth+1)
		}
	}
	walk(catalog.Roots(), 0)
	return strings.TrimRight(b.String(), "\n")
}
