// Package gateway is the boundary over the remote store: row CRUD on the expenses and
// categories tables plus named aggregate queries. Rows crossing it use snake_case keys.
package gateway

import (
	"context"

	"max.ks1230/expense-tracker/internal/model/translate"
)

const (
	TableExpenses   = "expenses"
	TableCategories = "categories"
)

const (
	AggCategoryBreakdown    = "get_category_breakdown"
	AggMonthlyTrend         = "get_monthly_trend"
	AggYearlyTrend          = "get_yearly_trend"
	AggPeriodSummary        = "get_period_summary"
	AggPeriodExpenses       = "get_period_expenses"
	AggCategoryTree         = "get_category_tree"
	AggCreateUserCategories = "create_categories_for_new_user"
)

// AggregateParams lists the parameters of each aggregate in call order.
var AggregateParams = map[string][]string{
	AggCategoryBreakdown:    {"user_id", "start_date", "end_date"},
	AggMonthlyTrend:         {"user_id", "year"},
	AggYearlyTrend:          {"user_id"},
	AggPeriodSummary:        {"user_id", "start_date", "end_date"},
	AggPeriodExpenses:       {"user_id", "start_date", "end_date"},
	AggCategoryTree:         {"user_id"},
	AggCreateUserCategories: {"user_id", "category_set", "locale"},
}

// Gateway is implemented by the local store, the Postgres store and the RPC client.
// Every call is scoped to a user; Update and Delete only touch rows owned by userID.
type Gateway interface {
	Insert(ctx context.Context, table string, row translate.Row) (translate.Row, error)
	Update(ctx context.Context, table, id, userID string, patch translate.Row) (translate.Row, error)
	Delete(ctx context.Context, table, id, userID string) error
	SelectAll(ctx context.Context, table, userID, orderBy string) ([]translate.Row, error)
	CallAggregate(ctx context.Context, name string, params translate.Row) ([]translate.Row, error)
}
