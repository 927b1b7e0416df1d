package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/translate"
)

func Test_OnDeleteQuery_ShouldFilterByOwner(t *testing.T) {
	query, err := deleteQuery(gateway.TableExpenses, "e1", "user-a")
	require.NoError(t, err)

	sqlStr, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM expenses WHERE id = $1 AND user_id = $2", sqlStr)
	assert.Equal(t, []any{"e1", "user-a"}, args)
}

func Test_OnInsertQuery_ShouldDropUnknownColumnsAndId(t *testing.T) {
	query, err := insertQuery(gateway.TableExpenses, translate.Row{
		"id":          "forged",
		"amount":      "12.5",
		"category_id": "c1",
		"date":        "2025-10-13",
		"user_id":     "user-a",
		"evil":        "1; DROP TABLE users",
	})
	require.NoError(t, err)

	sqlStr, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO expenses (amount,category_id,date,user_id) VALUES ($1,$2,$3,$4) RETURNING *",
		sqlStr)
	assert.Equal(t, []any{"12.5", "c1", "2025-10-13", "user-a"}, args)
}

func Test_OnUpdateQuery_ShouldKeepImmutableColumns(t *testing.T) {
	query, err := updateQuery(gateway.TableExpenses, "e1", "user-a", translate.Row{
		"amount":     "3",
		"user_id":    "user-b",
		"created_at": "2020-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	sqlStr, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE expenses SET amount = $1 WHERE id = $2 AND user_id = $3 RETURNING *", sqlStr)
	assert.Equal(t, []any{"3", "e1", "user-a"}, args)
}

func Test_OnSelectAllQuery_ShouldRejectUnknownOrderColumn(t *testing.T) {
	query, err := selectAllQuery(gateway.TableExpenses, "user-a", "created_at desc")
	require.NoError(t, err)
	sqlStr, _, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM expenses WHERE user_id = $1 ORDER BY created_at DESC", sqlStr)

	_, err = selectAllQuery(gateway.TableExpenses, "user-a", "password_hash")
	assert.ErrorIs(t, err, gateway.ErrUnknownOrder)

	_, err = selectAllQuery("users", "user-a", "id")
	assert.ErrorIs(t, err, gateway.ErrUnknownTable)
}

func Test_OnAggregateQuery_ShouldBindParamsInDeclaredOrder(t *testing.T) {
	sqlStr, args, err := aggregateQuery(gateway.AggCategoryBreakdown, translate.Row{
		"end_date":   "2025-10-31",
		"user_id":    "user-a",
		"start_date": "2025-10-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM get_category_breakdown($1, $2, $3)", sqlStr)
	assert.Equal(t, []any{"user-a", "2025-10-01", "2025-10-31"}, args)

	_, _, err = aggregateQuery("drop_everything", nil)
	assert.ErrorIs(t, err, gateway.ErrUnknownAggregate)
}
