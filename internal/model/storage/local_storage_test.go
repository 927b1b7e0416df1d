package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/translate"
)

func newLocal(t *testing.T) (*LocalStorage, kv.Store) {
	store := kv.NewMemoryStore()
	return NewLocalStorage(context.Background(), store), store
}

func insertExpense(t *testing.T, s *LocalStorage, userID, amount, date string) translate.Row {
	row, err := s.Insert(context.Background(), gateway.TableExpenses, translate.Row{
		"user_id":     userID,
		"amount":      amount,
		"category_id": "c1",
		"date":        date,
	})
	require.NoError(t, err)
	return row
}

func Test_OnLocalInsert_ShouldAssignIdOnce(t *testing.T) {
	s, _ := newLocal(t)

	row := insertExpense(t, s, "user-a", "10", "2025-10-13")

	assert.NotEmpty(t, row.Str("id"))
	assert.NotEmpty(t, row.Str("created_at"))

	updated, err := s.Update(context.Background(), gateway.TableExpenses, row.Str("id"), "user-a",
		translate.Row{"id": "other", "amount": "11"})
	require.NoError(t, err)
	assert.Equal(t, row.Str("id"), updated.Str("id"))
	assert.Equal(t, "11", updated.Str("amount"))
}

func Test_OnLocalDelete_ShouldNotRemoveOtherUsersRow(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)
	row := insertExpense(t, s, "user-b", "10", "2025-10-13")

	err := s.Delete(ctx, gateway.TableExpenses, row.Str("id"), "user-a")
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	rows, err := s.SelectAll(ctx, gateway.TableExpenses, "user-b", "created_at desc")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, s.Delete(ctx, gateway.TableExpenses, row.Str("id"), "user-b"))
	rows, err = s.SelectAll(ctx, gateway.TableExpenses, "user-b", "created_at desc")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func Test_OnLocalSelectAll_ShouldOrderAndScope(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)
	insertExpense(t, s, "user-a", "1", "2025-10-01")
	insertExpense(t, s, "user-a", "2", "2025-10-03")
	insertExpense(t, s, "user-b", "3", "2025-10-02")

	rows, err := s.SelectAll(ctx, gateway.TableExpenses, "user-a", "date desc")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-10-03", rows[0].Str("date"))
	assert.Equal(t, "2025-10-01", rows[1].Str("date"))
}

func Test_OnLocalStorageReopen_ShouldKeepRows(t *testing.T) {
	ctx := context.Background()
	s, store := newLocal(t)
	insertExpense(t, s, "user-a", "5", "2025-10-13")

	reopened := NewLocalStorage(ctx, store)
	rows, err := reopened.SelectAll(ctx, gateway.TableExpenses, "user-a", "date desc")

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func Test_OnLocalAggregates_ShouldAnswerNamedQueries(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)

	cats, err := s.CallAggregate(ctx, gateway.AggCreateUserCategories, translate.Row{
		"user_id": "user-a", "category_set": "default", "locale": "zh-CN",
	})
	require.NoError(t, err)
	require.Len(t, cats, 5)
	assert.Equal(t, "餐饮", cats[0].Str("display_name"))

	again, err := s.CallAggregate(ctx, gateway.AggCreateUserCategories, translate.Row{"user_id": "user-a"})
	require.NoError(t, err)
	assert.Len(t, again, 5)

	_, err = s.Insert(ctx, gateway.TableExpenses, translate.Row{
		"user_id": "user-a", "amount": "7.5", "category_id": cats[0].Str("id"), "date": "2025-10-13",
	})
	require.NoError(t, err)

	breakdown, err := s.CallAggregate(ctx, gateway.AggCategoryBreakdown, translate.Row{
		"user_id": "user-a", "start_date": "2025-10-01", "end_date": "2025-10-31",
	})
	require.NoError(t, err)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "7.5", breakdown[0].Str("amount"))
	assert.Equal(t, "Food", breakdown[0].Str("category_name"))

	summary, err := s.CallAggregate(ctx, gateway.AggPeriodSummary, translate.Row{
		"user_id": "user-a", "start_date": "2025-10-01", "end_date": "2025-10-31",
	})
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Int("expense_count"))

	trend, err := s.CallAggregate(ctx, gateway.AggMonthlyTrend, translate.Row{"user_id": "user-a", "year": 2025})
	require.NoError(t, err)
	assert.Len(t, trend, 12)

	_, err = s.CallAggregate(ctx, "unknown", translate.Row{})
	assert.ErrorIs(t, err, gateway.ErrUnknownAggregate)
}

func Test_OnConcurrentCategoryBootstrap_ShouldCreateOneSet(t *testing.T) {
	ctx := context.Background()
	s, _ := newLocal(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CallAggregate(ctx, gateway.AggCreateUserCategories, translate.Row{
				"user_id": "user-a", "category_set": "default", "locale": "en",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := s.SelectAll(ctx, gateway.TableCategories, "user-a", "sort_order asc")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}
