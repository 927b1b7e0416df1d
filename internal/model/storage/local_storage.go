package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/translate"
)

const tableKeyPrefix = "table:"

// immutable after insert
var protectedColumns = []string{"id", "user_id", "created_at"}

// LocalStorage is a Gateway over the local key-value store. Each table is one
// reactive kv value; aggregates are answered by the reports package.
type LocalStorage struct {
	tables map[string]*kv.Value[[]translate.Row]
	clock  func() time.Time

	// serializes the check-then-insert of the default categories
	bootstrapMu sync.Mutex
}

func NewLocalStorage(ctx context.Context, store kv.Store) *LocalStorage {
	s := &LocalStorage{
		tables: make(map[string]*kv.Value[[]translate.Row]),
		clock:  time.Now,
	}
	for _, table := range []string{gateway.TableExpenses, gateway.TableCategories} {
		s.tables[table] = kv.New(ctx, store, tableKeyPrefix+table, []translate.Row{})
	}
	return s
}

func (s *LocalStorage) table(ctx context.Context, name string) (*kv.Value[[]translate.Row], error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, errors.Wrapf(gateway.ErrUnknownTable, "table %s", name)
	}
	// operating before the stored rows arrive would drop them
	if err := t.WaitLoaded(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for local table")
	}
	return t, nil
}

func (s *LocalStorage) Insert(ctx context.Context, table string, row translate.Row) (translate.Row, error) {
	t, err := s.table(ctx, table)
	if err != nil {
		return nil, err
	}
	if row.Str("user_id") == "" {
		return nil, errors.New("insert: user_id is required")
	}
	inserted := row.Clone()
	inserted["id"] = uuid.NewString()
	now := expense.FormatTimestamp(s.clock())
	if !inserted.Has("created_at") {
		inserted["created_at"] = now
	}
	if !inserted.Has("updated_at") {
		inserted["updated_at"] = now
	}

	err = t.Update(ctx, func(rows []translate.Row) []translate.Row {
		next := make([]translate.Row, 0, len(rows)+1)
		next = append(next, rows...)
		return append(next, inserted)
	})
	if err != nil {
		return nil, errors.Wrap(err, "insert")
	}
	return inserted.Clone(), nil
}

func (s *LocalStorage) Update(ctx context.Context, table, id, userID string, patch translate.Row) (translate.Row, error) {
	t, err := s.table(ctx, table)
	if err != nil {
		return nil, err
	}
	var updated translate.Row
	err = t.Update(ctx, func(rows []translate.Row) []translate.Row {
		next := make([]translate.Row, len(rows))
		copy(next, rows)
		for i, r := range next {
			if r.Str("id") != id || r.Str("user_id") != userID {
				continue
			}
			merged := r.Clone()
			for k, v := range patch {
				merged[k] = v
			}
			for _, col := range protectedColumns {
				merged[col] = r[col]
			}
			next[i] = merged
			updated = merged
			break
		}
		return next
	})
	if updated == nil {
		return nil, errors.Wrapf(gateway.ErrNotFound, "update %s %s", table, id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update")
	}
	return updated.Clone(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, table, id, userID string) error {
	t, err := s.table(ctx, table)
	if err != nil {
		return err
	}
	found := false
	err = t.Update(ctx, func(rows []translate.Row) []translate.Row {
		next := make([]translate.Row, 0, len(rows))
		for _, r := range rows {
			if r.Str("id") == id && r.Str("user_id") == userID {
				found = true
				continue
			}
			next = append(next, r)
		}
		return next
	})
	if !found {
		return errors.Wrapf(gateway.ErrNotFound, "delete %s %s", table, id)
	}
	return errors.Wrap(err, "delete")
}

func (s *LocalStorage) SelectAll(ctx context.Context, table, userID, orderBy string) ([]translate.Row, error) {
	t, err := s.table(ctx, table)
	if err != nil {
		return nil, err
	}
	order, err := gateway.ParseOrder(orderBy)
	if err != nil {
		return nil, err
	}
	res := make([]translate.Row, 0)
	for _, r := range t.Get() {
		if r.Str("user_id") == userID {
			res = append(res, r.Clone())
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		c := compareValues(res[i], res[j], order.Column)
		if order.Desc {
			return c > 0
		}
		return c < 0
	})
	return res, nil
}

func (s *LocalStorage) CallAggregate(ctx context.Context, name string, params translate.Row) ([]translate.Row, error) {
	if _, ok := gateway.AggregateParams[name]; !ok {
		return nil, errors.Wrapf(gateway.ErrUnknownAggregate, "aggregate %s", name)
	}
	userID := params.Str("user_id")
	if name == gateway.AggCreateUserCategories {
		return s.createUserCategories(ctx, userID, params.Str("locale"))
	}

	exps, cats, err := s.userData(ctx, userID)
	if err != nil {
		return nil, err
	}
	start, end := params.Str("start_date"), params.Str("end_date")

	var rows []translate.Row
	switch name {
	case gateway.AggCategoryBreakdown:
		for _, b := range reports.Breakdown(exps, cats, start, end) {
			rows = append(rows, b.ToRow())
		}
	case gateway.AggMonthlyTrend:
		for _, m := range reports.MonthlyTrend(exps, params.Int("year")) {
			rows = append(rows, m.ToRow())
		}
	case gateway.AggYearlyTrend:
		for _, y := range reports.YearlyTrend(exps) {
			rows = append(rows, y.ToRow())
		}
	case gateway.AggPeriodSummary:
		rows = append(rows, reports.PeriodSummary(exps, start, end).ToRow())
	case gateway.AggPeriodExpenses:
		for _, e := range reports.PeriodExpenses(exps, cats, start, end) {
			r := e.ToRow()
			r["categoryName"] = e.CategoryName
			r["categoryDisplayName"] = e.CategoryDisplayName
			r["categoryColor"] = e.CategoryColor
			rows = append(rows, r)
		}
	case gateway.AggCategoryTree:
		for _, c := range reports.CategoryTree(cats) {
			rows = append(rows, c.ToRow())
		}
	}
	return translate.RowsToSnake(rows), nil
}

func (s *LocalStorage) userData(ctx context.Context, userID string) ([]expense.Expense, []expense.Category, error) {
	expRows, err := s.SelectAll(ctx, gateway.TableExpenses, userID, "date desc")
	if err != nil {
		return nil, nil, err
	}
	exps, err := expense.FromRows(translate.RowsToCamel(expRows))
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode local expenses")
	}
	catRows, err := s.SelectAll(ctx, gateway.TableCategories, userID, "sort_order asc")
	if err != nil {
		return nil, nil, err
	}
	return exps, expense.CategoriesFromRows(translate.RowsToCamel(catRows)), nil
}

func (s *LocalStorage) createUserCategories(ctx context.Context, userID, locale string) ([]translate.Row, error) {
	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	existing, err := s.SelectAll(ctx, gateway.TableCategories, userID, "sort_order asc")
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}
	res := make([]translate.Row, 0)
	for _, c := range expense.DefaultCategories(userID, locale) {
		row, err := s.Insert(ctx, gateway.TableCategories, translate.RowToSnake(c.ToRow()))
		if err != nil {
			return nil, errors.Wrap(err, "create default categories")
		}
		res = append(res, row)
	}
	return res, nil
}

// compareValues orders numbers numerically and everything else as strings.
func compareValues(a, b translate.Row, column string) int {
	as, bs := a.Str(column), b.Str(column)
	af, aErr := strconv.ParseFloat(as, 64)
	bf, bErr := strconv.ParseFloat(bs, 64)
	if aErr == nil && bErr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}
