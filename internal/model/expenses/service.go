// Package expenses synchronizes the user's expenses with the gateway: every write is
// translated to the wire naming, stamped with the client clock and followed by one
// refresh signal bump on success.
package expenses

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/change"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/translate"
)

const (
	opSave           = "save"
	opUpdate         = "update"
	opDelete         = "delete"
	opLoadAll        = "load_all"
	opBreakdown      = "category_breakdown"
	opMonthlyTrend   = "monthly_trend"
	opYearlyTrend    = "yearly_trend"
	opPeriodSummary  = "period_summary"
	opPeriodExpenses = "period_expenses"
)

type userProvider interface {
	CurrentUser() *session.User
}

type refreshSignal interface {
	Bump() int64
}

type changeNotifier interface {
	Publish(ctx context.Context, event change.Event) error
}

type config interface {
	Locale() string
}

type BatchResult struct {
	Succeeded int
	Failed    int
	Saved     []expense.Expense
}

type Service struct {
	gateway  gateway.Gateway
	users    userProvider
	signal   refreshSignal
	clock    clockwork.Clock
	locale   string
	notifier changeNotifier
}

func NewService(gw gateway.Gateway, users userProvider, signal refreshSignal, clock clockwork.Clock, config config) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		gateway: gw,
		users:   users,
		signal:  signal,
		clock:   clock,
		locale:  config.Locale(),
	}
}

// SetChangeNotifier makes successful mutations publish a change event.
func (s *Service) SetChangeNotifier(n changeNotifier) {
	s.notifier = n
}

// Save persists a new expense and returns it with the store-assigned id. It returns
// nil without error when nobody is signed in.
func (s *Service) Save(ctx context.Context, e expense.Expense, skipSignal bool) (*expense.Expense, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "saveExpense")
	defer span.Finish()

	user := s.users.CurrentUser()
	if user == nil {
		return nil, nil
	}
	if e.ID != "" {
		return nil, expense.ErrIDOnCreate
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	e.UserID = user.ID
	e.CreatedAt = now
	e.UpdatedAt = now

	row, err := s.call(ctx, opSave, func(ctx context.Context) ([]translate.Row, error) {
		row, err := s.gateway.Insert(ctx, gateway.TableExpenses, translate.RowToSnake(e.ToRow()))
		return []translate.Row{row}, err
	})
	if err != nil {
		ext.Error.Set(span, true)
		return nil, s.fail(opSave, err, msgSaveFailed)
	}
	saved, err := expense.FromRow(translate.RowToCamel(row[0]))
	if err != nil {
		return nil, s.fail(opSave, err, msgDecodeFailed)
	}

	if !skipSignal {
		s.signal.Bump()
		s.publish(ctx, user.ID, change.OpCreate, saved.ID)
	}
	return &saved, nil
}

// BatchSave saves items one by one. A failed item does not stop the batch; the
// refresh signal is bumped once at the end if anything was saved.
func (s *Service) BatchSave(ctx context.Context, items []expense.Expense) (BatchResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "batchSaveExpenses")
	defer span.Finish()
	span.SetTag("items", len(items))

	var res BatchResult
	user := s.users.CurrentUser()
	if user == nil {
		return res, nil
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		saved, err := s.Save(ctx, item, true)
		if err != nil || saved == nil {
			res.Failed++
			logger.Warn("batch item not saved", zap.Int("index", i), zap.Error(err))
			continue
		}
		res.Succeeded++
		res.Saved = append(res.Saved, *saved)
		ids = append(ids, saved.ID)
	}

	if res.Succeeded > 0 {
		s.signal.Bump()
		s.publish(ctx, user.ID, change.OpCreate, ids...)
	}
	logger.Info("batch saved",
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// Update sends only the mutable fields of e.
func (s *Service) Update(ctx context.Context, e expense.Expense) (*expense.Expense, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateExpense")
	defer span.Finish()

	user := s.users.CurrentUser()
	if user == nil {
		return nil, nil
	}
	if e.ID == "" {
		return nil, expense.ErrMissingID
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	e.UpdatedAt = s.clock.Now()

	rows, err := s.call(ctx, opUpdate, func(ctx context.Context) ([]translate.Row, error) {
		row, err := s.gateway.Update(ctx, gateway.TableExpenses, e.ID, user.ID, translate.RowToSnake(e.MutableRow()))
		return []translate.Row{row}, err
	})
	if err != nil {
		ext.Error.Set(span, true)
		return nil, s.fail(opUpdate, err, msgUpdateFailed)
	}
	updated, err := expense.FromRow(translate.RowToCamel(rows[0]))
	if err != nil {
		return nil, s.fail(opUpdate, err, msgDecodeFailed)
	}

	s.signal.Bump()
	s.publish(ctx, user.ID, change.OpUpdate, updated.ID)
	return &updated, nil
}

// Delete removes the expense only if it belongs to the current user.
func (s *Service) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer span.Finish()

	user := s.users.CurrentUser()
	if user == nil {
		return nil
	}
	if id == "" {
		return expense.ErrMissingID
	}

	_, err := s.call(ctx, opDelete, func(ctx context.Context) ([]translate.Row, error) {
		return nil, s.gateway.Delete(ctx, gateway.TableExpenses, id, user.ID)
	})
	if err != nil {
		ext.Error.Set(span, true)
		return s.fail(opDelete, err, msgDeleteFailed)
	}

	s.signal.Bump()
	s.publish(ctx, user.ID, change.OpDelete, id)
	return nil
}

// LoadAll returns the user's expenses, newest first.
func (s *Service) LoadAll(ctx context.Context) ([]expense.Expense, error) {
	user := s.users.CurrentUser()
	if user == nil {
		return []expense.Expense{}, nil
	}
	rows, err := s.call(ctx, opLoadAll, func(ctx context.Context) ([]translate.Row, error) {
		return s.gateway.SelectAll(ctx, gateway.TableExpenses, user.ID, "created_at desc")
	})
	if err != nil {
		return nil, s.fail(opLoadAll, err, msgLoadFailed)
	}
	exps, err := expense.FromRows(translate.RowsToCamel(rows))
	if err != nil {
		return nil, s.fail(opLoadAll, err, msgDecodeFailed)
	}
	return exps, nil
}

func (s *Service) GetCategoryBreakdown(ctx context.Context, startDate, endDate string) ([]expense.CategoryBreakdown, error) {
	rows, ok, err := s.aggregate(ctx, opBreakdown, gateway.AggCategoryBreakdown, msgBreakdownFailed,
		translate.Row{"startDate": startDate, "endDate": endDate})
	if err != nil || !ok {
		return []expense.CategoryBreakdown{}, err
	}
	res := make([]expense.CategoryBreakdown, 0, len(rows))
	for _, r := range rows {
		b, err := expense.BreakdownFromRow(r)
		if err != nil {
			return nil, s.fail(opBreakdown, err, msgDecodeFailed)
		}
		res = append(res, b)
	}
	return res, nil
}

func (s *Service) GetMonthlyTrend(ctx context.Context, year int) ([]expense.MonthlyTrend, error) {
	rows, ok, err := s.aggregate(ctx, opMonthlyTrend, gateway.AggMonthlyTrend, msgMonthlyTrendFailed,
		translate.Row{"year": year})
	if err != nil || !ok {
		return []expense.MonthlyTrend{}, err
	}
	res := make([]expense.MonthlyTrend, 0, len(rows))
	for _, r := range rows {
		m, err := expense.MonthlyTrendFromRow(r)
		if err != nil {
			return nil, s.fail(opMonthlyTrend, err, msgDecodeFailed)
		}
		res = append(res, m)
	}
	return res, nil
}

func (s *Service) GetYearlyTrend(ctx context.Context) ([]expense.YearlyTrend, error) {
	rows, ok, err := s.aggregate(ctx, opYearlyTrend, gateway.AggYearlyTrend, msgYearlyTrendFailed, translate.Row{})
	if err != nil || !ok {
		return []expense.YearlyTrend{}, err
	}
	res := make([]expense.YearlyTrend, 0, len(rows))
	for _, r := range rows {
		y, err := expense.YearlyTrendFromRow(r)
		if err != nil {
			return nil, s.fail(opYearlyTrend, err, msgDecodeFailed)
		}
		res = append(res, y)
	}
	return res, nil
}

// GetPeriodSummary returns a zero summary when the store has no row for the period.
func (s *Service) GetPeriodSummary(ctx context.Context, startDate, endDate string) (expense.PeriodSummary, error) {
	rows, ok, err := s.aggregate(ctx, opPeriodSummary, gateway.AggPeriodSummary, msgSummaryFailed,
		translate.Row{"startDate": startDate, "endDate": endDate})
	if err != nil || !ok || len(rows) == 0 {
		return expense.PeriodSummary{}, err
	}
	summary, err := expense.PeriodSummaryFromRow(rows[0])
	if err != nil {
		return expense.PeriodSummary{}, s.fail(opPeriodSummary, err, msgDecodeFailed)
	}
	return summary, nil
}

func (s *Service) GetPeriodExpenses(ctx context.Context, startDate, endDate string) ([]expense.Expense, error) {
	rows, ok, err := s.aggregate(ctx, opPeriodExpenses, gateway.AggPeriodExpenses, msgPeriodExpensesFailed,
		translate.Row{"startDate": startDate, "endDate": endDate})
	if err != nil || !ok {
		return []expense.Expense{}, err
	}
	exps, err := expense.FromRows(rows)
	if err != nil {
		return nil, s.fail(opPeriodExpenses, err, msgDecodeFailed)
	}
	return exps, nil
}

// aggregate calls a named aggregate for the current user. Params and results use
// camelCase keys. ok is false when nobody is signed in.
func (s *Service) aggregate(ctx context.Context, op, name string, failMsg messageKey, params translate.Row) ([]translate.Row, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "aggregate")
	defer span.Finish()
	span.SetTag("aggregate", name)

	user := s.users.CurrentUser()
	if user == nil {
		return nil, false, nil
	}
	params = params.Clone()
	params["userId"] = user.ID

	rows, err := s.call(ctx, op, func(ctx context.Context) ([]translate.Row, error) {
		return s.gateway.CallAggregate(ctx, name, translate.RowToSnake(params))
	})
	if err != nil {
		ext.Error.Set(span, true)
		return nil, true, s.fail(op, err, failMsg)
	}
	return translate.RowsToCamel(rows), true, nil
}

func (s *Service) call(ctx context.Context, op string, fn func(ctx context.Context) ([]translate.Row, error)) ([]translate.Row, error) {
	start := time.Now()
	rows, err := fn(ctx)
	observeCall(op, time.Since(start), err)
	return rows, err
}

func (s *Service) fail(op string, err error, key messageKey) error {
	logger.Error("gateway call failed", zap.String("op", op), zap.Error(err))
	return gateway.Fail(op, errors.Wrap(err, op), localize(s.locale, key))
}

func (s *Service) publish(ctx context.Context, userID string, op change.Op, ids ...string) {
	if s.notifier == nil {
		return
	}
	event := change.Event{UserID: userID, Op: op, IDs: ids, At: s.clock.Now()}
	if err := s.notifier.Publish(ctx, event); err != nil {
		logger.Warn("change event not published", zap.String("op", string(op)), zap.Error(err))
	}
}
