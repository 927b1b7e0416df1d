package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/change"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/signal"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/translate"
)

type localeConfig string

func (c localeConfig) Locale() string { return string(c) }

type fixedUser struct {
	user *session.User
}

func (u *fixedUser) CurrentUser() *session.User { return u.user }

// flakyGateway fails the inserts whose 1-based call number is listed.
type flakyGateway struct {
	gateway.Gateway
	failInserts map[int]bool
	inserts     int
}

func (g *flakyGateway) Insert(ctx context.Context, table string, row translate.Row) (translate.Row, error) {
	g.inserts++
	if g.failInserts[g.inserts] {
		return nil, errors.New("connection reset")
	}
	return g.Gateway.Insert(ctx, table, row)
}

type mockGateway struct {
	mock.Mock
	gateway.Gateway
}

func (m *mockGateway) CallAggregate(ctx context.Context, name string, params translate.Row) ([]translate.Row, error) {
	args := m.Called(ctx, name, params)
	rows, _ := args.Get(0).([]translate.Row)
	return rows, args.Error(1)
}

type recordingNotifier struct {
	events []change.Event
}

func (n *recordingNotifier) Publish(_ context.Context, event change.Event) error {
	n.events = append(n.events, event)
	return nil
}

type fixture struct {
	service *Service
	signal  *signal.Refresh
	users   *fixedUser
	local   *storage.LocalStorage
	clock   *clockwork.FakeClock
}

func newFixture(t *testing.T, wrap func(gateway.Gateway) gateway.Gateway) *fixture {
	local := storage.NewLocalStorage(context.Background(), kv.NewMemoryStore())
	var gw gateway.Gateway = local
	if wrap != nil {
		gw = wrap(local)
	}
	f := &fixture{
		signal: signal.NewRefresh(),
		users:  &fixedUser{user: &session.User{ID: "user-a"}},
		local:  local,
		clock:  clockwork.NewFakeClockAt(time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)),
	}
	f.service = NewService(gw, f.users, f.signal, f.clock, localeConfig("en"))
	return f
}

func item(amount string) expense.Expense {
	return expense.New(decimal.RequireFromString(amount), "c1", "2025-10-13", "")
}

func Test_OnSave_ShouldAssignIdStampClockAndBumpSignal(t *testing.T) {
	f := newFixture(t, nil)

	saved, err := f.service.Save(context.Background(), item("12.30"), false)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-a", saved.UserID)
	assert.True(t, saved.Amount.Equal(decimal.RequireFromString("12.3")))
	assert.True(t, saved.CreatedAt.Equal(f.clock.Now()))
	assert.Equal(t, int64(1), f.signal.Value())
}

func Test_OnSaveWithSkipSignal_ShouldNotBump(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.service.Save(context.Background(), item("1"), true)

	require.NoError(t, err)
	assert.Equal(t, int64(0), f.signal.Value())
}

func Test_OnSaveInvalid_ShouldRejectBeforeGateway(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.service.Save(ctx, item("-1"), false)
	assert.ErrorIs(t, err, expense.ErrNegativeAmount)

	withID := item("1")
	withID.ID = "e1"
	_, err = f.service.Save(ctx, withID, false)
	assert.ErrorIs(t, err, expense.ErrIDOnCreate)

	noCategory := item("1")
	noCategory.CategoryID = ""
	_, err = f.service.Save(ctx, noCategory, false)
	assert.ErrorIs(t, err, expense.ErrMissingCategory)

	assert.Equal(t, int64(0), f.signal.Value())
}

func Test_OnBatchSaveAllSucceed_ShouldBumpSignalOnce(t *testing.T) {
	f := newFixture(t, nil)

	res, err := f.service.BatchSave(context.Background(), []expense.Expense{item("1"), item("2"), item("3")})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Succeeded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, int64(1), f.signal.Value())
}

func Test_OnBatchSaveWithOneFailure_ShouldReportCountsAndBumpOnce(t *testing.T) {
	f := newFixture(t, func(gw gateway.Gateway) gateway.Gateway {
		return &flakyGateway{Gateway: gw, failInserts: map[int]bool{2: true}}
	})

	res, err := f.service.BatchSave(context.Background(), []expense.Expense{item("1"), item("2"), item("3")})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, res.Saved, 2)
	assert.Equal(t, int64(1), f.signal.Value())
}

func Test_OnBatchSaveAllFail_ShouldNotBump(t *testing.T) {
	f := newFixture(t, func(gw gateway.Gateway) gateway.Gateway {
		return &flakyGateway{Gateway: gw, failInserts: map[int]bool{1: true, 2: true}}
	})

	res, err := f.service.BatchSave(context.Background(), []expense.Expense{item("1"), item("2")})

	require.NoError(t, err)
	assert.Equal(t, BatchResult{Failed: 2}, res)
	assert.Equal(t, int64(0), f.signal.Value())
}

func Test_OnSaveFailure_ShouldReturnLocalizedGatewayError(t *testing.T) {
	f := newFixture(t, func(gw gateway.Gateway) gateway.Gateway {
		return &flakyGateway{Gateway: gw, failInserts: map[int]bool{1: true}}
	})

	_, err := f.service.Save(context.Background(), item("1"), false)

	var gwErr *gateway.Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "save", gwErr.Op)
	assert.Equal(t, "Failed to save the expense, please retry", gateway.UserMessage(err, ""))
	assert.Equal(t, int64(0), f.signal.Value())
}

func Test_OnUpdate_ShouldChangeOnlyMutableFields(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	saved, err := f.service.Save(ctx, item("1"), false)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	edit := *saved
	edit.Amount = decimal.RequireFromString("9.99")
	edit.Note = "lunch"
	edit.UserID = "user-b"
	edit.CreatedAt = time.Time{}

	updated, err := f.service.Update(ctx, edit)

	require.NoError(t, err)
	assert.Equal(t, "9.99", updated.Amount.String())
	assert.Equal(t, "lunch", updated.Note)
	assert.Equal(t, "user-a", updated.UserID)
	assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt))
	assert.True(t, updated.UpdatedAt.Equal(f.clock.Now()))
	assert.Equal(t, int64(2), f.signal.Value())
}

func Test_OnDeleteOfOtherUsersRow_ShouldFailAndKeepRow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.users.user = &session.User{ID: "user-b"}
	owned, err := f.service.Save(ctx, item("5"), false)
	require.NoError(t, err)

	f.users.user = &session.User{ID: "user-a"}
	err = f.service.Delete(ctx, owned.ID)

	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.Equal(t, "Failed to delete the expense, please retry", gateway.UserMessage(err, ""))
	f.users.user = &session.User{ID: "user-b"}
	left, err := f.service.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, left, 1)
	assert.Equal(t, int64(1), f.signal.Value())
}

func Test_OnDelete_ShouldRemoveAndBump(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	saved, err := f.service.Save(ctx, item("5"), false)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, saved.ID))

	left, err := f.service.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, int64(2), f.signal.Value())
}

func Test_OnNoUser_ShouldBeNoOp(t *testing.T) {
	f := newFixture(t, nil)
	f.users.user = nil
	ctx := context.Background()

	saved, err := f.service.Save(ctx, item("1"), false)
	assert.NoError(t, err)
	assert.Nil(t, saved)

	res, err := f.service.BatchSave(ctx, []expense.Expense{item("1")})
	assert.NoError(t, err)
	assert.Equal(t, BatchResult{}, res)

	assert.NoError(t, f.service.Delete(ctx, "e1"))

	all, err := f.service.LoadAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	summary, err := f.service.GetPeriodSummary(ctx, "2025-10-01", "2025-10-31")
	assert.NoError(t, err)
	assert.True(t, summary.TotalAmount.IsZero())

	assert.Equal(t, int64(0), f.signal.Value())
}

func Test_OnAggregateFailure_ShouldReturnDistinctMessages(t *testing.T) {
	gw := &mockGateway{}
	gw.On("CallAggregate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))
	users := &fixedUser{user: &session.User{ID: "user-a"}}
	service := NewService(gw, users, signal.NewRefresh(), clockwork.NewFakeClock(), localeConfig("zh-CN"))
	ctx := context.Background()

	_, err := service.GetCategoryBreakdown(ctx, "2025-10-01", "2025-10-31")
	assert.Equal(t, "加载分类统计失败", gateway.UserMessage(err, ""))

	_, err = service.GetMonthlyTrend(ctx, 2025)
	assert.Equal(t, "加载月度趋势失败", gateway.UserMessage(err, ""))

	_, err = service.GetYearlyTrend(ctx)
	assert.Equal(t, "加载年度趋势失败", gateway.UserMessage(err, ""))

	_, err = service.GetPeriodSummary(ctx, "2025-10-01", "2025-10-31")
	assert.Equal(t, "加载期间汇总失败", gateway.UserMessage(err, ""))

	_, err = service.GetPeriodExpenses(ctx, "2025-10-01", "2025-10-31")
	assert.Equal(t, "加载期间支出失败", gateway.UserMessage(err, ""))
}

func Test_OnAggregate_ShouldSendSnakeParamsScopedToUser(t *testing.T) {
	gw := &mockGateway{}
	gw.On("CallAggregate", mock.Anything, gateway.AggPeriodSummary, translate.Row{
		"user_id":    "user-a",
		"start_date": "2025-10-01",
		"end_date":   "2025-10-31",
	}).Return([]translate.Row{{"total_amount": "70", "expense_count": float64(3)}}, nil)
	users := &fixedUser{user: &session.User{ID: "user-a"}}
	service := NewService(gw, users, signal.NewRefresh(), nil, localeConfig("en"))

	summary, err := service.GetPeriodSummary(context.Background(), "2025-10-01", "2025-10-31")

	require.NoError(t, err)
	assert.Equal(t, "70", summary.TotalAmount.String())
	assert.Equal(t, 3, summary.ExpenseCount)
	gw.AssertExpectations(t)
}

func Test_OnLocalAggregates_ShouldDecodeRows(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.service.BatchSave(ctx, []expense.Expense{item("10"), item("20.5")})
	require.NoError(t, err)

	breakdown, err := f.service.GetCategoryBreakdown(ctx, "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "30.5", breakdown[0].Amount.String())

	period, err := f.service.GetPeriodExpenses(ctx, "2025-10-13", "2025-10-13")
	require.NoError(t, err)
	assert.Len(t, period, 2)

	trend, err := f.service.GetMonthlyTrend(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, trend, 12)
	assert.Equal(t, "30.5", trend[9].Amount.String())

	yearly, err := f.service.GetYearlyTrend(ctx)
	require.NoError(t, err)
	require.Len(t, yearly, 1)
	assert.Equal(t, 2025, yearly[0].Year)
}

func Test_OnMutation_ShouldPublishChangeEvent(t *testing.T) {
	f := newFixture(t, nil)
	notifier := &recordingNotifier{}
	f.service.SetChangeNotifier(notifier)
	ctx := context.Background()

	saved, err := f.service.Save(ctx, item("1"), false)
	require.NoError(t, err)
	_, err = f.service.BatchSave(ctx, []expense.Expense{item("2"), item("3")})
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, saved.ID))

	require.Len(t, notifier.events, 3)
	assert.Equal(t, change.OpCreate, notifier.events[0].Op)
	assert.Len(t, notifier.events[1].IDs, 2)
	assert.Equal(t, change.OpDelete, notifier.events[2].Op)
	assert.Equal(t, "user-a", notifier.events[2].UserID)
}
