package reports

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
)

type expensesSource interface {
	LoadAll(ctx context.Context) ([]expense.Expense, error)
}

type userProvider interface {
	CurrentUser() *session.User
}

type refreshSignal interface {
	Value() int64
}

type dashboardKey struct {
	userID  string
	version int64
	period  Period
	start   time.Time
}

// Dashboard serves windowed summaries. A summary is recomputed from scratch when the
// signed-in user, the refresh signal or the window start changes; otherwise the last
// result is reused.
type Dashboard struct {
	source expensesSource
	users  userProvider
	signal refreshSignal
	clock  func() time.Time

	mu     sync.Mutex
	cached map[Period]dashboardEntry
}

type dashboardEntry struct {
	key     dashboardKey
	summary Summary
}

func NewDashboard(source expensesSource, users userProvider, signal refreshSignal, clock func() time.Time) *Dashboard {
	if clock == nil {
		clock = time.Now
	}
	return &Dashboard{
		source: source,
		users:  users,
		signal: signal,
		clock:  clock,
		cached: make(map[Period]dashboardEntry),
	}
}

func (d *Dashboard) Summary(ctx context.Context, p Period) (Summary, error) {
	t := d.clock()
	start, _ := Window(p, t)
	key := dashboardKey{version: d.signal.Value(), period: p, start: start}
	if user := d.users.CurrentUser(); user != nil {
		key.userID = user.ID
	}

	d.mu.Lock()
	entry, ok := d.cached[p]
	d.mu.Unlock()
	if ok && entry.key == key {
		// the window end moves with the clock, totals stay valid
		entry.summary.End = t
		return entry.summary, nil
	}

	logger.Debug("recompute summary", zap.String("period", string(p)), zap.Int64("version", key.version))
	exps, err := d.source.LoadAll(ctx)
	if err != nil {
		return Summary{}, errors.Wrap(err, "dashboard summary")
	}
	summary := Summarize(exps, p, t)

	d.mu.Lock()
	d.cached[p] = dashboardEntry{key: key, summary: summary}
	d.mu.Unlock()
	return summary, nil
}
