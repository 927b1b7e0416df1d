package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/categories"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/notify"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/signal"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type localeConfig string

func (c localeConfig) Locale() string { return string(c) }

func Test_OnShowToasts_ShouldPrintEachToastOnce(t *testing.T) {
	var out bytes.Buffer
	client := newClient(strings.NewReader(""), &out)
	toasts := notify.New(clockwork.NewFakeClock(), 0)
	toasts.Subscribe(client.ShowToasts)

	toasts.ShowSuccess("Expense saved")
	toasts.ShowError("Failed to save the expense, please retry")

	assert.Equal(t, "[SUCCESS] Expense saved\n[ERROR] Failed to save the expense, please retry\n", out.String())
}

func Test_OnListenUpdates_ShouldAnswerEveryLineUntilEOF(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	local := storage.NewLocalStorage(ctx, store)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC))
	guard := auth.NewGuard(auth.NewLocalProvider(ctx, store), categories.NewService(local, localeConfig("en")))
	defer guard.Close()
	refresh := signal.NewRefresh()
	expenseService := expenses.NewService(local, guard, refresh, clock, localeConfig("en"))
	toasts := notify.New(clock, 0)

	var out bytes.Buffer
	client := newClient(strings.NewReader("/help\n\n/list\n"), &out)
	toasts.Subscribe(client.ShowToasts)
	service := messages.NewService(client, messages.Deps{
		Guard:      guard,
		Expenses:   expenseService,
		Categories: categories.NewService(local, localeConfig("en")),
		Dashboard:  reports.NewDashboard(expenseService, guard, refresh, clock.Now),
		Notifier:   toasts,
		Now:        clock.Now,
	})

	client.ListenUpdates(ctx, service)

	assert.Contains(t, out.String(), "/expense <category> <amount>")
	assert.True(t, strings.HasSuffix(out.String(), "Please /login or /signup first\n"))
}
