package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/session"
)

type countingSource struct {
	calls int
	exps  []expense.Expense
}

func (s *countingSource) LoadAll(context.Context) ([]expense.Expense, error) {
	s.calls++
	return s.exps, nil
}

type switchableUser struct{ user *session.User }

func (u *switchableUser) CurrentUser() *session.User { return u.user }

// userSource returns the expenses of whoever is signed in.
type userSource struct {
	users  *switchableUser
	byUser map[string][]expense.Expense
	calls  int
}

func (s *userSource) LoadAll(context.Context) ([]expense.Expense, error) {
	s.calls++
	if s.users.user == nil {
		return nil, nil
	}
	return s.byUser[s.users.user.ID], nil
}

type fixedSignal struct{ v int64 }

func (s *fixedSignal) Value() int64 { return s.v }

func Test_OnDashboard_ShouldRecomputeOnlyWhenSignalOrWindowChanges(t *testing.T) {
	ctx := context.Background()
	clock := localTime(t, "2025-10-13T10:00:00")
	source := &countingSource{exps: []expense.Expense{exp("10", "food", "2025-10-13")}}
	sig := &fixedSignal{}
	d := NewDashboard(source, &switchableUser{user: &session.User{ID: "u1"}}, sig, func() time.Time { return clock })

	s, err := d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.Equal(t, "10", s.Total.String())

	_, err = d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	source.exps = append(source.exps, exp("5", "food", "2025-10-13"))
	sig.v++
	s, err = d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.Equal(t, "15", s.Total.String())
	assert.Equal(t, 2, source.calls)

	clock = localTime(t, "2025-10-14T08:00:00")
	s, err = d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 3, source.calls)
}

func Test_OnUserSwitch_ShouldRecomputeSummary(t *testing.T) {
	ctx := context.Background()
	clock := localTime(t, "2025-10-13T10:00:00")
	users := &switchableUser{user: &session.User{ID: "alice"}}
	source := &userSource{users: users, byUser: map[string][]expense.Expense{
		"alice": {exp("42", "food", "2025-10-13")},
	}}
	d := NewDashboard(source, users, &fixedSignal{}, func() time.Time { return clock })

	s, err := d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.Equal(t, "42", s.Total.String())
	assert.Equal(t, 1, s.Count)

	users.user = &session.User{ID: "bob"}
	s, err = d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 2, source.calls)

	users.user = nil
	s, err = d.Summary(ctx, Day)
	require.NoError(t, err)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 3, source.calls)
}
