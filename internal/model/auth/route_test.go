package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/session"
)

func Test_OnDecideWhileLoading_ShouldDefer(t *testing.T) {
	for _, state := range []State{Uninitialized, Loading} {
		decision := Decide(Snapshot{State: state}, Resolve(PathHome))
		assert.Equal(t, Defer, decision.Verdict, state.String())
	}
}

func Test_OnDecide_ShouldRedirectByUser(t *testing.T) {
	user := &session.User{ID: "u1"}
	anonymous := Snapshot{State: Anonymous}
	authenticated := Snapshot{State: Authenticated, User: user}

	assert.Equal(t, Decision{Verdict: Redirect, Target: PathLogin}, Decide(anonymous, Resolve(PathCharts)))
	assert.Equal(t, Decision{Verdict: Allow, Target: PathLogin}, Decide(anonymous, Resolve(PathLogin)))
	assert.Equal(t, Decision{Verdict: Redirect, Target: PathHome}, Decide(authenticated, Resolve(PathLogin)))
	assert.Equal(t, Decision{Verdict: Allow, Target: PathCharts}, Decide(authenticated, Resolve(PathCharts)))
	assert.Equal(t, Decision{Verdict: Redirect, Target: PathHome}, Decide(anonymous, Resolve(PathRoot)))
	assert.Equal(t, Decision{Verdict: Allow, Target: "/callback"}, Decide(anonymous, Resolve("/callback")))
}

func Test_OnNavigate_ShouldInitializeAuthFirst(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(nil, nil).Once()
	provider.On("OnAuthStateChange").Return().Once()
	guard := NewGuard(provider, nil)

	decision, err := guard.Navigate(context.Background(), PathHome)
	require.NoError(t, err)
	assert.Equal(t, Decision{Verdict: Redirect, Target: PathLogin}, decision)

	_, err = guard.Navigate(context.Background(), PathCharts)
	require.NoError(t, err)
	provider.AssertExpectations(t)
}
