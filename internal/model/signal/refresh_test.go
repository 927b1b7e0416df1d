package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnBump_ShouldIncreaseMonotonically(t *testing.T) {
	r := NewRefresh()

	assert.Equal(t, int64(1), r.Bump())
	assert.Equal(t, int64(2), r.Bump())
	assert.Equal(t, int64(2), r.Value())
}

func Test_OnSlowSubscriber_ShouldDeliverLatestValue(t *testing.T) {
	r := NewRefresh()
	ch, cancel := r.Subscribe()
	defer cancel()

	r.Bump()
	r.Bump()
	r.Bump()

	assert.Equal(t, int64(3), <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %d", v)
	default:
	}
}

func Test_OnCancel_ShouldCloseChannel(t *testing.T) {
	r := NewRefresh()
	ch, cancel := r.Subscribe()
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	r.Bump()
}
