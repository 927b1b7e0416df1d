// Package signal holds the refresh signal: a process-wide counter bumped once per
// successful mutation. Consumers use it as an invalidation token.
package signal

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var gaugeRefreshSignal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "expense_tracker",
		Subsystem: "sync",
		Name:      "refresh_signal",
	},
)

type Refresh struct {
	mu      sync.Mutex
	value   int64
	subs    map[int]chan int64
	nextSub int
}

func NewRefresh() *Refresh {
	return &Refresh{subs: make(map[int]chan int64)}
}

// Bump increments the signal and returns the new value.
func (r *Refresh) Bump() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value++
	gaugeRefreshSignal.Set(float64(r.value))
	for _, ch := range r.subs {
		publishLatest(ch, r.value)
	}
	return r.value
}

func (r *Refresh) Value() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Subscribe returns a channel carrying the latest value after each bump. Slow
// readers only see the most recent value.
func (r *Refresh) Subscribe() (<-chan int64, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan int64, 1)
	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch
	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(ch)
		}
	}
}

func publishLatest(ch chan int64, v int64) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
