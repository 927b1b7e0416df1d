// Package notify keeps the queue of user-visible toasts produced by synchronization outcomes.
package notify

import (
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

const DefaultTimeout = 5 * time.Second

type Toast struct {
	ID      string
	Message string
	Kind    Kind
	// Timeout of zero keeps the toast until it is dismissed.
	Timeout time.Duration
}

type Listener func([]Toast)

type Toasts struct {
	clock          clockwork.Clock
	defaultTimeout time.Duration

	mu        sync.Mutex
	nextID    int
	active    []Toast
	timers    map[string]clockwork.Timer
	listeners map[int]Listener
	nextSub   int
}

func New(clock clockwork.Clock, defaultTimeout time.Duration) *Toasts {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if defaultTimeout < 0 {
		defaultTimeout = DefaultTimeout
	}
	return &Toasts{
		clock:          clock,
		defaultTimeout: defaultTimeout,
		timers:         make(map[string]clockwork.Timer),
		listeners:      make(map[int]Listener),
	}
}

// Show enqueues a toast and schedules its removal unless timeout is zero.
func (t *Toasts) Show(message string, kind Kind, timeout time.Duration) string {
	if timeout < 0 {
		timeout = 0
	}
	t.mu.Lock()
	t.nextID++
	toast := Toast{
		ID:      "toast-" + strconv.Itoa(t.nextID),
		Message: message,
		Kind:    kind,
		Timeout: timeout,
	}
	t.active = append(t.active, toast)
	if timeout > 0 {
		id := toast.ID
		t.timers[id] = t.clock.AfterFunc(timeout, func() { t.remove(id, false) })
	}
	snapshot, listeners := t.snapshotLocked()
	t.mu.Unlock()

	logger.Debug("toast shown", zap.String("id", toast.ID), zap.String("kind", string(kind)))
	notifyAll(listeners, snapshot)
	return toast.ID
}

func (t *Toasts) ShowSuccess(message string) string {
	return t.Show(message, KindSuccess, t.defaultTimeout)
}

func (t *Toasts) ShowError(message string) string {
	return t.Show(message, KindError, t.defaultTimeout)
}

func (t *Toasts) ShowWarning(message string) string {
	return t.Show(message, KindWarning, t.defaultTimeout)
}

func (t *Toasts) ShowInfo(message string) string {
	return t.Show(message, KindInfo, t.defaultTimeout)
}

// Dismiss removes the toast with the given id. Unknown ids are ignored.
func (t *Toasts) Dismiss(id string) {
	t.remove(id, true)
}

// remove runs from timer callbacks with stopTimer unset; a fired timer needs no Stop.
func (t *Toasts) remove(id string, stopTimer bool) {
	t.mu.Lock()
	idx := -1
	for i, toast := range t.active {
		if toast.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return
	}
	t.active = append(t.active[:idx:idx], t.active[idx+1:]...)
	if timer, ok := t.timers[id]; ok {
		if stopTimer {
			timer.Stop()
		}
		delete(t.timers, id)
	}
	snapshot, listeners := t.snapshotLocked()
	t.mu.Unlock()

	notifyAll(listeners, snapshot)
}

func (t *Toasts) Clear() {
	t.mu.Lock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.active = nil
	snapshot, listeners := t.snapshotLocked()
	t.mu.Unlock()

	notifyAll(listeners, snapshot)
}

// Active returns the toasts currently shown, oldest first.
func (t *Toasts) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Toast(nil), t.active...)
}

// Subscribe registers fn for every change of the active list and returns the cancel func.
func (t *Toasts) Subscribe(fn Listener) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSub
	t.nextSub++
	t.listeners[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.listeners, id)
	}
}

func (t *Toasts) snapshotLocked() ([]Toast, []Listener) {
	snapshot := append([]Toast(nil), t.active...)
	listeners := make([]Listener, 0, len(t.listeners))
	for _, l := range t.listeners {
		listeners = append(listeners, l)
	}
	return snapshot, listeners
}

func notifyAll(listeners []Listener, toasts []Toast) {
	for _, l := range listeners {
		l(toasts)
	}
}
