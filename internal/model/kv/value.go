// Package kv is the local reactive cache: typed, observable values persisted in a
// key-value Store.
//
// A Value starts at its default and loads the stored value in the background. The
// load result is applied only when no write happened since construction; a Set,
// Update or Delete issued before the load resolves wins and the late read is
// dropped.
package kv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type Value[T any] struct {
	key   string
	store Store
	def   T

	mu      sync.Mutex
	current T
	seq     uint64
	subs    map[int]func(T)
	nextSub int

	// values waiting for delivery, in write order; one goroutine drains at a time
	pending    []T
	delivering bool

	// serializes persistence so the store sees writes in call order
	writeMu sync.Mutex

	loaded chan struct{}
}

// New returns a value holding def and starts loading key from store.
func New[T any](ctx context.Context, store Store, key string, def T) *Value[T] {
	v := &Value[T]{
		key:     key,
		store:   store,
		def:     def,
		current: def,
		subs:    make(map[int]func(T)),
		loaded:  make(chan struct{}),
	}
	go v.load(ctx)
	return v
}

func (v *Value[T]) load(ctx context.Context) {
	defer close(v.loaded)

	raw, ok, err := v.store.Get(ctx, v.key)
	if err != nil {
		logger.Warn("failed to load from kv store", zap.String("key", v.key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var stored T
	if err = json.Unmarshal(raw, &stored); err != nil {
		logger.Warn("failed to decode kv value", zap.String("key", v.key), zap.Error(err))
		return
	}

	v.mu.Lock()
	if v.seq != 0 {
		v.mu.Unlock()
		logger.Debug("discard stale kv load", zap.String("key", v.key))
		return
	}
	v.current = stored
	v.pending = append(v.pending, stored)
	v.mu.Unlock()

	v.deliver()
}

// Loaded is closed once the initial load has resolved, applied or not.
func (v *Value[T]) Loaded() <-chan struct{} {
	return v.loaded
}

// WaitLoaded blocks until the initial load resolved or ctx is done.
func (v *Value[T]) WaitLoaded(ctx context.Context) error {
	select {
	case <-v.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set replaces the value.
func (v *Value[T]) Set(ctx context.Context, value T) error {
	return v.Update(ctx, func(T) T { return value })
}

// Update applies fn to the current value atomically with respect to other writes
// and persists the result. The in-memory value and subscribers are updated even
// when persisting fails; the store error is logged and returned.
//
// Subscribers may write from their callbacks. Such a write is delivered once the
// current value reached every subscriber.
func (v *Value[T]) Update(ctx context.Context, fn func(current T) T) error {
	v.writeMu.Lock()
	v.mu.Lock()
	next := fn(v.current)
	v.current = next
	v.seq++
	v.pending = append(v.pending, next)
	v.mu.Unlock()

	err := v.save(ctx, next)
	v.writeMu.Unlock()

	v.deliver()
	return err
}

func (v *Value[T]) save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encode kv value")
	}
	if err = v.store.Set(ctx, v.key, raw); err != nil {
		logger.Warn("failed to save to kv store", zap.String("key", v.key), zap.Error(err))
		return errors.Wrap(err, "save kv value")
	}
	return nil
}

// Delete resets the value to its default and removes the key from the store.
func (v *Value[T]) Delete(ctx context.Context) error {
	v.writeMu.Lock()
	v.mu.Lock()
	v.current = v.def
	v.seq++
	v.pending = append(v.pending, v.def)
	v.mu.Unlock()

	err := v.store.Delete(ctx, v.key)
	v.writeMu.Unlock()

	v.deliver()
	if err != nil {
		logger.Warn("failed to delete from kv store", zap.String("key", v.key), zap.Error(err))
		return errors.Wrap(err, "delete kv value")
	}
	return nil
}

// Subscribe registers fn for every change of the value.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

func (v *Value[T]) subscribers() []func(T) {
	res := make([]func(T), 0, len(v.subs))
	for _, fn := range v.subs {
		res = append(res, fn)
	}
	return res
}

// deliver hands pending values to subscribers in write order. A call made while
// another delivery runs returns at once; the running one picks up its value.
func (v *Value[T]) deliver() {
	v.mu.Lock()
	if v.delivering {
		v.mu.Unlock()
		return
	}
	v.delivering = true
	for len(v.pending) > 0 {
		value := v.pending[0]
		v.pending = v.pending[1:]
		subs := v.subscribers()
		v.mu.Unlock()
		notify(subs, value)
		v.mu.Lock()
	}
	v.delivering = false
	v.mu.Unlock()
}

func notify[T any](subs []func(T), value T) {
	for _, fn := range subs {
		fn(value)
	}
}
