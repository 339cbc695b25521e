package keylock

import (
	"context"
	"sync"
)

//go:generate moq -out keylock_mocks.go . Locker

// Locker is a non-blocking lock by key
type Locker interface {
	// TryLock returns ok = false when the key is held by another owner
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// Local is a Locker valid inside one process
type Local struct {
	mut  sync.Mutex
	keys map[string]struct{}
}

var _ Locker = &Local{}

// NewLocal ...
func NewLocal() *Local {
	return &Local{
		keys: map[string]struct{}{},
	}
}

// TryLock ...
func (l *Local) TryLock(_ context.Context, key string) (func(), bool, error) {
	l.mut.Lock()
	defer l.mut.Unlock()

	if _, existed := l.keys[key]; existed {
		return nil, false, nil
	}
	l.keys[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mut.Lock()
			delete(l.keys, key)
			l.mut.Unlock()
		})
	}, true, nil
}
