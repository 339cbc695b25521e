package keylock

import (
	"context"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestLocal__TryLock(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx, "campaign:1")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)

	_, ok, err = l.TryLock(ctx, "campaign:1")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)

	release2, ok, _ := l.TryLock(ctx, "campaign:2")
	assert.Equal(t, true, ok)
	release2()

	release()
	release()

	release, ok, _ = l.TryLock(ctx, "campaign:1")
	assert.Equal(t, true, ok)
	release()
}

func TestLocal__TryLock__Concurrent_Only_One_Wins(t *testing.T) {
	l := NewLocal()

	var wg sync.WaitGroup
	var mut sync.Mutex
	wins := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, _ := l.TryLock(context.Background(), "campaign:1")
			if ok {
				mut.Lock()
				wins++
				mut.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
