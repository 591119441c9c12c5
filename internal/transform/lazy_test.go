package transform

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyLoadsOnce(t *testing.T) {
	calls := 0
	l := newLazy(func() (int, error) {
		calls++
		return 42, nil
	})

	assert.Equal(t, 0, calls)

	for i := 0; i < 3; i++ {
		v, err := l.get()
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, calls)
}

func TestLazyCachesError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	l := newLazy(func() (string, error) {
		calls++
		return "", boom
	})

	_, err := l.get()
	assert.ErrorIs(t, err, boom)
	_, err = l.get()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestLazyConcurrentGet(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	l := newLazy(func() (int, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return 7, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := l.get()
			assert.Equal(t, 7, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestNilParseHook(t *testing.T) {
	var hook ParseHook
	assert.NotPanics(t, func() { hook.fire("json", 10) })
}

// parseCounter records view parses for laziness assertions.
type parseCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newParseCounter() *parseCounter {
	return &parseCounter{counts: map[string]int{}}
}

func (c *parseCounter) hook(view string, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[view]++
}

func (c *parseCounter) count(view string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[view]
}
