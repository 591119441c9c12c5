package transform

import (
	"errors"
	"math"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// currentMaxStack reads the stack ceiling. It briefly raises it, never lowers it.
func currentMaxStack() int {
	prev := debug.SetMaxStack(math.MaxInt32)
	debug.SetMaxStack(prev)
	return prev
}

func TestStackGuardRaisesAndRestores(t *testing.T) {
	before := currentMaxStack()
	limit := before * 2

	var inside int
	err := newStackGuard(limit).Do(func() error {
		inside = currentMaxStack()
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, limit, inside)
	assert.Equal(t, before, currentMaxStack())
}

func TestStackGuardNeverLowers(t *testing.T) {
	before := currentMaxStack()

	var inside int
	err := newStackGuard(before / 2).Do(func() error {
		inside = currentMaxStack()
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, before, inside)
	assert.Equal(t, before, currentMaxStack())
}

func TestStackGuardRestoresOnError(t *testing.T) {
	before := currentMaxStack()
	boom := errors.New("boom")

	err := newStackGuard(before * 2).Do(func() error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, currentMaxStack())
}

func TestStackGuardRestoresOnPanic(t *testing.T) {
	before := currentMaxStack()

	assert.Panics(t, func() {
		_ = newStackGuard(before * 2).Do(func() error { panic("boom") })
	})
	assert.Equal(t, before, currentMaxStack())

	// the guard mutex was released
	assert.NoError(t, newStackGuard(before*2).Do(func() error { return nil }))
}

func TestStackGuardZeroLimit(t *testing.T) {
	before := currentMaxStack()

	var inside int
	err := newStackGuard(0).Do(func() error {
		inside = currentMaxStack()
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, before, inside)
}

func TestStackBytes(t *testing.T) {
	assert.Equal(t, 0, StackBytes(0))
	assert.Equal(t, 0, StackBytes(-5))
	assert.Equal(t, 1<<20, StackBytes(1))
	assert.Equal(t, 512<<20, StackBytes(512))
	assert.Equal(t, math.MaxInt, StackBytes(math.MaxInt))
}
