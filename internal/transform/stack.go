package transform

import (
	"runtime/debug"
	"sync"
)

// stackMu serializes guarded sections: the stack ceiling is process-wide.
var stackMu sync.Mutex

// stackGuard raises the goroutine stack ceiling while deep tree work runs.
type stackGuard struct {
	limit int
}

func newStackGuard(limit int) *stackGuard {
	return &stackGuard{limit: limit}
}

// Do runs fn with the ceiling raised to the guard limit and restores the
// previous ceiling on every exit path, panics included. The ceiling is
// never lowered; a non-positive limit leaves it untouched.
func (g *stackGuard) Do(fn func() error) error {
	stackMu.Lock()
	defer stackMu.Unlock()

	if g.limit <= 0 {
		return fn()
	}

	prev := debug.SetMaxStack(g.limit)
	defer debug.SetMaxStack(prev)
	if prev > g.limit {
		debug.SetMaxStack(prev)
	}

	return fn()
}
