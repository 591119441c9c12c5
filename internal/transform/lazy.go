package transform

import "sync"

// lazy computes a value on first access and caches it, error included.
type lazy[T any] struct {
	once sync.Once
	load func() (T, error)
	val  T
	err  error
}

func newLazy[T any](load func() (T, error)) *lazy[T] {
	return &lazy[T]{load: load}
}

func (l *lazy[T]) get() (T, error) {
	l.once.Do(func() {
		l.val, l.err = l.load()
	})
	return l.val, l.err
}

// ParseHook is notified once each time a view parses its content.
type ParseHook func(view string, size int)

func (h ParseHook) fire(view string, size int) {
	if h != nil {
		h(view, size)
	}
}
