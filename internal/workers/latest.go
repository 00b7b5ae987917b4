package workers

import (
	"context"
	"sync"
)

// Latest tracks the most recently started task. Starting a new task cancels
// the previous one. The zero value is ready to use.
type Latest[T any] struct {
	mu      sync.Mutex
	gen     uint64
	current *Task[T]
}

// Start cancels the current task, if any, and starts fn as the new current
// task.
func (l *Latest[T]) Start(parent context.Context, fn Func[T]) *Task[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Cancel()
	}
	l.gen++
	l.current = start(parent, l.gen, fn)
	return l.current
}

// IsCurrent reports whether t is still the most recently started task.
// A false result means t has been superseded and its result must be dropped.
func (l *Latest[T]) IsCurrent(t *Task[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil && l.current.gen == t.gen
}

// Cancel cancels the current task and forgets it.
func (l *Latest[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Cancel()
		l.current = nil
	}
}
