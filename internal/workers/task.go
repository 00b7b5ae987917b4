package workers

import "context"

// Task is a running or finished Func.
type Task[T any] struct {
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}

	val T
	err error
}

func start[T any](parent context.Context, gen uint64, fn Func[T]) *Task[T] {
	ctx, cancel := context.WithCancel(parent)
	t := &Task[T]{
		gen:    gen,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()
		t.val, t.err = fn(ctx)
	}()

	return t
}

// Cancel cancels the task's context. It does not wait for fn to return.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// Wait blocks until fn returns or ctx is done and returns fn's result.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
