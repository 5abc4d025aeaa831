package booking

import (
	"context"
	"errors"
	"fmt"
)

// ErrTaskPanicked wraps a panic raised inside a task
var ErrTaskPanicked = errors.New("task panicked")

// Task is a cancellable asynchronous call producing a T
type Task[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	value  T
	err    error
}

// Go starts fn in its own goroutine. A panic in fn is reported by Wait
// as an error wrapping ErrTaskPanicked.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(t.done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			}
		}()
		t.value, t.err = fn(ctx)
	}()

	return t
}

// Wait blocks until the task has finished
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.value, t.err
}

// Done is closed once the task has finished
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Cancel asks the task to stop. It does not wait for it.
func (t *Task[T]) Cancel() {
	t.cancel()
}
