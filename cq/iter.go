package cq

import (
	"context"
	"iter"
)

// Values returns an iterator that yields buffered values in FIFO
// order. It stops once the queue's Get channel is closed, which
// happens after the Add channel is closed and the buffer has been
// emptied, or when the queue is stopped. It also stops early if ctx
// is canceled, leaving any remaining values buffered.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	q.init()
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-q.get:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}
