// Package cq implements simple concurrent queues.
package cq

import (
	"log/slog"
	"runtime"
	"sync"

	"deedles.dev/rmlist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
//
// A Queue is initialized by calling any of its methods, so a copy of
// a Queue made before those methods are called is a completely
// independent Queue, while a copy made afterwards is the same Queue.
//
// A Queue is stopped when it is garbage collected, so it is only
// necessary to call Stop to stop it early. Values still buffered in a
// stopped Queue are dropped.
type Queue[T any] struct {
	start sync.Once
	stop  func()

	add chan T
	get chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.add = make(chan T)
		q.get = make(chan T)

		done := make(chan struct{})
		q.stop = sync.OnceFunc(func() { close(done) })

		r := runner[T]{
			done: done,
			add:  q.add,
			get:  q.get,
		}
		go r.run()

		runtime.AddCleanup(q, func(stop func()) { stop() }, q.stop)
	})
}

// Stop stops the queue. It is safe to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.stop()
}

// Add returns a channel that enqueues values sent to it. Closing this
// channel will cause the channel returned by Get to be closed once
// the Queue's contents are emptied, similar to how a regular channel
// works.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

// runner holds only the channels so that the goroutine running it
// does not keep the Queue reachable.
type runner[T any] struct {
	done <-chan struct{}
	add  chan T
	get  chan T

	buf rmlist.List[T]
}

func (r *runner[T]) run() {
	add := r.add
	var get chan T

	defer func() {
		close(r.get)
		if add != nil {
			// Ensure that future attempts to send to the queue will fail.
			close(add)
		}
		if n := r.buf.Len(); n > 0 {
			slog.Debug("queue stopped with values pending", "dropped", n)
			r.buf.Clear()
		}
	}()

	for {
		next, _ := r.buf.Back()

		select {
		case <-r.done:
			return

		case v, ok := <-add:
			if !ok {
				add = nil
				if r.buf.Len() == 0 {
					return
				}
				continue
			}

			r.buf.PushFront(v)
			get = r.get

		case get <- next:
			r.buf.PopBack()
			if r.buf.Len() == 0 {
				if add == nil {
					return
				}
				get = nil
			}
		}
	}
}
