// Package mailbox provides an untyped message queue that supports
// selective receives.
package mailbox

import (
	"sync"

	"deedles.dev/rmlist"
)

// Mailbox is a process mailbox in the style of Erlang. It works
// similarly to a channel but is not tied to a specific type and
// features a dynamic buffer. Sends to a mailbox are always
// asynchronous. A zero-value Mailbox is ready to use.
type Mailbox struct {
	once sync.Once

	m sync.Mutex
	c sync.Cond

	// Newest message at the front.
	queue rmlist.List[any]
}

func (mb *Mailbox) init() {
	mb.once.Do(func() {
		mb.c.L = &mb.m
	})
}

// Send delivers a message to the Mailbox. If there are any blocked
// receives, they will check the new message to see if it is what
// they're waiting for after this function returns.
func (mb *Mailbox) Send(msg any) {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	mb.queue.PushFront(msg)
	mb.c.Broadcast()
}

// Len returns the number of messages waiting in the Mailbox.
func (mb *Mailbox) Len() int {
	mb.m.Lock()
	defer mb.m.Unlock()

	return mb.queue.Len()
}

// find removes and returns the oldest matching message. The queue is
// scanned without modifying it, so a panicking match leaves every
// message in place. Only once a match is found are the older messages
// popped into skipped and spliced back onto the back of the queue in
// their original order.
func find[T any](mb *Mailbox, match func(T) bool) (v T, ok bool) {
	skip := -1
	var i int
	for msg := range mb.queue.Backward() {
		m, isT := msg.(T)
		if isT && (match == nil || match(m)) {
			v, skip = m, i
			break
		}
		i++
	}
	if skip < 0 {
		return v, false
	}

	var skipped rmlist.List[any]
	for range skip {
		msg, _ := mb.queue.PopBack()
		skipped.PushFront(msg)
	}
	mb.queue.PopBack()
	mb.queue.Append(&skipped)

	return v, true
}

// Recv checks mb to see if any messages that have been sent to it are
// matched by the given function. A message is considered to be a
// match if it both can be type asserted to T and the match function,
// if not nil, returns true. If there is such a message, the oldest
// one is removed from the Mailbox and returned. If there is no such
// message, Recv blocks until such a message arrives.
//
// Each wakeup rescans the pending messages, so a blocked Recv costs
// O(n) in the number of pending messages per Send, without
// allocating. Taking a match reallocates one node per older message.
//
// For a non-blocking variant that returns immediately whether or not
// a matching message is present, see [TryRecv].
func Recv[T any](mb *Mailbox, match func(T) bool) T {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	for {
		msg, ok := find(mb, match)
		if ok {
			return msg
		}

		mb.c.Wait()
	}
}

// TryRecv is like [Recv] but doesn't block, returning immediately
// whether not a matching message is present in the Mailbox. If no
// message matches, it returns false as the second return.
func TryRecv[T any](mb *Mailbox, match func(T) bool) (msg T, ok bool) {
	mb.m.Lock()
	defer mb.m.Unlock()

	return find(mb, match)
}
