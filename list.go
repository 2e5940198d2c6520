// Package rmlist provides a generic doubly-linked list that can be
// pushed to at the front, popped from either end, and spliced onto
// another list in constant time.
package rmlist

import "iter"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// A List is a doubly-linked list of values of type T. A zero value
// List is an empty list ready to use.
//
// A List owns its nodes. They are never shared with another List,
// including after an [List.Append], which moves nodes rather than
// copying them. For this reason a List must not be copied after first
// use. Use [List.Clone] to get an independent copy.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	_ noCopy

	head, tail *node[T]
	len        int

	// mods counts mutations so that borrowing iterators can detect
	// that the list changed underneath them.
	mods uint64
}

// New returns an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of returns a list containing vs in order.
func Of[T any](vs ...T) *List[T] {
	var ls List[T]
	for _, v := range vs {
		ls.pushBack(v)
	}
	return &ls
}

// Collect returns a list containing the values yielded by seq in the
// order that they were yielded.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	var ls List[T]
	for v := range seq {
		ls.pushBack(v)
	}
	return &ls
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.len
}

// Front returns the first element of the list. It returns false if
// the list is empty.
func (ls *List[T]) Front() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Back returns the last element of the list. It returns false if the
// list is empty.
func (ls *List[T]) Back() (v T, ok bool) {
	if ls.tail == nil {
		return v, false
	}
	return ls.tail.Val, true
}

// PushFront adds v to the front of the list.
func (ls *List[T]) PushFront(v T) {
	n := &node[T]{Val: v, next: ls.head}
	if ls.head == nil {
		ls.tail = n
	} else {
		ls.head.prev = n
	}

	ls.head = n
	ls.len++
	ls.mods++
}

func (ls *List[T]) pushBack(v T) {
	n := &node[T]{Val: v, prev: ls.tail}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}

	ls.tail = n
	ls.len++
	ls.mods++
}

// PopFront removes the first element of the list and returns it. It
// returns false if the list was already empty.
func (ls *List[T]) PopFront() (v T, ok bool) {
	n := ls.head
	if n == nil {
		return v, false
	}

	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	} else {
		ls.head.prev = nil
	}
	ls.len--
	ls.mods++

	return n.release(), true
}

// PopBack removes the last element of the list and returns it. It
// returns false if the list was already empty.
func (ls *List[T]) PopBack() (v T, ok bool) {
	n := ls.tail
	if n == nil {
		return v, false
	}

	ls.tail = n.prev
	if ls.tail == nil {
		ls.head = nil
	} else {
		ls.tail.next = nil
	}
	ls.len--
	ls.mods++

	return n.release(), true
}

// Append moves all of the elements of other onto the end of ls,
// leaving other empty. It runs in constant time regardless of the
// length of either list.
//
// Appending a list to itself panics.
func (ls *List[T]) Append(other *List[T]) {
	if ls == other {
		panic("rmlist: list appended to itself")
	}

	if ls.tail == nil {
		ls.swap(other)
		return
	}
	if other.head == nil {
		return
	}

	ls.tail.next = other.head
	other.head.prev = ls.tail
	ls.tail = other.tail
	ls.len += other.len
	ls.mods++

	other.reset()
}

// swap exchanges the nodes of two lists.
func (ls *List[T]) swap(other *List[T]) {
	ls.head, other.head = other.head, ls.head
	ls.tail, other.tail = other.tail, ls.tail
	ls.len, other.len = other.len, ls.len
	ls.mods++
	other.mods++
}

// reset forgets the nodes of ls without releasing them. It must only
// be called once the nodes have been given to a new owner.
func (ls *List[T]) reset() {
	ls.head = nil
	ls.tail = nil
	ls.len = 0
	ls.mods++
}

// Clear removes all of the elements from the list.
func (ls *List[T]) Clear() {
	cur := ls.head
	ls.reset()

	for cur != nil {
		next := cur.next
		cur.release()
		cur = next
	}
}

// Slice returns the elements of the list in order.
func (ls *List[T]) Slice() []T {
	s := make([]T, 0, ls.len)
	for cur := ls.head; cur != nil; cur = cur.next {
		s = append(s, cur.Val)
	}
	return s
}

type node[T any] struct {
	Val        T
	prev, next *node[T]
}

// release unlinks n and returns its value. n must already have been
// removed from its list.
func (n *node[T]) release() T {
	v := n.Val
	*n = node[T]{}
	return v
}
