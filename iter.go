package rmlist

import (
	"errors"
	"fmt"
	"iter"
)

// ErrModified is the value, wrapped, that a borrowing iterator panics
// with if it is advanced after the list it came from was modified.
var ErrModified = errors.New("list modified during iteration")

// window is the part of a list that a borrowing iterator has not yet
// yielded. It shrinks from both ends and is empty once len reaches
// zero, whatever the links of head and tail say.
type window[T any] struct {
	list       *List[T]
	mods       uint64
	head, tail *node[T]
	len        int
}

func newWindow[T any](ls *List[T]) window[T] {
	return window[T]{
		list: ls,
		mods: ls.mods,
		head: ls.head,
		tail: ls.tail,
		len:  ls.len,
	}
}

func (w *window[T]) check() {
	if w.list.mods != w.mods {
		panic(fmt.Errorf("rmlist: %w", ErrModified))
	}
}

func (w *window[T]) front() *node[T] {
	w.check()
	if w.len == 0 {
		return nil
	}

	n := w.head
	w.head = n.next
	w.len--
	return n
}

func (w *window[T]) back() *node[T] {
	w.check()
	if w.len == 0 {
		return nil
	}

	n := w.tail
	w.tail = n.prev
	w.len--
	return n
}

// Iter is a read-only iterator over a [List]. It yields elements from
// either end until the two ends meet.
//
// An Iter borrows its list. If the list is modified in any way after
// the Iter is created, the next call to Next or NextBack will panic
// with an error wrapping [ErrModified].
type Iter[T any] struct {
	w window[T]
}

// Iter returns an iterator over the elements of ls.
func (ls *List[T]) Iter() *Iter[T] {
	return &Iter[T]{w: newWindow(ls)}
}

// Next returns the next element from the front of the iterator. It
// returns false if the iterator is exhausted.
func (it *Iter[T]) Next() (v T, ok bool) {
	n := it.w.front()
	if n == nil {
		return v, false
	}
	return n.Val, true
}

// NextBack returns the next element from the back of the iterator. It
// returns false if the iterator is exhausted.
func (it *Iter[T]) NextBack() (v T, ok bool) {
	n := it.w.back()
	if n == nil {
		return v, false
	}
	return n.Val, true
}

// Len returns the exact number of elements the iterator has left.
func (it *Iter[T]) Len() int {
	return it.w.len
}

// Clone returns an independent iterator at the same position as it.
func (it *Iter[T]) Clone() *Iter[T] {
	c := *it
	return &c
}

func (it *Iter[T]) String() string {
	return fmt.Sprintf("Iter(%v)", it.w.len)
}

// IterMut is like [Iter] but yields pointers to the elements so that
// they can be modified in place. It can not add or remove elements.
type IterMut[T any] struct {
	w window[T]
}

// IterMut returns an iterator over pointers to the elements of ls.
func (ls *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{w: newWindow(ls)}
}

// Next returns a pointer to the next element from the front of the
// iterator, or nil if the iterator is exhausted.
func (it *IterMut[T]) Next() *T {
	n := it.w.front()
	if n == nil {
		return nil
	}
	return &n.Val
}

// NextBack returns a pointer to the next element from the back of the
// iterator, or nil if the iterator is exhausted.
func (it *IterMut[T]) NextBack() *T {
	n := it.w.back()
	if n == nil {
		return nil
	}
	return &n.Val
}

// Len returns the exact number of elements the iterator has left.
func (it *IterMut[T]) Len() int {
	return it.w.len
}

func (it *IterMut[T]) String() string {
	return fmt.Sprintf("IterMut(%v, %v)", it.w.list, it.w.len)
}

// All returns an iterator over the elements of the list from front to
// back. The list must not be modified during iteration.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := ls.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from
// back to front. The list must not be modified during iteration.
func (ls *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := ls.Iter()
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the elements of the
// list from front to back. Elements may be modified through the
// pointers but the list itself must not be modified during iteration.
func (ls *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := ls.IterMut()
		for p := it.Next(); p != nil; p = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
