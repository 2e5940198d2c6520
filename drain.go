package rmlist

import (
	"fmt"
	"iter"
)

// Drain is a consuming iterator. It owns the elements that were in
// the list it was created from and removes each one as it is yielded.
type Drain[T any] struct {
	list List[T]
}

// Drain moves all of the elements of ls into a new consuming iterator,
// leaving ls empty.
func (ls *List[T]) Drain() *Drain[T] {
	var d Drain[T]
	d.list.Append(ls)
	return &d
}

// Next removes and returns the element at the front of the iterator.
// It returns false if there are no elements left.
func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack removes and returns the element at the back of the
// iterator. It returns false if there are no elements left.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

// Len returns the exact number of elements left in the iterator.
func (d *Drain[T]) Len() int {
	return d.list.Len()
}

// All returns an iterator that yields and removes elements from the
// front of d.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator that yields and removes elements from
// the back of d.
func (d *Drain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := d.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (d *Drain[T]) String() string {
	return fmt.Sprintf("Drain(%v)", &d.list)
}
