package rmlist

import "fmt"

// Equal reports whether a and b have the same length and contain
// equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but uses eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	ai, bi := a.Iter(), b.Iter()
	for {
		x, ok := ai.Next()
		if !ok {
			return true
		}
		y, _ := bi.Next()
		if !eq(x, y) {
			return false
		}
	}
}

// Clone returns a new list containing the same elements as ls in the
// same order. The elements themselves are copied by assignment.
func (ls *List[T]) Clone() *List[T] {
	return ls.CloneFunc(func(v T) T { return v })
}

// CloneFunc is like Clone but copies each element by calling clone on
// it.
func (ls *List[T]) CloneFunc(clone func(T) T) *List[T] {
	var c List[T]
	for v := range ls.Backward() {
		c.PushFront(clone(v))
	}
	return &c
}

// Format implements fmt.Formatter. The list is formatted the same way
// as a slice of its elements would be.
func (ls *List[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), ls.Slice())
}

func (ls *List[T]) String() string {
	return fmt.Sprint(ls.Slice())
}
