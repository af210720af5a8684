package gamemath

// Ring is a closed sequence: indices wrap around in both directions, so the
// element after the last one is the first.
type Ring[T any] []T

// Len returns the number of elements.
func (r Ring[T]) Len() int { return len(r) }

// Index maps any integer onto [0, Len).
func (r Ring[T]) Index(i int) int {
	n := len(r)
	return ((i % n) + n) % n
}

// At returns the element at the wrapped index i.
func (r Ring[T]) At(i int) T { return r[r.Index(i)] }

// Prev returns the element before index i.
func (r Ring[T]) Prev(i int) T { return r.At(i - 1) }

// Next returns the element after index i.
func (r Ring[T]) Next(i int) T { return r.At(i + 1) }
