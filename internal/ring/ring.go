// Package ring is a growable circular buffer used as the order queue of ordhash.
package ring

import (
	"iter"
	"math"
)

// A Buffer is a FIFO queue backed by a circular slice.
// Elements are appended at the back and removed from the front.
// The zero value for a Buffer is an empty buffer ready to use.
type Buffer[T any] struct {
	elements   []T
	head, size int
}

const minimumCapacity = 8

// MaximumCapacity is the largest number of elements
// a Buffer can hold (the largest power of two an int can hold).
const MaximumCapacity = math.MaxInt/2 + 1

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return b.size }

// PushBack appends value to the back of the buffer.
func (b *Buffer[T]) PushBack(value T) {
	if b.size == len(b.elements) {
		b.Grow(1)
	}
	b.elements[b.index(b.size)] = value
	b.size++
}

// PopFront removes and returns the front element.
// If the buffer is empty, it returns the zero value and false.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	value := b.elements[b.head]
	b.elements[b.head] = zero // Release references held by the slot.
	b.head = b.index(1)
	if b.size--; b.size == 0 {
		b.head = 0
	}
	return value, true
}

// Grow ensures the buffer can hold n more elements
// without another allocation.
// If the resulting capacity cannot be represented, Grow panics.
func (b *Buffer[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if n > MaximumCapacity-b.size {
		panic("ring: capacity overflow")
	}
	need := b.size + n
	if need <= len(b.elements) {
		return
	}
	capacity := max(len(b.elements)*2, minimumCapacity)
	for capacity < need {
		capacity *= 2
	}
	b.resize(capacity)
}

// All returns an iterator over the elements from front to back.
// The behavior of All is undefined if the buffer is modified during iteration.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range b.size {
			if !yield(b.elements[b.index(i)]) {
				return
			}
		}
	}
}

// index maps a logical offset from head to a slice index.
// Capacity is always a power of two.
func (b *Buffer[T]) index(offset int) int {
	return (b.head + offset) & (len(b.elements) - 1)
}

func (b *Buffer[T]) resize(capacity int) {
	elements := make([]T, capacity)
	if b.size > 0 {
		// Copy the wrapped halves in order.
		tail := min(b.size, len(b.elements)-b.head)
		copy(elements, b.elements[b.head:b.head+tail])
		copy(elements[tail:], b.elements[:b.size-tail])
	}
	b.elements = elements
	b.head = 0
}
