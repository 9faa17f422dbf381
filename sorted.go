package corekit

import "sort"

// Backend is the minimal surface [Sorted] needs from an underlying
// container. Vector, FlatVector, and SmallVector all satisfy it.
type Backend[T any] interface {
	Len() int
	At(i int) *T
	Slice() []T
	Insert(pos int, items []T) *T
	Erase(from, to int)
}

// Sorted wraps a backend B and keeps it in ascending order (per less) after
// every mutating call, trading O(n) insertion for O(log n) lookup via
// binary search. InsertAt deliberately bypasses the order invariant.
type Sorted[T any, B Backend[T]] struct {
	backend B
	less    func(a, b T) bool
}

// NewSorted wraps an already-constructed backend with the given strict
// weak order.
func NewSorted[T any, B Backend[T]](less func(a, b T) bool, backend B) *Sorted[T, B] {
	return &Sorted[T, B]{backend: backend, less: less}
}

func (s *Sorted[T, B]) Len() int   { return s.backend.Len() }
func (s *Sorted[T, B]) At(i int) *T { return s.backend.At(i) }
func (s *Sorted[T, B]) Slice() []T { return s.backend.Slice() }

// lowerBound returns the first index i such that !less(at(i), x), i.e. the
// position x would occupy to keep the sequence ascending.
func (s *Sorted[T, B]) lowerBound(x T) int {
	return sort.Search(s.backend.Len(), func(i int) bool {
		return !s.less(*s.backend.At(i), x)
	})
}

// Push inserts x at its sorted position.
func (s *Sorted[T, B]) Push(x T) int {
	pos := s.lowerBound(x)
	s.backend.Insert(pos, []T{x})
	return pos
}

// InsertRange appends items then sorts the whole container in one pass
// (not required to be stable).
func (s *Sorted[T, B]) InsertRange(items []T) {
	s.backend.Insert(s.backend.Len(), items)
	full := s.backend.Slice()
	sort.Slice(full, func(i, j int) bool { return s.less(full[i], full[j]) })
}

// InsertAt inserts x at pos without checking or restoring sort order; the
// caller is responsible for the invariant afterward.
func (s *Sorted[T, B]) InsertAt(pos int, x T) {
	s.backend.Insert(pos, []T{x})
}

// Search returns the position x would occupy and whether an equal element
// (neither less than nor greater than x) already exists there.
func (s *Sorted[T, B]) Search(x T) (pos int, found bool) {
	pos = s.lowerBound(x)
	found = pos < s.backend.Len() && !s.less(x, *s.backend.At(pos))
	return pos, found
}

// Assign overwrites the element at index with value. If value violates
// order with either neighbor, the element is re-placed at its correct
// sorted position and Assign returns the new index; otherwise it returns
// index unchanged.
func (s *Sorted[T, B]) Assign(index int, value T) int {
	*s.backend.At(index) = value

	leftOK := index == 0 || !s.less(value, *s.backend.At(index-1))
	rightOK := index == s.backend.Len()-1 || !s.less(*s.backend.At(index+1), value)
	if leftOK && rightOK {
		return index
	}

	s.backend.Erase(index, index+1)
	return s.Push(value)
}

// SortedVector is a [Sorted] overlay over the inline [Vector] backend.
type SortedVector[T any] = Sorted[T, *Vector[T]]

// NewSortedVector creates an empty SortedVector ordered by less.
func NewSortedVector[T any](less func(a, b T) bool) *SortedVector[T] {
	return NewSorted[T, *Vector[T]](less, NewVector[T](0))
}

// SortedFlatVector is a [Sorted] overlay over the [FlatVector] backend.
type SortedFlatVector[T any] = Sorted[T, *FlatVector[T]]

// NewSortedFlatVector creates an empty SortedFlatVector ordered by less.
func NewSortedFlatVector[T any](less func(a, b T) bool) *SortedFlatVector[T] {
	return NewSorted[T, *FlatVector[T]](less, NewFlatVector[T](0))
}

// SortedSmallVector is a [Sorted] overlay over the [SmallVector] backend.
type SortedSmallVector[T any, Buf any] = Sorted[T, *SmallVector[T, Buf]]

// NewSortedSmallVector creates an empty SortedSmallVector ordered by less.
func NewSortedSmallVector[T any, Buf any](less func(a, b T) bool) *SortedSmallVector[T, Buf] {
	return NewSorted[T, *SmallVector[T, Buf]](less, NewSmallVector[T, Buf]())
}
