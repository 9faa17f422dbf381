package corekit

import "reflect"

// vecCore implements the algebra shared by every backend (Vector,
// FlatVector, SmallVector): push/pop/insert/erase/resize/reserve/find, all
// operating on a plain Go slice. Backends differ only in where this triple
// physically lives -- inline in the container (Vector), behind a single
// heap pointer (FlatVector), or inside an array embedded in the container
// until it outgrows that array (SmallVector). Capacity grows geometrically
// via [growCapacity]: at least doubling, never less than what the caller
// requested.
type vecCore[T any] struct {
	data  []T
	alloc Allocator[T]
	// heap reports whether data was obtained from alloc and is therefore
	// safe to hand back to alloc.Free. SmallVector's inline buffer starts
	// life as data without ever calling Alloc, so it must never be freed
	// through the allocator hook; heap stays false until the first real
	// grow replaces data with an allocator-obtained buffer.
	heap bool
}

func (c *vecCore[T]) allocator() Allocator[T] {
	if c.alloc == nil {
		c.alloc = defaultAllocator[T]()
	}
	return c.alloc
}

func (c *vecCore[T]) Len() int { return len(c.data) }
func (c *vecCore[T]) Cap() int { return cap(c.data) }

// At returns a pointer to the element at i. Panics if i is out of range.
func (c *vecCore[T]) At(i int) *T {
	return &c.data[i]
}

// Slice returns the live elements as a Go slice. The slice aliases the
// container's backing storage; it is invalidated by any subsequent
// mutating call.
func (c *vecCore[T]) Slice() []T {
	return c.data
}

// Reserve grows the backing storage to at least n elements if it is not
// already that large. Returns true if it allocated.
func (c *vecCore[T]) Reserve(n int) bool {
	if n <= cap(c.data) {
		return false
	}
	newData := c.allocator().Alloc(n)[:len(c.data)]
	copy(newData, c.data)
	if c.heap {
		c.allocator().Free(c.data)
	}
	c.data = newData
	c.heap = true
	return true
}

// growForExtra ensures room for extra more elements beyond the current
// length, growing geometrically per [growCapacity] when it does not fit.
func (c *vecCore[T]) growForExtra(extra int) {
	needed := len(c.data) + extra
	if needed <= cap(c.data) {
		return
	}
	c.Reserve(growCapacity(cap(c.data), needed))
}

// Push appends v, growing the backing storage first if full, and returns a
// pointer to the newly stored element.
func (c *vecCore[T]) Push(v T) *T {
	c.growForExtra(1)
	c.data = append(c.data, v)
	return &c.data[len(c.data)-1]
}

// Pop destroys and removes the last element. Panics if the container is
// empty.
func (c *vecCore[T]) Pop() {
	if len(c.data) == 0 {
		panic("corekit: Pop on empty container")
	}
	var zero T
	last := len(c.data) - 1
	c.data[last] = zero
	c.data = c.data[:last]
}

// Insert splices items into the container starting at pos, growing first
// if necessary, and returns a pointer to the first inserted element. pos
// may equal Len() to append.
func (c *vecCore[T]) Insert(pos int, items []T) *T {
	n := len(items)
	if n == 0 {
		if pos == len(c.data) {
			return nil
		}
		return &c.data[pos]
	}
	needed := len(c.data) + n
	if needed > cap(c.data) {
		newData := c.allocator().Alloc(growCapacity(cap(c.data), needed))[:needed]
		copy(newData, c.data[:pos])
		copy(newData[pos:], items)
		copy(newData[pos+n:], c.data[pos:])
		if c.heap {
			c.allocator().Free(c.data)
		}
		c.data = newData
		c.heap = true
	} else {
		c.data = c.data[:needed]
		copy(c.data[pos+n:], c.data[pos:needed-n])
		copy(c.data[pos:pos+n], items)
	}
	return &c.data[pos]
}

// InsertCount inserts count copies of value at pos.
func (c *vecCore[T]) InsertCount(pos, count int, value T) *T {
	if count == 0 {
		if pos == len(c.data) {
			return nil
		}
		return &c.data[pos]
	}
	c.makeRoom(pos, count)
	for i := pos; i < pos+count; i++ {
		c.data[i] = value
	}
	return &c.data[pos]
}

// InsertDefault inserts count zero-valued elements at pos.
func (c *vecCore[T]) InsertDefault(pos, count int) *T {
	if count == 0 {
		if pos == len(c.data) {
			return nil
		}
		return &c.data[pos]
	}
	c.makeRoom(pos, count)
	var zero T
	for i := pos; i < pos+count; i++ {
		c.data[i] = zero
	}
	return &c.data[pos]
}

// makeRoom grows (if needed) and shifts the suffix starting at pos right by
// count slots, leaving the gap [pos, pos+count) with unspecified contents
// for the caller to fill.
func (c *vecCore[T]) makeRoom(pos, count int) {
	needed := len(c.data) + count
	if needed > cap(c.data) {
		newData := c.allocator().Alloc(growCapacity(cap(c.data), needed))[:needed]
		copy(newData, c.data[:pos])
		copy(newData[pos+count:], c.data[pos:])
		if c.heap {
			c.allocator().Free(c.data)
		}
		c.data = newData
		c.heap = true
		return
	}
	c.data = c.data[:needed]
	copy(c.data[pos+count:], c.data[pos:needed-count])
}

// Erase removes elements [from, to), shifting the surviving suffix left.
// A no-op when from == to.
func (c *vecCore[T]) Erase(from, to int) {
	n := to - from
	if n <= 0 {
		return
	}
	copy(c.data[from:], c.data[to:])
	var zero T
	newLen := len(c.data) - n
	for i := newLen; i < len(c.data); i++ {
		c.data[i] = zero
	}
	c.data = c.data[:newLen]
}

// Resize replaces the contents with exactly n freshly zero-valued elements.
// This is a full replace, not a shrink/grow that preserves a prefix.
func (c *vecCore[T]) Resize(n int) {
	c.Clear()
	c.Reserve(n)
	c.data = c.data[:n]
	var zero T
	for i := range c.data {
		c.data[i] = zero
	}
}

// ResizeValue replaces the contents with exactly n copies of value.
func (c *vecCore[T]) ResizeValue(n int, value T) {
	c.Clear()
	c.Reserve(n)
	c.data = c.data[:n]
	for i := range c.data {
		c.data[i] = value
	}
}

// Clear destroys every element; Len becomes 0, Cap is unchanged.
func (c *vecCore[T]) Clear() {
	var zero T
	for i := range c.data {
		c.data[i] = zero
	}
	c.data = c.data[:0]
}

// Release clears the container and frees its storage; Cap becomes 0.
func (c *vecCore[T]) Release() {
	c.Clear()
	if c.heap {
		c.allocator().Free(c.data)
	}
	c.data = nil
	c.heap = false
}

// FindFunc returns the index of the first element satisfying pred, or -1.
func (c *vecCore[T]) FindFunc(pred func(T) bool) int {
	for i := range c.data {
		if pred(c.data[i]) {
			return i
		}
	}
	return -1
}

// Find returns the index of the first element deep-equal to value, or -1.
// Deep equality (rather than a comparable constraint) is used so that the
// same backend can hold non-comparable T, e.g. closures held by
// [Dispatcher].
func (c *vecCore[T]) Find(value T) int {
	return c.FindFunc(func(v T) bool { return reflect.DeepEqual(v, value) })
}

// Equal reports whether c and other hold the same elements in the same
// order, compared with reflect.DeepEqual.
func (c *vecCore[T]) Equal(other *vecCore[T]) bool {
	if len(c.data) != len(other.data) {
		return false
	}
	for i := range c.data {
		if !reflect.DeepEqual(c.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Vector is the inline backend: the (data, size, capacity) triple lives
// directly in the struct as a Go slice header.
type Vector[T any] struct {
	core vecCore[T]
}

// NewVector creates an empty Vector with the given initial capacity.
func NewVector[T any](capacity int) *Vector[T] {
	v := &Vector[T]{}
	if capacity > 0 {
		v.core.Reserve(capacity)
	}
	return v
}

// NewVectorWithAllocator creates an empty Vector using a custom [Allocator].
func NewVectorWithAllocator[T any](alloc Allocator[T]) *Vector[T] {
	return &Vector[T]{core: vecCore[T]{alloc: alloc}}
}

func (v *Vector[T]) Len() int                     { return v.core.Len() }
func (v *Vector[T]) Cap() int                     { return v.core.Cap() }
func (v *Vector[T]) At(i int) *T                  { return v.core.At(i) }
func (v *Vector[T]) Slice() []T                   { return v.core.Slice() }
func (v *Vector[T]) Reserve(n int) bool           { return v.core.Reserve(n) }
func (v *Vector[T]) Push(val T) *T                { return v.core.Push(val) }
func (v *Vector[T]) Pop()                         { v.core.Pop() }
func (v *Vector[T]) Insert(pos int, items []T) *T { return v.core.Insert(pos, items) }
func (v *Vector[T]) InsertCount(pos, count int, value T) *T {
	return v.core.InsertCount(pos, count, value)
}
func (v *Vector[T]) InsertDefault(pos, count int) *T { return v.core.InsertDefault(pos, count) }
func (v *Vector[T]) Erase(from, to int)              { v.core.Erase(from, to) }
func (v *Vector[T]) Resize(n int)                    { v.core.Resize(n) }
func (v *Vector[T]) ResizeValue(n int, value T)       { v.core.ResizeValue(n, value) }
func (v *Vector[T]) Clear()                          { v.core.Clear() }
func (v *Vector[T]) Release()                        { v.core.Release() }
func (v *Vector[T]) Find(value T) int                { return v.core.Find(value) }
func (v *Vector[T]) FindFunc(pred func(T) bool) int  { return v.core.FindFunc(pred) }
func (v *Vector[T]) Equal(other *Vector[T]) bool     { return v.core.Equal(&other.core) }
