package corekit

import "unsafe"

// SmallVector is the small-buffer-optimized backend: an inline array of
// type Buf (e.g. [4]T) supplies storage until the container grows past it,
// at which point it behaves like [Vector] and addresses a heap buffer.
//
// Buf's inline capacity N is derived from its size relative to T via
// unsafe.Sizeof -- the idiomatic Go substitute for the original's
// non-type template parameter, since Go generics has no const generics.
// Buf must be an array of T (e.g. [8]T); any other shape either wastes
// space or, if smaller than one T, yields zero inline capacity.
//
// Like [strings.Builder], a SmallVector holds an internal pointer to its
// own inline buffer and must not be copied after first use; doing so
// panics.
type SmallVector[T any, Buf any] struct {
	addr *SmallVector[T, Buf]
	buf  Buf
	core vecCore[T]
}

// NewSmallVector creates an empty SmallVector ready for use.
func NewSmallVector[T any, Buf any]() *SmallVector[T, Buf] {
	sv := &SmallVector[T, Buf]{}
	sv.init()
	return sv
}

// NewSmallVectorWithAllocator creates an empty SmallVector using a custom
// [Allocator] for the overflow (heap) path.
func NewSmallVectorWithAllocator[T any, Buf any](alloc Allocator[T]) *SmallVector[T, Buf] {
	sv := &SmallVector[T, Buf]{core: vecCore[T]{alloc: alloc}}
	sv.init()
	return sv
}

// InlineCap returns N, the number of elements the inline buffer holds
// before SmallVector spills to the heap.
func (sv *SmallVector[T, Buf]) InlineCap() int {
	var zeroBuf Buf
	var zeroT T
	tSize := unsafe.Sizeof(zeroT)
	if tSize == 0 {
		return 0
	}
	return int(unsafe.Sizeof(zeroBuf) / tSize)
}

func (sv *SmallVector[T, Buf]) inlineSlice() []T {
	n := sv.InlineCap()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&sv.buf)), n)[:0]
}

func (sv *SmallVector[T, Buf]) init() {
	if sv.addr == nil {
		sv.addr = sv
	} else if sv.addr != sv {
		panic("corekit: SmallVector copied by value after first use; always pass by pointer")
	}
	if sv.core.data == nil {
		sv.core.data = sv.inlineSlice()
	}
}

func (sv *SmallVector[T, Buf]) Len() int { sv.init(); return sv.core.Len() }
func (sv *SmallVector[T, Buf]) Cap() int { sv.init(); return sv.core.Cap() }
func (sv *SmallVector[T, Buf]) At(i int) *T {
	sv.init()
	return sv.core.At(i)
}
func (sv *SmallVector[T, Buf]) Slice() []T {
	sv.init()
	return sv.core.Slice()
}
func (sv *SmallVector[T, Buf]) Reserve(n int) bool {
	sv.init()
	return sv.core.Reserve(n)
}
func (sv *SmallVector[T, Buf]) Push(val T) *T {
	sv.init()
	return sv.core.Push(val)
}
func (sv *SmallVector[T, Buf]) Pop() {
	sv.init()
	sv.core.Pop()
}
func (sv *SmallVector[T, Buf]) Insert(pos int, items []T) *T {
	sv.init()
	return sv.core.Insert(pos, items)
}
func (sv *SmallVector[T, Buf]) InsertCount(pos, count int, value T) *T {
	sv.init()
	return sv.core.InsertCount(pos, count, value)
}
func (sv *SmallVector[T, Buf]) InsertDefault(pos, count int) *T {
	sv.init()
	return sv.core.InsertDefault(pos, count)
}
func (sv *SmallVector[T, Buf]) Erase(from, to int) {
	sv.init()
	sv.core.Erase(from, to)
}
func (sv *SmallVector[T, Buf]) Resize(n int) {
	sv.init()
	sv.core.Resize(n)
}
func (sv *SmallVector[T, Buf]) ResizeValue(n int, value T) {
	sv.init()
	sv.core.ResizeValue(n, value)
}
func (sv *SmallVector[T, Buf]) Clear() {
	sv.init()
	sv.core.Clear()
}

// Release clears the container and, if it had spilled to the heap, frees
// that storage and returns to addressing the inline buffer.
func (sv *SmallVector[T, Buf]) Release() {
	sv.init()
	sv.core.Release()
	sv.core.data = sv.inlineSlice()
}
func (sv *SmallVector[T, Buf]) Find(value T) int {
	sv.init()
	return sv.core.Find(value)
}
func (sv *SmallVector[T, Buf]) FindFunc(pred func(T) bool) int {
	sv.init()
	return sv.core.FindFunc(pred)
}
func (sv *SmallVector[T, Buf]) Equal(other *SmallVector[T, Buf]) bool {
	sv.init()
	other.init()
	return sv.core.Equal(&other.core)
}
