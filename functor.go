package corekit

// TrivialFunc is the trivial variant of the opaque callable holder: State
// is stored by value directly in the struct. Go's value semantics give
// this "inline, unconditionally copyable, never independently heap-managed"
// for free -- the direct analogue of the original's trivially-copyable
// inline-cache payload. Use TrivialFunc when a callable must be stored by
// value inside a container (e.g. a [SmallVector] of handlers), since it
// never needs a destructor.
//
// Invariant: invoke == nil iff the holder is unbound.
type TrivialFunc[State any, Arg any, Result any] struct {
	state  State
	invoke func(state *State, arg Arg) Result
}

// NewTrivialFunc binds state and invoke into a TrivialFunc.
func NewTrivialFunc[State any, Arg any, Result any](state State, invoke func(state *State, arg Arg) Result) TrivialFunc[State, Arg, Result] {
	return TrivialFunc[State, Arg, Result]{state: state, invoke: invoke}
}

// Bound reports whether the holder has been bound to a callable.
func (f *TrivialFunc[State, Arg, Result]) Bound() bool { return f.invoke != nil }

// Call invokes the bound callable with arg. Panics if unbound.
func (f *TrivialFunc[State, Arg, Result]) Call(arg Arg) Result {
	if f.invoke == nil {
		panic("corekit: Call on unbound TrivialFunc")
	}
	return f.invoke(&f.state, arg)
}

// Func is the full opaque callable holder variant: an arbitrary closure
// plus an optional destroy hook for payloads that own non-GC resources
// (file descriptors, external handles -- the Go analogue of "destructor
// needed"). Unlike TrivialFunc, Func is not meant to be copied; a copy
// sharing the same destroy hook would run it twice.
//
// Invariants: invoke == nil iff unbound; destroy == nil implies the
// payload needs no destruction.
type Func[Arg any, Result any] struct {
	invoke  func(Arg) Result
	destroy func()
}

// Bound reports whether the holder has been bound to a callable.
func (f *Func[Arg, Result]) Bound() bool { return f.invoke != nil }

// Call invokes the bound callable with arg. Panics if unbound.
func (f *Func[Arg, Result]) Call(arg Arg) Result {
	if f.invoke == nil {
		panic("corekit: Call on unbound Func")
	}
	return f.invoke(arg)
}

// Close runs the destroy hook, if any, and unbinds the holder. Calling
// Close more than once is a no-op.
func (f *Func[Arg, Result]) Close() {
	if f.destroy != nil {
		f.destroy()
		f.destroy = nil
	}
	f.invoke = nil
}

// MoveFrom transfers src's invoke/destroy pair into f and unbinds src,
// the Go analogue of the original's move-construct/move-assign: a plain
// Go `=` copy would leave src still bound (and, for a destroy hook, able
// to run it a second time), so moving must go through this method
// instead of struct assignment whenever src's binding should not outlive
// the transfer.
func (f *Func[Arg, Result]) MoveFrom(src *Func[Arg, Result]) {
	f.invoke = src.invoke
	f.destroy = src.destroy
	src.invoke = nil
	src.destroy = nil
}

// BindFree binds a free function. No destructor is needed.
func BindFree[Arg any, Result any](fn func(Arg) Result) Func[Arg, Result] {
	return Func[Arg, Result]{invoke: fn}
}

// BindMember binds a method value against instance. Only instance is
// captured; no destructor is needed since Func does not own instance.
func BindMember[Instance any, Arg any, Result any](instance *Instance, method func(*Instance, Arg) Result) Func[Arg, Result] {
	return Func[Arg, Result]{invoke: func(arg Arg) Result { return method(instance, arg) }}
}

// BindWithDeleter binds call against resource, with deleter run by Close to
// release resource. This is the analogue of the original's
// bindWithDeleter: the caller supplies the owned resource and the function
// that releases it.
func BindWithDeleter[Resource any, Arg any, Result any](resource *Resource, call func(*Resource, Arg) Result, deleter func(*Resource)) Func[Arg, Result] {
	return Func[Arg, Result]{
		invoke:  func(arg Arg) Result { return call(resource, arg) },
		destroy: func() { deleter(resource) },
	}
}
