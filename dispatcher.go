package corekit

// Dispatcher owns an inline-small container of callable holders in
// registration order, literally "a container of callables" fanning an Arg
// out to every registered handler.
//
// Dispatcher does no error recovery: if a handler panics, the remaining
// handlers are not called and the panic propagates, matching Go's natural
// unwind behavior. No ordering guarantee is made beyond registration
// order.
type Dispatcher[Arg any, Result any] struct {
	handlers SmallVector[Func[Arg, Result], [4]Func[Arg, Result]]
}

// NewDispatcher creates an empty Dispatcher. A zero-value Dispatcher is also
// ready to use, matching [SmallVector]'s own zero-value contract -- the
// inline buffer lazily self-initializes on first access.
func NewDispatcher[Arg any, Result any]() *Dispatcher[Arg, Result] {
	return &Dispatcher[Arg, Result]{}
}

// Add appends an already-bound handler.
func (d *Dispatcher[Arg, Result]) Add(handler Func[Arg, Result]) {
	d.handlers.Push(handler)
}

// AddFree binds and appends a free function handler.
func (d *Dispatcher[Arg, Result]) AddFree(fn func(Arg) Result) {
	d.Add(BindFree(fn))
}

// AddMember binds a method value against instance and appends it. Declared
// as a package-level function, not a Dispatcher method, because Go method
// sets cannot carry an additional type parameter (Instance) beyond the
// receiver's own.
func AddMember[Instance any, Arg any, Result any](d *Dispatcher[Arg, Result], instance *Instance, method func(*Instance, Arg) Result) {
	d.Add(BindMember(instance, method))
}

// Count returns the number of registered handlers.
func (d *Dispatcher[Arg, Result]) Count() int { return d.handlers.Len() }

// Clear removes every registered handler, running each one's Close hook.
func (d *Dispatcher[Arg, Result]) Clear() {
	for i := 0; i < d.handlers.Len(); i++ {
		d.handlers.At(i).Close()
	}
	d.handlers.Clear()
}

// Dispatch invokes every handler in registration order with arg, discarding
// return values.
func (d *Dispatcher[Arg, Result]) Dispatch(arg Arg) {
	n := d.handlers.Len()
	for i := 0; i < n; i++ {
		d.handlers.At(i).Call(arg)
	}
}

// DispatchWithCallback invokes every handler in registration order with
// arg, passing each handler's result to callback.
func (d *Dispatcher[Arg, Result]) DispatchWithCallback(arg Arg, callback func(Result)) {
	n := d.handlers.Len()
	for i := 0; i < n; i++ {
		callback(d.handlers.At(i).Call(arg))
	}
}
