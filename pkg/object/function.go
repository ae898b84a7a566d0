package object

// HostCallable is the Go shape of the host-provided callable a Function
// wraps, per spec.md §4.5. The source's signature threads an explicit
// Runtime reference through every call; here a host callable is an
// ordinary Go closure, so it captures whatever state it needs (including
// a *runtime.Runtime, when one exists) instead of receiving it as a
// parameter — the idiomatic replacement for that threading.
type HostCallable func(this Value, args []Value) Completion

// FunctionObject is an Object wrapping a host-provided callable, per
// spec.md §4.5. All meta-ops except Call are Ordinary (inherited via the
// embedded PlainObject); Call invokes the stored callable.
type FunctionObject struct {
	PlainObject
	name     string
	callable HostCallable
}

// NewFunctionObject builds a Function around a host callable. A nil
// callable produces a non-callable Function object (Call abruptly throws,
// same as any other ordinary object). The callable is fixed at
// construction; FunctionObject has no method to set it later.
func NewFunctionObject(proto Value, name string, callable HostCallable) *FunctionObject {
	return &FunctionObject{
		PlainObject: *NewPlainObject(proto),
		name:        name,
		callable:    callable,
	}
}

// Name returns the function's (possibly empty) diagnostic name.
func (f *FunctionObject) Name() string { return f.name }

// Call implements spec.md §4.3's Call contract for Function objects:
// delegate to the stored host callable, or abruptly throw a TypeError if
// none was provided.
func (f *FunctionObject) Call(this Value, args []Value) Completion {
	if f.callable == nil {
		return AbruptCompletion(TypeErrorValue("Object is not callable"))
	}
	return f.callable(this, args)
}
