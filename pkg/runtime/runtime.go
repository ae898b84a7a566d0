// Package runtime provides the process-wide state and factory entry points
// described in spec.md §4.7 and §6: a Runtime holds the symbol counter and
// mediates object/string/function/property-descriptor creation. Heap
// reclamation is delegated entirely to the Go garbage collector — the
// managed allocator spec.md treats as an external collaborator — so Free
// only tears down Runtime-owned bookkeeping, per spec.md §4.7's lifecycle
// note ("freeing it releases runtime-owned bookkeeping but does not
// necessarily free objects").
package runtime

import (
	"djs/pkg/object"
)

// Runtime is process-wide state: the monotonic symbol counter and nothing
// else, since this kernel's heap management is simply "let Go's collector
// reclaim unreachable objects" (spec.md §9, option (a)/(b) collapsed: no
// manual bookkeeping is needed once cycles are handled by a tracing GC).
// It is NOT safe to share a Runtime across goroutines without external
// synchronization (spec.md §5) — there is no internal locking.
type Runtime struct {
	nextSymbolID uint64
	freed        bool
}

// New allocates and initializes a Runtime. Initialization is a no-op
// beyond zeroing the counter, since the only "heap" this kernel manages is
// Go's own GC heap.
func New() *Runtime {
	return &Runtime{}
}

// Free releases Runtime-owned bookkeeping. It does not, and cannot,
// force-collect live objects — those remain reachable for as long as a
// caller holds a Value or Object referencing them, exactly as spec.md
// §4.7 describes. Calling any other method after Free panics.
func (r *Runtime) Free() {
	r.freed = true
}

func (r *Runtime) checkLive() {
	if r.freed {
		panic("runtime: use of Runtime after Free")
	}
}

// NewSymbol mints a fresh symbol using the runtime's monotonic counter.
// Per spec.md §3/§9, the counter is only single-thread-safe as-is; making
// it concurrency-safe would mean switching nextSymbolID to atomic
// operations, not changing its semantics.
func (r *Runtime) NewSymbol() object.Value {
	r.checkLive()
	r.nextSymbolID++
	return object.FromSymbol(object.NewSymbolValue(r.nextSymbolID))
}

// NewString allocates a new immutable string.
func (r *Runtime) NewString(s string) object.Value {
	r.checkLive()
	return object.NewString(s)
}

// NewObject creates a fresh, extensible plain object whose prototype is
// proto (Null if proto is not an object).
func (r *Runtime) NewObject(proto object.Value) object.Value {
	r.checkLive()
	return object.FromObject(object.NewPlainObject(proto))
}

// NewArray creates a fresh, empty array object.
func (r *Runtime) NewArray(proto object.Value) object.Value {
	r.checkLive()
	return object.FromObject(object.NewArrayObject(proto))
}

// NewFunction creates a Function object wrapping a host callable.
func (r *Runtime) NewFunction(proto object.Value, name string, callable object.HostCallable) object.Value {
	r.checkLive()
	return object.FromObject(object.NewFunctionObject(proto, name, callable))
}

// NewDataProperty creates a data PropertyDescriptor with the default
// writable/enumerable/configurable = true flags.
func (r *Runtime) NewDataProperty(value object.Value) *object.PropertyDescriptor {
	r.checkLive()
	return object.NewDataPropertyDescriptor(value)
}

// NewAccessorProperty creates an accessor PropertyDescriptor; get/set may
// each be object.Undefined for "no getter"/"no setter".
func (r *Runtime) NewAccessorProperty(get, set object.Value) *object.PropertyDescriptor {
	r.checkLive()
	return object.NewAccessorPropertyDescriptor(get, set)
}
