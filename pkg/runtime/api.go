package runtime

import "djs/pkg/object"

// The functions below are the Go-idiomatic counterparts of the C-callable
// API spec.md §6 names (object_get, object_set, ...): they take the
// receiver object explicitly rather than threading a Runtime through,
// since none of the meta-object operations need process-wide state — only
// the factories in runtime.go do.

// ObjectGet dispatches [[Get]].
func ObjectGet(o object.Object, key object.PropertyKey, receiver object.Value) object.Completion {
	return o.Get(key, receiver)
}

// ObjectSet dispatches [[Set]].
func ObjectSet(o object.Object, key object.PropertyKey, v object.Value, receiver object.Value) object.Completion {
	return o.Set(key, v, receiver)
}

// ObjectDefineOwnProperty dispatches [[DefineOwnProperty]].
func ObjectDefineOwnProperty(o object.Object, key object.PropertyKey, desc *object.PropertyDescriptor) object.Completion {
	return o.DefineOwnProperty(key, desc)
}

// ObjectGetOwnProperty dispatches [[GetOwnProperty]].
func ObjectGetOwnProperty(o object.Object, key object.PropertyKey) object.Completion {
	return o.GetOwnProperty(key)
}

// ObjectHasOwnProperty is object_has_own_property: true iff GetOwnProperty
// normally yields a descriptor (not Undefined, and not abrupt).
func ObjectHasOwnProperty(o object.Object, key object.PropertyKey) bool {
	c := o.GetOwnProperty(key)
	return c.IsNormal() && !c.Value.IsUndefined()
}

// ObjectIsExtensible dispatches [[IsExtensible]].
func ObjectIsExtensible(o object.Object) object.Completion {
	return o.IsExtensible()
}

// ObjectGetPrototypeOf dispatches [[GetPrototypeOf]].
func ObjectGetPrototypeOf(o object.Object) object.Completion {
	return o.GetPrototypeOf()
}

// ObjectSetPrototypeOf dispatches [[SetPrototypeOf]].
func ObjectSetPrototypeOf(o object.Object, proto object.Value) object.Completion {
	return o.SetPrototypeOf(proto)
}

// Call dispatches [[Call]].
func Call(o object.Object, this object.Value, args []object.Value) object.Completion {
	return o.Call(this, args)
}

// IsStrictlyEqual is is_strictly_equal.
func IsStrictlyEqual(a, b object.Value) bool {
	return a.StrictEquals(b)
}
