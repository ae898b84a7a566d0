package object

// Object is the meta-object protocol described in spec.md §4.3: the eight
// operations every object kind dispatches through. Concrete kinds embed
// PlainObject to inherit the Ordinary default and override only the
// operations they specialize (Function overrides Call; a future Array
// specialization would override Get/DefineOwnProperty for integer keys).
// This is the "trait/interface form" spec.md §9 recommends over the
// source's function-pointer vtable.
type Object interface {
	GetOwnProperty(key PropertyKey) Completion
	DefineOwnProperty(key PropertyKey, desc *PropertyDescriptor) Completion
	IsExtensible() Completion
	GetPrototypeOf() Completion
	SetPrototypeOf(proto Value) Completion
	Get(key PropertyKey, receiver Value) Completion
	Set(key PropertyKey, v Value, receiver Value) Completion
	Call(this Value, args []Value) Completion

	// base exposes the embedded PlainObject's address. It is unexported so
	// only this package can use it, and it exists solely to give identity
	// comparisons (the [[SetPrototypeOf]] cycle check) a stable pointer to
	// compare against regardless of which concrete kind wraps it — Go's
	// interface equality compares (concrete type, pointer) pairs, so two
	// different wrapper types around "the same" embedded PlainObject would
	// otherwise never compare equal.
	base() *PlainObject
}

// propEntry is one (key, descriptor) slot in a PlainObject's property list.
type propEntry struct {
	key  PropertyKey
	desc *PropertyDescriptor
}

// PlainObject is the Object described in spec.md §3: a prototype link, an
// extensibility flag, and an ordered property list, plus the Ordinary
// implementations of the meta-object protocol. Function, Array and
// PropertyDescriptor all embed PlainObject to extend it "by prefix".
type PlainObject struct {
	prototype  Value
	extensible bool
	props      []propEntry
}

// NewPlainObject creates a fresh, extensible object with the given
// prototype (Null if proto is not an Object-kind Value).
func NewPlainObject(proto Value) *PlainObject {
	p := proto
	if !p.IsObject() && !p.IsNull() {
		p = Null
	}
	return &PlainObject{prototype: p, extensible: true}
}

func (o *PlainObject) base() *PlainObject { return o }

func (o *PlainObject) indexOf(key PropertyKey) int {
	for i, e := range o.props {
		if e.key.Equals(key) {
			return i
		}
	}
	return -1
}

// GetOwnProperty implements OrdinaryGetOwnProperty: a linear scan of the
// property list, returning Undefined or the descriptor-object reference.
func (o *PlainObject) GetOwnProperty(key PropertyKey) Completion {
	if i := o.indexOf(key); i >= 0 {
		return Normal(FromObject(o.props[i].desc))
	}
	return Normal(Undefined)
}

// HasOwn reports whether o has an own property named key, without
// allocating a Completion. It is a convenience for callers holding a
// *PlainObject; the meta-object operations in this file and the runtime's
// ObjectHasOwnProperty go through indexOf or GetOwnProperty instead.
func (o *PlainObject) HasOwn(key PropertyKey) bool {
	return o.indexOf(key) >= 0
}

// DefineOwnProperty implements the ValidateAndApply algorithm of
// spec.md §4.3: insert a snapshot copy of desc if no own entry exists (new
// entries prepend, per the Object invariant in spec.md §3); otherwise
// validate the change against the current entry's configurability and
// apply it in place. Non-configurable redefinition and data/accessor
// transitions — left unimplemented upstream (spec.md §9) — are resolved
// here via the standard ValidateAndApplyPropertyDescriptor rules; see
// DESIGN.md.
func (o *PlainObject) DefineOwnProperty(key PropertyKey, desc *PropertyDescriptor) Completion {
	if i := o.indexOf(key); i >= 0 {
		if validateAndApply(o.props[i].desc, desc) {
			return NormalTrue()
		}
		return NormalFalse()
	}
	if !o.extensible {
		return NormalFalse()
	}
	entry := propEntry{key: key, desc: desc.clone()}
	o.props = append([]propEntry{entry}, o.props...)
	return NormalTrue()
}

// IsExtensible implements OrdinaryIsExtensible.
func (o *PlainObject) IsExtensible() Completion {
	return Normal(Boolean(o.extensible))
}

// SetExtensible clears (or, less commonly, sets) the extensible flag. Not
// part of the public meta-object protocol; used by Runtime and tests to
// construct non-extensible fixtures.
func (o *PlainObject) SetExtensible(extensible bool) { o.extensible = extensible }

// GetPrototypeOf implements OrdinaryGetPrototypeOf.
func (o *PlainObject) GetPrototypeOf() Completion {
	return Normal(o.prototype)
}

// SetPrototypeOf implements OrdinarySetPrototypeOf exactly per spec.md
// §4.3: a no-op success if V is already the current prototype, a failure
// if O is not extensible, a failure if V's chain would cycle back to O,
// and otherwise the reassignment.
func (o *PlainObject) SetPrototypeOf(v Value) Completion {
	if v.StrictEquals(o.prototype) {
		return NormalTrue()
	}
	if !o.extensible {
		return NormalFalse()
	}
	p := v
	for {
		if !p.IsObject() {
			break
		}
		if p.AsObject().base() == o {
			return NormalFalse()
		}
		protoC := p.AsObject().GetPrototypeOf()
		if protoC.IsAbrupt() {
			return protoC
		}
		p = protoC.Value
	}
	o.prototype = v
	return NormalTrue()
}

// Get implements OrdinaryGet: walk the prototype chain for key, invoking
// the getter of an accessor descriptor with receiver as `this`.
func (o *PlainObject) Get(key PropertyKey, receiver Value) Completion {
	descC := o.GetOwnProperty(key)
	if descC.IsAbrupt() {
		return descC
	}
	if descC.Value.IsUndefined() {
		protoC := o.GetPrototypeOf()
		if protoC.IsAbrupt() {
			return protoC
		}
		if protoC.Value.IsNull() {
			return Normal(Undefined)
		}
		return protoC.Value.AsObject().Get(key, receiver)
	}
	desc := descC.Value.AsObject().(*PropertyDescriptor)
	if desc.Variant == DataDescriptor {
		return Normal(desc.Value)
	}
	if !desc.Get.IsObject() {
		return Normal(Undefined)
	}
	return desc.Get.AsObject().Call(receiver, nil)
}

// Set implements the Ordinary [[Set]] algorithm that spec.md §9 notes is
// absent upstream ("callers that need assignment semantics should use
// DefineOwnProperty directly"): this kernel implements it fully so that
// the object_set entry point in spec.md §6 has a working Ordinary default.
// Data properties are written through (or, if absent on O itself, created
// as an own data property on receiver); accessor properties invoke the
// setter with receiver as `this`.
func (o *PlainObject) Set(key PropertyKey, v Value, receiver Value) Completion {
	descC := o.GetOwnProperty(key)
	if descC.IsAbrupt() {
		return descC
	}
	if descC.Value.IsUndefined() {
		protoC := o.GetPrototypeOf()
		if protoC.IsAbrupt() {
			return protoC
		}
		if !protoC.Value.IsNull() {
			return protoC.Value.AsObject().Set(key, v, receiver)
		}
		return createDataPropertyOnReceiver(receiver, key, v)
	}
	desc := descC.Value.AsObject().(*PropertyDescriptor)
	if desc.Variant == DataDescriptor {
		if !desc.Writable {
			return NormalFalse()
		}
		if !receiver.IsObject() {
			return NormalFalse()
		}
		recv := receiver.AsObject()
		existingC := recv.GetOwnProperty(key)
		if existingC.IsAbrupt() {
			return existingC
		}
		if existingC.Value.IsUndefined() {
			return createDataPropertyOnReceiver(receiver, key, v)
		}
		existing := existingC.Value.AsObject().(*PropertyDescriptor)
		if existing.Variant != DataDescriptor {
			return NormalFalse()
		}
		if !existing.Writable {
			return NormalFalse()
		}
		updated := existing.clone()
		updated.Value = v
		return recv.DefineOwnProperty(key, updated)
	}
	if !desc.Set.IsObject() {
		return NormalFalse()
	}
	callC := desc.Set.AsObject().Call(receiver, []Value{v})
	if callC.IsAbrupt() {
		return callC
	}
	return NormalTrue()
}

func createDataPropertyOnReceiver(receiver Value, key PropertyKey, v Value) Completion {
	if !receiver.IsObject() {
		return NormalFalse()
	}
	return receiver.AsObject().DefineOwnProperty(key, NewDataPropertyDescriptor(v))
}

// Call implements the default (non-callable) Call hook: abruptly throws a
// TypeError, per spec.md §4.3. FunctionObject overrides this.
func (o *PlainObject) Call(this Value, args []Value) Completion {
	return AbruptCompletion(TypeErrorValue("Object is not callable"))
}
