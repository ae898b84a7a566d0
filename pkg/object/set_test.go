package object

import "testing"

func TestSetWritableDataProperty(t *testing.T) {
	o := NewPlainObject(Null)
	key := StringKey("k")
	o.DefineOwnProperty(key, NewDataPropertyDescriptor(Number(1)))

	c := o.Set(key, Number(2), FromObject(o))
	if c.IsAbrupt() || !c.Value.AsBoolean() {
		t.Fatalf("expected Set to succeed, got %+v", c)
	}
	getC := o.Get(key, FromObject(o))
	if !getC.Value.StrictEquals(Number(2)) {
		t.Errorf("expected updated value 2, got %v", getC.Value)
	}
}

func TestSetNonWritableDataPropertyFails(t *testing.T) {
	o := NewPlainObject(Null)
	key := StringKey("k")
	fixed := NewDataPropertyDescriptor(Number(1))
	fixed.Writable = false
	o.DefineOwnProperty(key, fixed)

	c := o.Set(key, Number(2), FromObject(o))
	if c.IsAbrupt() || c.Value.AsBoolean() {
		t.Errorf("expected Set on non-writable property to fail, got %+v", c)
	}
	getC := o.Get(key, FromObject(o))
	if !getC.Value.StrictEquals(Number(1)) {
		t.Errorf("expected value to remain 1, got %v", getC.Value)
	}
}

func TestSetCreatesOwnPropertyWhenAbsent(t *testing.T) {
	o := NewPlainObject(Null)
	key := StringKey("new")
	c := o.Set(key, NewString("v"), FromObject(o))
	if c.IsAbrupt() || !c.Value.AsBoolean() {
		t.Fatalf("expected Set to create a new own property, got %+v", c)
	}
	if !o.HasOwn(key) {
		t.Errorf("expected new property to be own after Set")
	}
}

func TestSetThroughAccessorSetter(t *testing.T) {
	o := NewPlainObject(Null)
	key := StringKey("k")
	var captured Value
	setter := NewFunctionObject(Null, "set", func(this Value, args []Value) Completion {
		captured = args[0]
		return Normal(Undefined)
	})
	o.DefineOwnProperty(key, NewAccessorPropertyDescriptor(Undefined, FromObject(setter)))

	c := o.Set(key, NewString("via-setter"), FromObject(o))
	if c.IsAbrupt() || !c.Value.AsBoolean() {
		t.Fatalf("expected accessor Set to report success, got %+v", c)
	}
	if !captured.StrictEquals(NewString("via-setter")) {
		t.Errorf("expected setter to observe the written value, got %v", captured)
	}
}

func TestSetThroughPrototypeDataProperty(t *testing.T) {
	proto := NewPlainObject(Null)
	proto.DefineOwnProperty(StringKey("k"), NewDataPropertyDescriptor(Number(0)))
	child := NewPlainObject(Null)
	child.SetPrototypeOf(FromObject(proto))

	c := child.Set(StringKey("k"), Number(99), FromObject(child))
	if c.IsAbrupt() || !c.Value.AsBoolean() {
		t.Fatalf("expected Set through prototype to succeed, got %+v", c)
	}
	if child.HasOwn(StringKey("k")) == false {
		t.Errorf("expected assignment to create an own property on the receiver, not mutate the prototype")
	}
	protoGet := proto.Get(StringKey("k"), FromObject(proto))
	if !protoGet.Value.StrictEquals(Number(0)) {
		t.Errorf("expected prototype's own value to be unaffected, got %v", protoGet.Value)
	}
}
