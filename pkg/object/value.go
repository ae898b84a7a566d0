// Package object implements the tagged-value representation and the
// prototype-linked object model: the seven value kinds, the eight
// meta-object operations, and the completion plumbing that carries
// thrown values out of them.
package object

import "fmt"

// Kind tags the seven inhabitants of Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindSymbol
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("<unknown kind %d>", uint8(k))
	}
}

// Value is the tagged union described in spec.md §3. It is small enough to
// pass by value; String/Symbol/Object payloads are references into the
// managed (Go garbage-collected) heap.
type Value struct {
	kind Kind
	num  float64
	str  *StringValue
	sym  *SymbolValue
	obj  Object
}

var (
	// Undefined and Null are the single inhabitants of their kinds.
	Undefined = Value{kind: KindUndefined}
	Null      = Value{kind: KindNull}
	True      = Value{kind: KindBoolean, num: 1}
	False     = Value{kind: KindBoolean, num: 0}
)

// Boolean constructs a Value of kind Boolean.
func Boolean(b bool) Value {
	if b {
		return True
	}
	return False
}

// Number constructs a Value of kind Number from an IEEE-754 double.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// FromString constructs a Value of kind String wrapping an existing
// StringValue. Use NewString for the common case of wrapping a Go string.
func FromString(s *StringValue) Value {
	if s == nil {
		panic("object: string value must not be nil")
	}
	return Value{kind: KindString, str: s}
}

// NewString interns nothing (spec.md leaves interning as an implementation
// detail) but does allocate an immutable StringValue once, matching the
// "created once by the runtime string factory; never mutated" contract.
func NewString(s string) Value {
	return FromString(NewStringValue(s))
}

// FromSymbol constructs a Value of kind Symbol wrapping an existing
// SymbolValue. Symbols are normally minted through Runtime.NewSymbol.
func FromSymbol(s *SymbolValue) Value {
	if s == nil {
		panic("object: symbol value must not be nil")
	}
	return Value{kind: KindSymbol, sym: s}
}

// FromObject constructs a Value of kind Object. Per the invariant in
// spec.md §3, a Value with kind Object never holds a null reference.
func FromObject(o Object) Value {
	if o == nil {
		panic("object: object value must not wrap a nil reference")
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsNullish() bool   { return v.kind == KindUndefined || v.kind == KindNull }
func (v Value) IsBoolean() bool   { return v.kind == KindBoolean }
func (v Value) IsNumber() bool    { return v.kind == KindNumber }
func (v Value) IsString() bool    { return v.kind == KindString }
func (v Value) IsSymbol() bool    { return v.kind == KindSymbol }
func (v Value) IsObject() bool    { return v.kind == KindObject }

// AsBoolean panics if v is not of kind Boolean.
func (v Value) AsBoolean() bool {
	if v.kind != KindBoolean {
		panic("object: value is not a boolean")
	}
	return v.num != 0
}

// AsNumber panics if v is not of kind Number.
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		panic("object: value is not a number")
	}
	return v.num
}

// AsString panics if v is not of kind String.
func (v Value) AsString() *StringValue {
	if v.kind != KindString {
		panic("object: value is not a string")
	}
	return v.str
}

// AsSymbol panics if v is not of kind Symbol.
func (v Value) AsSymbol() *SymbolValue {
	if v.kind != KindSymbol {
		panic("object: value is not a symbol")
	}
	return v.sym
}

// AsObject panics if v is not of kind Object.
func (v Value) AsObject() Object {
	if v.kind != KindObject {
		panic("object: value is not an object")
	}
	return v.obj
}

// StrictEquals implements strict_equal per spec.md §4.1: false if tags
// differ; Undefined/Null always equal themselves; Boolean/Number compare
// by IEEE primitive equality (NaN != NaN, +0 == -0); String compares by
// content; Object compares by reference identity and Symbol by id. Total
// function, never errors.
func (v Value) StrictEquals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean, KindNumber:
		return v.num == other.num
	case KindString:
		return v.str.Equals(other.str)
	case KindSymbol:
		return v.sym.Equals(other.sym)
	case KindObject:
		return v.obj == other.obj
	default:
		panic(fmt.Sprintf("object: unhandled kind in StrictEquals: %v", v.kind))
	}
}
