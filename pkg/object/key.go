package object

import "strconv"

func symbolDebugID(s *SymbolValue) string {
	if s == nil {
		return "?"
	}
	return strconv.FormatUint(s.ID(), 10)
}

// KeyKind tags the two PropertyKey variants.
type KeyKind uint8

const (
	KeyString KeyKind = iota
	KeySymbol
)

// PropertyKey is the sum of {String-reference, Symbol} described in
// spec.md §3. Keys compare structurally: different kinds are never equal;
// strings compare by bytes; symbols by id.
type PropertyKey struct {
	kind KeyKind
	str  string
	sym  *SymbolValue
}

// StringKey builds a string-keyed PropertyKey.
func StringKey(name string) PropertyKey {
	return PropertyKey{kind: KeyString, str: name}
}

// SymbolKey builds a symbol-keyed PropertyKey.
func SymbolKey(sym *SymbolValue) PropertyKey {
	return PropertyKey{kind: KeySymbol, sym: sym}
}

// KeyOf builds a PropertyKey from a Value, panicking if v is neither a
// string nor a symbol (the only two valid key kinds).
func KeyOf(v Value) PropertyKey {
	switch v.Kind() {
	case KindString:
		return StringKey(v.AsString().String())
	case KindSymbol:
		return SymbolKey(v.AsSymbol())
	default:
		panic("object: property key must be a string or symbol value")
	}
}

func (k PropertyKey) IsString() bool { return k.kind == KeyString }
func (k PropertyKey) IsSymbol() bool { return k.kind == KeySymbol }

// StringName returns the key's string name; only valid when IsString.
func (k PropertyKey) StringName() string { return k.str }

// Symbol returns the key's symbol; only valid when IsSymbol.
func (k PropertyKey) Symbol() *SymbolValue { return k.sym }

// Equals compares two keys by kind then content, per spec.md §3.
func (k PropertyKey) Equals(other PropertyKey) bool {
	if k.kind != other.kind {
		return false
	}
	if k.kind == KeyString {
		return k.str == other.str
	}
	return k.sym.Equals(other.sym)
}

func (k PropertyKey) String() string {
	if k.kind == KeyString {
		return k.str
	}
	return "Symbol(#" + symbolDebugID(k.sym) + ")"
}
