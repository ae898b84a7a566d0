package object

// DescriptorVariant discriminates the two PropertyDescriptor arms.
type DescriptorVariant uint8

const (
	DataDescriptor DescriptorVariant = iota
	AccessorDescriptor
)

// PropertyDescriptor is, per spec.md §4.4, itself an Object: it embeds
// PlainObject so it reuses the Ordinary meta-ops (the "sentinel table" of
// the source), and carries the descriptor-specific trailing fields. A
// Value is a descriptor iff it is an Object whose concrete type is
// *PropertyDescriptor — AsDescriptor below is the idiomatic Go stand-in
// for the source's vtable-pointer identity check.
type PropertyDescriptor struct {
	PlainObject

	Variant DescriptorVariant

	// Value holds the data value; only meaningful when Variant == DataDescriptor.
	Value Value

	// Get and Set hold the accessor pair; only meaningful when
	// Variant == AccessorDescriptor. Either may be Undefined, meaning "no
	// getter"/"no setter" per spec.md §4.3 step 4.
	Get Value
	Set Value

	Writable     bool
	Enumerable   bool
	Configurable bool
}

// NewDataPropertyDescriptor builds a data descriptor with
// writable/enumerable/configurable all defaulted true, per spec.md §4.4's
// "new-data factory".
func NewDataPropertyDescriptor(value Value) *PropertyDescriptor {
	return &PropertyDescriptor{
		PlainObject:  PlainObject{prototype: Null, extensible: true},
		Variant:      DataDescriptor,
		Value:        value,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	}
}

// NewAccessorPropertyDescriptor builds an accessor descriptor with the
// same flag defaults as NewDataPropertyDescriptor; get/set may be
// Undefined for "no getter"/"no setter".
func NewAccessorPropertyDescriptor(get, set Value) *PropertyDescriptor {
	return &PropertyDescriptor{
		PlainObject:  PlainObject{prototype: Null, extensible: true},
		Variant:      AccessorDescriptor,
		Get:          get,
		Set:          set,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	}
}

func (d *PropertyDescriptor) clone() *PropertyDescriptor {
	c := *d
	c.PlainObject = PlainObject{prototype: Null, extensible: true}
	return &c
}

// AsDescriptor returns (d, true) iff v is an Object-kind Value whose
// backing object is a PropertyDescriptor, per spec.md §4.4's
// property_from_value.
func AsDescriptor(v Value) (*PropertyDescriptor, bool) {
	if !v.IsObject() {
		return nil, false
	}
	d, ok := v.AsObject().(*PropertyDescriptor)
	return d, ok
}

// validateAndApply implements ValidateAndApplyPropertyDescriptor restricted
// to the "full descriptor" shape this kernel's API always provides (there
// is no partial-descriptor concept at the Go API boundary, unlike full
// ECMAScript). It resolves the two algorithm paths spec.md §9 calls out as
// unimplemented upstream: non-configurable redefinition, and data/accessor
// transitions. Returns false (without mutating current) when the change is
// rejected; otherwise overwrites current's fields in place and returns true.
func validateAndApply(current, desc *PropertyDescriptor) bool {
	if !current.Configurable {
		if desc.Configurable {
			return false
		}
		if desc.Enumerable != current.Enumerable {
			return false
		}
		if desc.Variant != current.Variant {
			return false
		}
		if current.Variant == DataDescriptor {
			if !current.Writable {
				if desc.Writable {
					return false
				}
				if !desc.Value.StrictEquals(current.Value) {
					return false
				}
			}
		} else {
			if !sameOptionalFunction(desc.Get, current.Get) || !sameOptionalFunction(desc.Set, current.Set) {
				return false
			}
		}
	}

	current.Variant = desc.Variant
	current.Value = desc.Value
	current.Get = desc.Get
	current.Set = desc.Set
	current.Writable = desc.Writable
	current.Enumerable = desc.Enumerable
	current.Configurable = desc.Configurable
	return true
}

func sameOptionalFunction(a, b Value) bool {
	if !a.IsObject() && !b.IsObject() {
		return true
	}
	return a.StrictEquals(b)
}
