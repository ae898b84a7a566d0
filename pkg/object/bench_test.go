package object

import "testing"

// setupChain builds a depth-deep prototype chain, returning the leaf. Used
// to give Get/DefineOwnProperty something non-trivial to walk, matching
// the shape of nooga-paserati's own benchmark fixtures (build once outside
// the timed loop, see tests/bench/bench_test.go's compileFile pattern).
func setupChain(depth int) *PlainObject {
	root := NewPlainObject(Null)
	root.DefineOwnProperty(StringKey("root_prop"), NewDataPropertyDescriptor(Number(1)))

	leaf := root
	for i := 0; i < depth; i++ {
		next := NewPlainObject(FromObject(leaf))
		leaf = next
	}
	return leaf
}

// BenchmarkGetPrototypeWalk measures [[Get]]'s cost when the requested
// property lives at the root of a ten-level prototype chain, so every call
// walks the full chain before falling through to the Ordinary default.
func BenchmarkGetPrototypeWalk(b *testing.B) {
	leaf := setupChain(10)
	key := StringKey("root_prop")
	receiver := FromObject(leaf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if c := leaf.Get(key, receiver); c.IsAbrupt() {
			b.Fatalf("unexpected abrupt completion: %+v", c)
		}
	}
}

// BenchmarkDefineOwnPropertyNew measures inserting a fresh own property,
// exercising the "new entries prepend" path of DefineOwnProperty.
func BenchmarkDefineOwnPropertyNew(b *testing.B) {
	o := NewPlainObject(Null)
	desc := NewDataPropertyDescriptor(Number(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.props = nil
		if c := o.DefineOwnProperty(StringKey("k"), desc); c.IsAbrupt() {
			b.Fatalf("unexpected abrupt completion: %+v", c)
		}
	}
}
