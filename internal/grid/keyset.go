package grid

import "math/bits"

// KeySet is a set of key indices stored as a bitmap. Bit i is set when key i is held.
type KeySet uint32

// FullKeySet returns the set holding keys 0 through n-1.
func FullKeySet(n int) KeySet {
	return KeySet(1)<<n - 1
}

// Has reports whether k contains key i.
func (k KeySet) Has(i int) bool {
	return k>>i&1 == 1
}

// With returns a new KeySet which is the result of adding key i to k.
func (k KeySet) With(i int) KeySet {
	return k | 1<<i
}

// ContainsAll reports whether keys is a subset of k.
func (k KeySet) ContainsAll(keys KeySet) bool {
	return k&keys == keys
}

// Count returns the number of keys in k.
func (k KeySet) Count() int {
	return bits.OnesCount32(uint32(k))
}
