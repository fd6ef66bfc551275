package regexfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = IntSet{}

// IntSet is an immutable sorted set of state numbers with a cached hash.
type IntSet struct {
	values   []int
	hashCode uint64
}

func NewIntSet(values ...int) IntSet {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return freeze(sorted)
}

// IntSetFromBits freezes the members of b.
func IntSetFromBits(b *bitset.BitSet) IntSet {
	values := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return freeze(values)
}

func freeze(sorted []int) IntSet {
	h := uint64(len(sorted))
	for _, v := range sorted {
		h += mixInt(v)
	}
	return IntSet{values: sorted, hashCode: h}
}

func (s IntSet) Hash() uint64 {
	return s.hashCode
}

func (s IntSet) Equals(other Hashable) bool {
	o, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.hashCode == o.hashCode && slices.Equal(s.values, o.values)
}

// Values returns the members in ascending order. The slice must not be modified.
func (s IntSet) Values() []int {
	return s.values
}

func (s IntSet) Size() int {
	return len(s.values)
}

func (s IntSet) Contains(v int) bool {
	_, ok := slices.BinarySearch(s.values, v)
	return ok
}

// Bits returns the members as a bitset.
func (s IntSet) Bits() *bitset.BitSet {
	b := bitset.New(0)
	for _, v := range s.values {
		b.Set(uint(v))
	}
	return b
}
