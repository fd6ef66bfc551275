package regexfa

import "iter"

// Hashable is a map key that supplies its own hash and equality.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap maps Hashable keys to values. Iteration follows insertion order.
type HashMap[T any] struct {
	buckets []*entry[T]
	order   []*entry[T]
	size    int
	mask    uint64
}

const maxLoadFactor = 0.75

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity int
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity sets the initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1}
	for _, fn := range options {
		fn(opt)
	}

	realCap := 1
	for realCap < opt.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets: make([]*entry[T], realCap),
		mask:    uint64(realCap - 1),
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	e := &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.buckets[index] = e
	m.order = append(m.order, e)
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > maxLoadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// resize doubles the bucket array.
func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	m.buckets = make([]*entry[T], newCap)
	m.mask = uint64(newCap - 1)

	for _, e := range m.order {
		index := e.key.Hash() & m.mask
		e.next = m.buckets[index]
		m.buckets[index] = e
	}
}

func (m *HashMap[T]) Size() int {
	return m.size
}

// All yields the entries in insertion order.
func (m *HashMap[T]) All() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, e := range m.order {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
