// Package orderedmap provides a map that preserves insertion order.
//
// The merge engine requires that the order of components and paths in its
// output be a stable function of input order and insertion order within each
// input. Go's built-in map gives no such guarantee, so every accumulator
// region in package merge (resultPaths, each resultComponents[kind] bucket)
// is backed by a Map from this package instead.
package orderedmap

import "iter"

// element is a single entry in a Map, linked into the insertion-order slice.
type element[K comparable, V any] struct {
	key   K
	value V
}

// Map is an insertion-ordered associative collection. The zero value is an
// empty map: reads on it report no entries, and the first Set allocates its
// index. New and NewWithCapacity return a Map whose index is allocated up
// front.
type Map[K comparable, V any] struct {
	index map[K]int
	order []*element[K, V]
}

// New returns an empty, ready-to-use Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// NewWithCapacity returns an empty Map pre-sized for n entries.
func NewWithCapacity[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int, n),
		order: make([]*element[K, V], 0, n),
	}
}

// IsInitialized reports whether m's index has been allocated, either by New
// or NewWithCapacity or by a first Set. A nil Map, or a bare struct literal
// that has not been Set into yet, reports false.
func (m *Map[K, V]) IsInitialized() bool {
	return m != nil && m.index != nil
}

func (m *Map[K, V]) init() {
	if m.index == nil {
		m.index = make(map[K]int)
	}
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Set inserts or updates the value for key, preserving the key's original
// position if it already exists, or appending it at the end if it is new.
func (m *Map[K, V]) Set(key K, value V) {
	m.init()
	if i, ok := m.index[key]; ok {
		m.order[i].value = value
		return
	}
	m.index[key] = len(m.order)
	m.order = append(m.order, &element[K, V]{key: key, value: value})
}

// Get returns the value stored at key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil || m.index == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.order[i].value, true
}

// GetOrZero returns the value stored at key, or the zero value of V if absent.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present in m.
func (m *Map[K, V]) Has(key K) bool {
	if m == nil || m.index == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Delete removes key from m, if present.
func (m *Map[K, V]) Delete(key K) {
	if m == nil || m.index == nil {
		return
	}
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.order = append(m.order[:i], m.order[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j].key] = j
	}
}

// Keys iterates keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for _, el := range m.order {
			if !yield(el.key) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m == nil {
			return
		}
		for _, el := range m.order {
			if !yield(el.value) {
				return
			}
		}
	}
}

// All iterates key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, el := range m.order {
			if !yield(el.key, el.value) {
				return
			}
		}
	}
}
