// Package minheap implements a binary min-heap whose elements can be located
// by value, which permits decrease-key in O(log n).
//
// The heap is a dense slice laid out as a complete binary tree: the children
// of slot i live at 2i+1 and 2i+2, and its parent at (i-1)/2.  Alongside the
// slice, a map records the current slot of every value.  Both containers are
// updated together on every structural change.
package minheap

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

var (
	// ErrInvalidArgument is returned for keys that fail validation, for
	// duplicate values, and for attempts to raise a key.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when the heap is empty or does not hold the
	// requested value.
	ErrNotFound = errors.New("not found")
)

// Entry is a (key, value) pair stored in a Heap.
type Entry[K any, V comparable] struct {
	Key   K
	Value V
}

// Heap is a min-heap of entries ordered by key and indexed by value.  No value
// appears more than once.  The zero Heap is not usable; see New and
// NewOrdered.
//
// A Heap is not safe for concurrent use.
type Heap[K any, V comparable] struct {
	list  []Entry[K, V]
	index map[V]int
	less  func(a, b K) bool
	valid func(k K) bool
}

// New returns an empty Heap ordered by less.  If valid is non-nil, keys for
// which it returns false are rejected with ErrInvalidArgument.
func New[K any, V comparable](less func(a, b K) bool, valid func(k K) bool) *Heap[K, V] {
	assert.Assertf(less != nil, "less function must not be nil")
	return &Heap[K, V]{
		index: make(map[V]int),
		less:  less,
		valid: valid,
	}
}

// NewOrdered returns an empty Heap ordered by the natural order of K.  A key
// that is not equal to itself (a floating point NaN) is rejected.
func NewOrdered[K cmp.Ordered, V comparable]() *Heap[K, V] {
	return New[K, V](cmp.Less[K], func(k K) bool { return k == k })
}

// Size returns the number of entries in the heap.
func (h *Heap[K, V]) Size() int {
	return len(h.list)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool {
	return len(h.list) == 0
}

// ContainsValue reports whether v is currently stored in the heap.
func (h *Heap[K, V]) ContainsValue(v V) bool {
	_, found := h.index[v]
	return found
}

// Key returns the current key of v.
func (h *Heap[K, V]) Key(v V) (K, bool) {
	i, found := h.index[v]
	if !found {
		var zero K
		return zero, false
	}
	return h.list[i].Key, true
}

// Add inserts value v with priority key.  It fails if key is invalid or v is
// already present.
func (h *Heap[K, V]) Add(key K, v V) error {
	if !h.validKey(key) {
		return fmt.Errorf("minheap: add %v: invalid key %v: %w", v, key, ErrInvalidArgument)
	}
	if h.ContainsValue(v) {
		return fmt.Errorf("minheap: add %v: value already present: %w", v, ErrInvalidArgument)
	}

	h.list = append(h.list, Entry[K, V]{Key: key, Value: v})
	last := len(h.list) - 1
	h.index[v] = last
	h.up(last)
	return nil
}

// DecreaseKey lowers the key of v to newKey, or leaves it unchanged if newKey
// equals the current key.  It fails with ErrNotFound if v is absent, and with
// ErrInvalidArgument if newKey is invalid or greater than the current key.
func (h *Heap[K, V]) DecreaseKey(v V, newKey K) error {
	i, found := h.index[v]
	if !found {
		return fmt.Errorf("minheap: decrease key of %v: %w", v, ErrNotFound)
	}
	if !h.validKey(newKey) {
		return fmt.Errorf("minheap: decrease key of %v: invalid key %v: %w", v, newKey, ErrInvalidArgument)
	}
	if h.less(h.list[i].Key, newKey) {
		return fmt.Errorf("minheap: decrease key of %v: new key %v is greater than current key %v: %w", v, newKey, h.list[i].Key, ErrInvalidArgument)
	}

	h.list[i].Key = newKey
	h.up(i)
	return nil
}

// Peek returns the minimum entry without removing it.
func (h *Heap[K, V]) Peek() (Entry[K, V], error) {
	if len(h.list) == 0 {
		return Entry[K, V]{}, fmt.Errorf("minheap: peek: heap is empty: %w", ErrNotFound)
	}
	return h.list[0], nil
}

// ExtractMin removes and returns the minimum entry.
func (h *Heap[K, V]) ExtractMin() (Entry[K, V], error) {
	n := len(h.list)
	if n == 0 {
		return Entry[K, V]{}, fmt.Errorf("minheap: extract min: heap is empty: %w", ErrNotFound)
	}

	first := h.list[0]
	last := n - 1
	delete(h.index, first.Value)
	if last > 0 {
		h.list[0] = h.list[last]
		h.index[h.list[0].Value] = 0
	}
	h.list[last] = Entry[K, V]{}
	h.list = h.list[:last]
	if last > 1 {
		h.down(0)
	}
	return first, nil
}

// Values returns every value currently stored, in no particular order.
func (h *Heap[K, V]) Values() []V {
	out := make([]V, 0, len(h.index))
	for v := range h.index {
		out = append(out, v)
	}
	return out
}

// Validate checks the heap's structural invariants: the index agrees with the
// slice in both directions and every entry's key is not less than its
// parent's.
func (h *Heap[K, V]) Validate() error {
	if len(h.index) != len(h.list) {
		return fmt.Errorf("minheap: index holds %d values but heap holds %d entries", len(h.index), len(h.list))
	}
	for i, e := range h.list {
		if j, found := h.index[e.Value]; !found || j != i {
			return fmt.Errorf("minheap: value %v at slot %d is indexed at slot %d (found=%t)", e.Value, i, j, found)
		}
		if i > 0 && h.less(e.Key, h.list[parent(i)].Key) {
			return fmt.Errorf("minheap: key %v at slot %d is less than parent key %v at slot %d", e.Key, i, h.list[parent(i)].Key, parent(i))
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the heap, in slot order,
// to the given writer.
func (h *Heap[K, V]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Heap{\n")
	fmt.Fprintf(&buf, "\tSize() = %d\n", len(h.list))
	for i, e := range h.list {
		fmt.Fprintf(&buf, "\t[%d] = {%v, %v}\n", i, e.Key, e.Value)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (h *Heap[K, V]) validKey(k K) bool {
	return h.valid == nil || h.valid(k)
}

// swap exchanges slots i and j in both the slice and the index.
func (h *Heap[K, V]) swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
	h.index[h.list[i].Value] = i
	h.index[h.list[j].Value] = j
}

// up moves the entry at slot i toward the root while its key is strictly less
// than its parent's.
func (h *Heap[K, V]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.list[i].Key, h.list[p].Key) {
			break
		}
		h.swap(i, p)
		i = p
	}
	assert.Assertf(h.index[h.list[i].Value] == i, "index out of sync at slot %d", i)
}

// down moves the entry at slot i toward the leaves until it is not greater
// than either child.  Only strict comparisons are used, so on ties the
// current node stays ahead of its left child, and the left child stays ahead
// of the right.
func (h *Heap[K, V]) down(i int) {
	n := len(h.list)
	for {
		smallest := i
		if l := left(i); l < n && h.less(h.list[l].Key, h.list[smallest].Key) {
			smallest = l
		}
		if r := right(i); r < n && h.less(h.list[r].Key, h.list[smallest].Key) {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
	assert.Assertf(h.index[h.list[i].Value] == i, "index out of sync at slot %d", i)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
