package minpq

import (
	"github.com/google/btree"
)

// btreeDegree is the branching factor of the priority index.
const btreeDegree = 16

// bucket holds every item currently sharing one priority value. items is
// a dense slice so PeekMin and RemoveMin agree on the same member; slot
// maps each member to its position in items.
type bucket[T comparable] struct {
	priority float64
	items    []T
	slot     map[T]int
}

func (b *bucket[T]) add(item T) {
	b.slot[item] = len(b.items)
	b.items = append(b.items, item)
}

// delete removes item by moving the last member into its slot.
func (b *bucket[T]) delete(item T) {
	i, ok := b.slot[item]
	if !ok {
		return
	}
	last := len(b.items) - 1
	if i != last {
		b.items[i] = b.items[last]
		b.slot[b.items[i]] = i
	}
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	delete(b.slot, item)
}

// DoubleMapMinPQ keeps an ordered map from priority to the set of items at
// that priority, plus a reverse item→priority map. It trivially supports
// duplicate priorities and serves as the reference oracle for the heaps.
//
// Complexity:
//
//   - Add:            O(log n)
//   - Contains:       O(1)
//   - PeekMin:        O(log n)
//   - RemoveMin:      O(log n)
//   - ChangePriority: O(log n)
type DoubleMapMinPQ[T comparable] struct {
	byPriority *btree.BTreeG[*bucket[T]]
	byItem     map[T]float64
}

// NewDoubleMapMinPQ returns an empty queue.
func NewDoubleMapMinPQ[T comparable]() *DoubleMapMinPQ[T] {
	return &DoubleMapMinPQ[T]{
		byPriority: btree.NewG[*bucket[T]](btreeDegree, func(a, b *bucket[T]) bool {
			return a.priority < b.priority
		}),
		byItem: make(map[T]float64),
	}
}

// Add files item under priority.
func (pq *DoubleMapMinPQ[T]) Add(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	if pq.Contains(item) {
		return duplicateKey(item)
	}
	pq.insert(item, priority)

	return nil
}

// Contains looks item up in the reverse map.
func (pq *DoubleMapMinPQ[T]) Contains(item T) bool {
	_, ok := pq.byItem[item]
	return ok
}

// PeekMin returns any item of the lowest-priority bucket.
func (pq *DoubleMapMinPQ[T]) PeekMin() (T, error) {
	b, ok := pq.byPriority.Min()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}

	return b.items[0], nil
}

// RemoveMin removes any item of the lowest-priority bucket, dropping the
// bucket once it is empty.
func (pq *DoubleMapMinPQ[T]) RemoveMin() (T, error) {
	b, ok := pq.byPriority.Min()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := b.items[0]
	pq.remove(item, b.priority)

	return item, nil
}

// ChangePriority moves item to the bucket of priority.
func (pq *DoubleMapMinPQ[T]) ChangePriority(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	old, ok := pq.byItem[item]
	if !ok {
		return missingKey(item)
	}
	if old == priority {
		return nil
	}
	pq.remove(item, old)
	pq.insert(item, priority)

	return nil
}

// Size returns the number of items.
func (pq *DoubleMapMinPQ[T]) Size() int { return len(pq.byItem) }

// IsEmpty reports whether the queue holds no items.
func (pq *DoubleMapMinPQ[T]) IsEmpty() bool { return len(pq.byItem) == 0 }

func (pq *DoubleMapMinPQ[T]) insert(item T, priority float64) {
	b, ok := pq.byPriority.Get(&bucket[T]{priority: priority})
	if !ok {
		b = &bucket[T]{priority: priority, slot: make(map[T]int, 1)}
		pq.byPriority.ReplaceOrInsert(b)
	}
	b.add(item)
	pq.byItem[item] = priority
}

func (pq *DoubleMapMinPQ[T]) remove(item T, priority float64) {
	key := &bucket[T]{priority: priority}
	if b, ok := pq.byPriority.Get(key); ok {
		b.delete(item)
		if len(b.items) == 0 {
			pq.byPriority.Delete(key)
		}
	}
	delete(pq.byItem, item)
}
