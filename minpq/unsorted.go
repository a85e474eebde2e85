package minpq

// UnsortedArrayMinPQ keeps item-priority pairs in insertion order and
// scans the whole slice to find the minimum.
//
// Complexity:
//
//   - Add:            O(n) (duplicate check scans; the append itself is O(1))
//   - Contains:       O(n)
//   - PeekMin:        O(n)
//   - RemoveMin:      O(n)
//   - ChangePriority: O(n)
type UnsortedArrayMinPQ[T comparable] struct {
	items []PriorityNode[T]
}

// NewUnsortedArrayMinPQ returns an empty queue.
func NewUnsortedArrayMinPQ[T comparable]() *UnsortedArrayMinPQ[T] {
	return &UnsortedArrayMinPQ[T]{}
}

// Add appends item with priority.
func (pq *UnsortedArrayMinPQ[T]) Add(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	if pq.Contains(item) {
		return duplicateKey(item)
	}
	pq.items = append(pq.items, PriorityNode[T]{Item: item, Priority: priority})

	return nil
}

// Contains scans for item.
func (pq *UnsortedArrayMinPQ[T]) Contains(item T) bool {
	return pq.indexOf(item) >= 0
}

// PeekMin returns the first item found with the minimum priority.
func (pq *UnsortedArrayMinPQ[T]) PeekMin() (T, error) {
	i := pq.minIndex()
	if i < 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return pq.items[i].Item, nil
}

// RemoveMin removes the minimum entry. The last entry is moved into the
// vacated slot; order carries no meaning here.
func (pq *UnsortedArrayMinPQ[T]) RemoveMin() (T, error) {
	i := pq.minIndex()
	if i < 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := pq.items[i].Item
	last := len(pq.items) - 1
	pq.items[i] = pq.items[last]
	pq.items[last] = PriorityNode[T]{}
	pq.items = pq.items[:last]

	return item, nil
}

// ChangePriority overwrites the priority of item in place.
func (pq *UnsortedArrayMinPQ[T]) ChangePriority(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	i := pq.indexOf(item)
	if i < 0 {
		return missingKey(item)
	}
	pq.items[i].Priority = priority

	return nil
}

// Size returns the number of items.
func (pq *UnsortedArrayMinPQ[T]) Size() int { return len(pq.items) }

// IsEmpty reports whether the queue holds no items.
func (pq *UnsortedArrayMinPQ[T]) IsEmpty() bool { return len(pq.items) == 0 }

func (pq *UnsortedArrayMinPQ[T]) indexOf(item T) int {
	for i := range pq.items {
		if pq.items[i].Item == item {
			return i
		}
	}

	return -1
}

// minIndex returns the slot of the minimum priority, or -1 when empty.
func (pq *UnsortedArrayMinPQ[T]) minIndex() int {
	if len(pq.items) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(pq.items); i++ {
		if pq.items[i].Priority < pq.items[best].Priority {
			best = i
		}
	}

	return best
}
