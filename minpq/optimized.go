package minpq

// OptimizedHeapMinPQ is a 1-indexed binary min-heap laid out as an arena:
// a flat slice of PriorityNodes plus a map from each item to its current
// slot. Every swap rewrites the slot of both displaced items, so locating an
// item for ChangePriority is O(1) and the whole operation is O(log n).
//
// Complexity:
//
//   - Add:            O(log n)
//   - Contains:       O(1)
//   - PeekMin:        O(1)
//   - RemoveMin:      O(log n)
//   - ChangePriority: O(log n)
type OptimizedHeapMinPQ[T comparable] struct {
	nodes []PriorityNode[T] // nodes[0] is unused
	slot  map[T]int         // item → index into nodes
}

// NewOptimizedHeapMinPQ returns an empty queue.
func NewOptimizedHeapMinPQ[T comparable]() *OptimizedHeapMinPQ[T] {
	return &OptimizedHeapMinPQ[T]{
		nodes: make([]PriorityNode[T], 1),
		slot:  make(map[T]int),
	}
}

// Add appends item as the last leaf and swims it into place.
func (pq *OptimizedHeapMinPQ[T]) Add(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	if pq.Contains(item) {
		return duplicateKey(item)
	}
	pq.nodes = append(pq.nodes, PriorityNode[T]{Item: item, Priority: priority})
	i := pq.Size()
	pq.slot[item] = i
	pq.swim(i)

	return nil
}

// Contains consults the slot index.
func (pq *OptimizedHeapMinPQ[T]) Contains(item T) bool {
	_, ok := pq.slot[item]
	return ok
}

// PeekMin returns the root item.
func (pq *OptimizedHeapMinPQ[T]) PeekMin() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return pq.nodes[1].Item, nil
}

// RemoveMin swaps the root with the last leaf, drops it from both the
// arena and the index, and sinks the new root.
func (pq *OptimizedHeapMinPQ[T]) RemoveMin() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := pq.nodes[1].Item
	last := pq.Size()
	pq.swap(1, last)
	pq.nodes[last] = PriorityNode[T]{}
	pq.nodes = pq.nodes[:last]
	delete(pq.slot, item)
	pq.sink(1)

	return item, nil
}

// ChangePriority rewrites the priority of item and swims or sinks it.
func (pq *OptimizedHeapMinPQ[T]) ChangePriority(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	i, ok := pq.slot[item]
	if !ok {
		return missingKey(item)
	}
	old := pq.nodes[i].Priority
	pq.nodes[i].Priority = priority
	if priority < old {
		pq.swim(i)
	} else {
		pq.sink(i)
	}

	return nil
}

// Size returns the number of items.
func (pq *OptimizedHeapMinPQ[T]) Size() int { return len(pq.nodes) - 1 }

// IsEmpty reports whether the queue holds no items.
func (pq *OptimizedHeapMinPQ[T]) IsEmpty() bool { return pq.Size() == 0 }

func (pq *OptimizedHeapMinPQ[T]) less(i, j int) bool {
	return pq.nodes[i].Priority < pq.nodes[j].Priority
}

// swap exchanges two arena slots and re-points both items in the index.
func (pq *OptimizedHeapMinPQ[T]) swap(i, j int) {
	pq.nodes[i], pq.nodes[j] = pq.nodes[j], pq.nodes[i]
	pq.slot[pq.nodes[i].Item] = i
	pq.slot[pq.nodes[j].Item] = j
}

func (pq *OptimizedHeapMinPQ[T]) swim(i int) {
	for i > 1 && pq.less(i, i/2) {
		pq.swap(i, i/2)
		i /= 2
	}
}

func (pq *OptimizedHeapMinPQ[T]) sink(i int) {
	n := pq.Size()
	for 2*i <= n {
		j := 2 * i
		if j < n && pq.less(j+1, j) {
			j++
		}
		if !pq.less(j, i) {
			break
		}
		pq.swap(i, j)
		i = j
	}
}
