package minpq

// HeapMinPQ is a 1-indexed binary min-heap of PriorityNodes with no reverse
// index. Locating an item costs a linear scan, which is what separates it
// from OptimizedHeapMinPQ.
//
// Complexity:
//
//   - Add:            O(n) duplicate scan + O(log n) swim
//   - Contains:       O(n)
//   - PeekMin:        O(1)
//   - RemoveMin:      O(log n)
//   - ChangePriority: O(n) scan + O(log n) swim/sink
type HeapMinPQ[T comparable] struct {
	// nodes[0] is unused so that parent(i) = i/2, left(i) = 2i, right(i) = 2i+1.
	nodes []PriorityNode[T]
}

// NewHeapMinPQ returns an empty queue.
func NewHeapMinPQ[T comparable]() *HeapMinPQ[T] {
	return &HeapMinPQ[T]{nodes: make([]PriorityNode[T], 1)}
}

// Add appends item at the bottom of the heap and swims it up.
func (pq *HeapMinPQ[T]) Add(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	if pq.Contains(item) {
		return duplicateKey(item)
	}
	pq.nodes = append(pq.nodes, PriorityNode[T]{Item: item, Priority: priority})
	pq.swim(pq.Size())

	return nil
}

// Contains scans the heap array for item.
func (pq *HeapMinPQ[T]) Contains(item T) bool {
	return pq.find(item) > 0
}

// PeekMin returns the root item.
func (pq *HeapMinPQ[T]) PeekMin() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return pq.nodes[1].Item, nil
}

// RemoveMin swaps the root with the last leaf, drops it, and sinks the new root.
func (pq *HeapMinPQ[T]) RemoveMin() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	item := pq.nodes[1].Item
	last := pq.Size()
	pq.swap(1, last)
	pq.nodes[last] = PriorityNode[T]{}
	pq.nodes = pq.nodes[:last]
	pq.sink(1)

	return item, nil
}

// ChangePriority finds item by scanning, rewrites its priority and restores
// the heap property in whichever direction it was broken.
func (pq *HeapMinPQ[T]) ChangePriority(item T, priority float64) error {
	if err := checkPriority(priority); err != nil {
		return err
	}
	i := pq.find(item)
	if i == 0 {
		return missingKey(item)
	}
	pq.nodes[i].Priority = priority
	pq.swim(i)
	pq.sink(i)

	return nil
}

// Size returns the number of items.
func (pq *HeapMinPQ[T]) Size() int { return len(pq.nodes) - 1 }

// IsEmpty reports whether the queue holds no items.
func (pq *HeapMinPQ[T]) IsEmpty() bool { return pq.Size() == 0 }

// find returns the 1-based slot of item, or 0 when absent.
func (pq *HeapMinPQ[T]) find(item T) int {
	for i := 1; i < len(pq.nodes); i++ {
		if pq.nodes[i].Item == item {
			return i
		}
	}

	return 0
}

func (pq *HeapMinPQ[T]) less(i, j int) bool {
	return pq.nodes[i].Priority < pq.nodes[j].Priority
}

func (pq *HeapMinPQ[T]) swap(i, j int) {
	pq.nodes[i], pq.nodes[j] = pq.nodes[j], pq.nodes[i]
}

func (pq *HeapMinPQ[T]) swim(i int) {
	for i > 1 && pq.less(i, i/2) {
		pq.swap(i, i/2)
		i /= 2
	}
}

func (pq *HeapMinPQ[T]) sink(i int) {
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
