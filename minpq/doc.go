// Package minpq provides extrinsic minimum priority queues: queues whose
// priorities are supplied alongside each item instead of being derived from
// the item itself.
//
// What:
//
//   - ExtrinsicMinPQ: the shared contract (Add, Contains, PeekMin, RemoveMin,
//     ChangePriority, Size, IsEmpty). Items are unique; ties on the minimum
//     priority may be broken arbitrarily.
//   - UnsortedArrayMinPQ: sequential store, every lookup is a scan.
//   - DoubleMapMinPQ: ordered priority→bucket map (google/btree) plus an
//     item→priority map. The reference oracle for the other implementations.
//   - HeapMinPQ: 1-indexed binary heap without a reverse index.
//   - OptimizedHeapMinPQ: 1-indexed binary heap arena plus an item→slot map,
//     the implementation meant for large graphs.
//
// Complexity:
//
//	| Implementation      | Add      | PeekMin/RemoveMin | ChangePriority |
//	|---------------------|----------|-------------------|----------------|
//	| UnsortedArrayMinPQ  | O(n)     | O(n)              | O(n)           |
//	| DoubleMapMinPQ      | O(log n) | O(log n)          | O(log n)       |
//	| HeapMinPQ           | O(n)     | O(log n)          | O(n)           |
//	| OptimizedHeapMinPQ  | O(log n) | O(log n)          | O(log n)       |
//
// Add on the array and plain heap is O(n) only because of the duplicate
// check; the insertion itself is O(1) and O(log n) respectively.
//
// Errors:
//
//   - ErrDuplicateKey     Add with an item already present
//   - ErrEmptyQueue       PeekMin/RemoveMin on an empty queue
//   - ErrMissingKey       ChangePriority on an absent item
//   - ErrInvalidPriority  NaN priority
//   - ErrUnknownKind      unsupported Kind passed to ParseKind/FactoryFor
//
// Contract violations are reported at the call site and never retried; the
// caller is expected to avoid them, e.g. by checking Contains before
// ChangePriority.
//
// Thread safety: none of the queues are safe for concurrent mutation.
package minpq
