// Package minpq defines the ExtrinsicMinPQ contract, its sentinel errors,
// the PriorityNode arena element, and the Kind/Factory selectors used by
// solvers to choose an implementation at construction time.
package minpq

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors shared by every ExtrinsicMinPQ implementation.
var (
	// ErrDuplicateKey indicates Add was called with an item already present.
	ErrDuplicateKey = errors.New("minpq: duplicate key")

	// ErrEmptyQueue indicates PeekMin or RemoveMin was called on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrMissingKey indicates ChangePriority was called for an absent item.
	ErrMissingKey = errors.New("minpq: missing key")

	// ErrInvalidPriority indicates a NaN priority, which has no position in a total order.
	ErrInvalidPriority = errors.New("minpq: priority is NaN")

	// ErrUnknownKind indicates ParseKind or FactoryFor received an unsupported Kind.
	ErrUnknownKind = errors.New("minpq: unknown queue kind")
)

// ExtrinsicMinPQ is a minimum priority queue whose priorities are supplied
// by the caller on Add and ChangePriority rather than derived from the items.
//
// Items are unique: identity is item equality, never priority. When several
// items share the minimum priority, PeekMin and RemoveMin may return any of
// them; callers must not rely on a tie-break.
type ExtrinsicMinPQ[T comparable] interface {
	// Add inserts item with priority. Returns ErrDuplicateKey if item is present.
	Add(item T, priority float64) error

	// Contains reports whether item is currently in the queue.
	Contains(item T) bool

	// PeekMin returns an item holding the minimum priority without removing it.
	// Returns ErrEmptyQueue if the queue is empty.
	PeekMin() (T, error)

	// RemoveMin removes and returns an item holding the minimum priority.
	// Returns ErrEmptyQueue if the queue is empty.
	RemoveMin() (T, error)

	// ChangePriority updates the priority of item and restores ordering.
	// Returns ErrMissingKey if item is absent.
	ChangePriority(item T, priority float64) error

	// Size returns the number of items in the queue.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
}

// PriorityNode pairs an item with its extrinsic priority. Only Priority is
// ever mutated; two nodes denote the same entry iff their Items are equal.
type PriorityNode[T comparable] struct {
	Item     T
	Priority float64
}

// String renders the node as "item (priority)".
func (n PriorityNode[T]) String() string {
	return fmt.Sprintf("%v (%g)", n.Item, n.Priority)
}

// Kind names one of the ExtrinsicMinPQ implementations of this package.
type Kind int

const (
	// KindUnsorted selects UnsortedArrayMinPQ (sequential scan).
	KindUnsorted Kind = iota
	// KindDoubleMap selects DoubleMapMinPQ (ordered priority map + item map).
	KindDoubleMap
	// KindHeap selects HeapMinPQ (binary heap without a reverse index).
	KindHeap
	// KindOptimized selects OptimizedHeapMinPQ (binary heap + item→slot index).
	KindOptimized
)

var kindNames = [...]string{
	KindUnsorted:  "unsorted",
	KindDoubleMap: "doublemap",
	KindHeap:      "heap",
	KindOptimized: "optimized",
}

// String returns the lower-case name used by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindUnsorted, KindDoubleMap, KindHeap, KindOptimized}
}

// ParseKind resolves a case-insensitive name ("unsorted", "doublemap",
// "heap", "optimized") into a Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Factory constructs an empty queue. Solvers accept a Factory so the
// queue implementation is a plain higher-order parameter.
type Factory[T comparable] func() ExtrinsicMinPQ[T]

// FactoryFor returns the Factory for kind, or ErrUnknownKind.
func FactoryFor[T comparable](kind Kind) (Factory[T], error) {
	switch kind {
	case KindUnsorted:
		return func() ExtrinsicMinPQ[T] { return NewUnsortedArrayMinPQ[T]() }, nil
	case KindDoubleMap:
		return func() ExtrinsicMinPQ[T] { return NewDoubleMapMinPQ[T]() }, nil
	case KindHeap:
		return func() ExtrinsicMinPQ[T] { return NewHeapMinPQ[T]() }, nil
	case KindOptimized:
		return func() ExtrinsicMinPQ[T] { return NewOptimizedHeapMinPQ[T]() }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// New returns an empty queue of the given kind. Unknown kinds fall back to
// OptimizedHeapMinPQ, the implementation meant for large graphs.
func New[T comparable](kind Kind) ExtrinsicMinPQ[T] {
	f, err := FactoryFor[T](kind)
	if err != nil {
		return NewOptimizedHeapMinPQ[T]()
	}

	return f()
}

// checkPriority rejects NaN priorities.
func checkPriority(priority float64) error {
	if math.IsNaN(priority) {
		return ErrInvalidPriority
	}

	return nil
}

// duplicateKey, missingKey wrap the sentinels with the offending item.
func duplicateKey[T any](item T) error {
	return fmt.Errorf("%w: %v", ErrDuplicateKey, item)
}

func missingKey[T any](item T) error {
	return fmt.Errorf("%w: %v", ErrMissingKey, item)
}
