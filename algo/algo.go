// Package algo implements searching and sorting over slices of any
// element type.  Ordering and matching are supplied by the caller as
// capabilities; the algorithms never inspect elements directly.  A
// capability may fail, and any failure aborts the algorithm at once and
// propagates to the caller unchanged.
package algo

// CompareFunc orders two elements, returning a negative, zero, or
// positive value.  Implementations may reject elements they cannot
// order.
type CompareFunc[T any] func(a, b T) (int, error)

// PredicateFunc classifies one element as matching or not.  Extra
// matching context travels inside the closure.
type PredicateFunc[T any] func(v T) (bool, error)
