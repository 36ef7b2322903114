package algo

import (
	"fmt"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// LinearSearch scans items front to back and collects, in order, every
// element the comparator considers equal to target.  An empty result
// with a nil error means nothing matched.
func LinearSearch[T any](items []T, target T, compare CompareFunc[T]) ([]T, error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", err_def.ErrInvalidArgument)
	}
	var found []T
	for _, item := range items {
		c, err := compare(item, target)
		if err != nil {
			return nil, err
		}
		if c == 0 {
			found = append(found, item)
		}
	}
	return found, nil
}

// PredicateSearch collects, in order, every element the predicate
// matches.
func PredicateSearch[T any](items []T, match PredicateFunc[T]) ([]T, error) {
	if match == nil {
		return nil, fmt.Errorf("%w: nil predicate", err_def.ErrInvalidArgument)
	}
	var found []T
	for _, item := range items {
		ok, err := match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, item)
		}
	}
	return found, nil
}

// BinarySearch returns a copy of the run of elements equal to target in
// a slice sorted ascending under the comparator.  It probes for one
// occurrence, then locates the run's left and right boundaries with two
// more binary searches, so the whole lookup stays O(log n) however many
// elements compare equal.
func BinarySearch[T any](sorted []T, target T, compare CompareFunc[T]) ([]T, error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", err_def.ErrInvalidArgument)
	}
	lo, hi := 0, len(sorted)-1
	hit := -1
	for lo <= hi && hit < 0 {
		mid := lo + (hi-lo)/2
		c, err := compare(sorted[mid], target)
		if err != nil {
			return nil, err
		}
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			hit = mid
		}
	}
	if hit < 0 {
		return nil, nil
	}
	left, err := leftmostEqual(sorted, target, compare, hit)
	if err != nil {
		return nil, err
	}
	right, err := rightmostEqual(sorted, target, compare, hit)
	if err != nil {
		return nil, err
	}
	found := make([]T, right-left+1)
	copy(found, sorted[left:right+1])
	return found, nil
}

// leftmostEqual narrows [0, hit] down to the first index whose element
// still compares equal to target.
func leftmostEqual[T any](sorted []T, target T, compare CompareFunc[T], hit int) (int, error) {
	lo, hi := 0, hit
	for lo < hi {
		mid := lo + (hi-lo)/2
		c, err := compare(sorted[mid], target)
		if err != nil {
			return 0, err
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// rightmostEqual narrows [hit, len-1] down to the last index whose
// element still compares equal to target.
func rightmostEqual[T any](sorted []T, target T, compare CompareFunc[T], hit int) (int, error) {
	lo, hi := hit, len(sorted)-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		c, err := compare(sorted[mid], target)
		if err != nil {
			return 0, err
		}
		if c > 0 {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return lo, nil
}
