package algo

import (
	"fmt"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Swap exchanges the elements a and b point at.
func Swap[T any](a, b *T) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil swap operand", err_def.ErrInvalidArgument)
	}
	*a, *b = *b, *a
	return nil
}

// Quicksort sorts items in place; it is not stable.  The pivot is the
// median of the first, middle, and last element, partitioning follows
// Hoare's scheme, and instead of recursing the sort works through an
// explicit stack of pending ranges, pushing the larger half first so
// the stack stays O(log n) deep on any input.
func Quicksort[T any](items []T, compare CompareFunc[T]) error {
	if compare == nil {
		return fmt.Errorf("%w: nil comparator", err_def.ErrInvalidArgument)
	}
	if len(items) < 2 {
		return nil
	}
	type span struct {
		low, high int
	}
	stack := []span{{0, len(items) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}
		p, err := hoarePartition(items, s.low, s.high, compare)
		if err != nil {
			return err
		}
		left := span{s.low, p}
		right := span{p + 1, s.high}
		if left.high-left.low >= right.high-right.low {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
	return nil
}

// hoarePartition splits items[low:high+1] around the median-of-three
// pivot value and returns the index ending the lower half.  Both halves
// are always strictly smaller than the input range.
func hoarePartition[T any](items []T, low, high int, compare CompareFunc[T]) (int, error) {
	pivot, err := medianOfThree(items[low], items[low+(high-low)/2], items[high], compare)
	if err != nil {
		return 0, err
	}
	i, j := low-1, high+1
	for {
		for {
			i++
			c, err := compare(items[i], pivot)
			if err != nil {
				return 0, err
			}
			if c >= 0 {
				break
			}
		}
		for {
			j--
			c, err := compare(items[j], pivot)
			if err != nil {
				return 0, err
			}
			if c <= 0 {
				break
			}
		}
		if i >= j {
			return j, nil
		}
		if err := Swap(&items[i], &items[j]); err != nil {
			return 0, err
		}
	}
}

// medianOfThree picks the middle one of a, b, c under the comparator.
func medianOfThree[T any](a, b, c T, compare CompareFunc[T]) (T, error) {
	var zero T
	ab, err := compare(a, b)
	if err != nil {
		return zero, err
	}
	bc, err := compare(b, c)
	if err != nil {
		return zero, err
	}
	if (ab <= 0 && bc <= 0) || (ab >= 0 && bc >= 0) {
		return b, nil
	}
	ac, err := compare(a, c)
	if err != nil {
		return zero, err
	}
	if (ab >= 0 && ac <= 0) || (ab <= 0 && ac >= 0) {
		return a, nil
	}
	return c, nil
}

// SelectionSort sorts items in place by repeatedly swapping the
// smallest remaining element to the front.
func SelectionSort[T any](items []T, compare CompareFunc[T]) error {
	if compare == nil {
		return fmt.Errorf("%w: nil comparator", err_def.ErrInvalidArgument)
	}
	for i := 0; i < len(items)-1; i++ {
		min := i
		for j := i + 1; j < len(items); j++ {
			c, err := compare(items[j], items[min])
			if err != nil {
				return err
			}
			if c < 0 {
				min = j
			}
		}
		if min != i {
			if err := Swap(&items[i], &items[min]); err != nil {
				return err
			}
		}
	}
	return nil
}

// InsertionSort sorts items in place.  Each element walks backward only
// until the first element not greater than it, so an already sorted
// slice costs one comparison per element.
func InsertionSort[T any](items []T, compare CompareFunc[T]) error {
	if compare == nil {
		return fmt.Errorf("%w: nil comparator", err_def.ErrInvalidArgument)
	}
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 {
			c, err := compare(items[j], key)
			if err != nil {
				// Put the key back so an aborted sort still holds
				// every element of its input.
				items[j+1] = key
				return err
			}
			if c <= 0 {
				break
			}
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
	return nil
}
