package aptdb

import (
	"fmt"
	"math"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Comparators for the generic search and sort algorithms.  Matching the
// rest of the store, every comparator validates both records before
// ordering them, so a corrupted record fails the first operation that
// touches it instead of being silently mis-sorted.

func validRecord(a Apartment) error {
	if !a.IsValid() {
		return fmt.Errorf("%w: invalid record %v", err_def.ErrInvalidArgument, a)
	}
	return nil
}

func bothValid(a, b Apartment) error {
	if err := validRecord(a); err != nil {
		return err
	}
	return validRecord(b)
}

func compareInt32(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat32(a, b, epsilon float32) int {
	if float32(math.Abs(float64(a-b))) <= epsilon {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// CompareByID orders records by identifier.
func CompareByID(a, b Apartment) (int, error) {
	if err := bothValid(a, b); err != nil {
		return 0, err
	}
	return compareInt32(a.ID, b.ID), nil
}

// CompareByRoomsCount orders records by number of rooms.
func CompareByRoomsCount(a, b Apartment) (int, error) {
	if err := bothValid(a, b); err != nil {
		return 0, err
	}
	return compareInt32(a.RoomsCount, b.RoomsCount), nil
}

// CompareByCost orders records by cost; costs within CostEpsilon of
// each other count as equal.
func CompareByCost(a, b Apartment) (int, error) {
	if err := bothValid(a, b); err != nil {
		return 0, err
	}
	return compareFloat32(a.Cost, b.Cost, CostEpsilon), nil
}

// CompareByArea orders records by area; areas within AreaEpsilon of
// each other count as equal.
func CompareByArea(a, b Apartment) (int, error) {
	if err := bothValid(a, b); err != nil {
		return 0, err
	}
	return compareFloat32(a.Area, b.Area, AreaEpsilon), nil
}

// CompareByAdditionDate orders records chronologically by the date they
// were added.
func CompareByAdditionDate(a, b Apartment) (int, error) {
	if err := bothValid(a, b); err != nil {
		return 0, err
	}
	return a.Added.Compare(b.Added), nil
}
