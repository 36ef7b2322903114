package aptdb

// Predicate constructors for the record searches.  Matching context is
// captured in the returned closure; like the comparators, every
// predicate validates the record it inspects.

// IDEquals matches the record carrying the given identifier.
func IDEquals(id int32) func(Apartment) (bool, error) {
	return func(a Apartment) (bool, error) {
		if err := validRecord(a); err != nil {
			return false, err
		}
		return a.ID == id, nil
	}
}

// InCostRangeWithRoomsCount matches records costing between lo and hi
// (bounds inclusive, within CostEpsilon) with exactly roomsCount rooms.
func InCostRangeWithRoomsCount(lo, hi float32, roomsCount int32) func(Apartment) (bool, error) {
	return func(a Apartment) (bool, error) {
		if err := validRecord(a); err != nil {
			return false, err
		}
		inRange := a.Cost >= lo-CostEpsilon && a.Cost <= hi+CostEpsilon
		return inRange && a.RoomsCount == roomsCount, nil
	}
}

// AddedAfterAndUnsold matches unsold records added strictly after the
// given date.
func AddedAfterAndUnsold(after Date) func(Apartment) (bool, error) {
	return func(a Apartment) (bool, error) {
		if err := validRecord(a); err != nil {
			return false, err
		}
		return a.Added.After(after) && !a.Sold, nil
	}
}
