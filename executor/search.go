package executor

import (
	"fmt"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/algo"
	"github.com/vashv1lass/BAaP-labs/database"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// probeRecord returns a valid record for use as a comparison target;
// each search overwrites the one field it compares by.  The comparators
// validate both of their arguments, so the target must be a fully valid
// record, not a zero value.
func probeRecord() aptdb.Apartment {
	return aptdb.Apartment{
		Address:    "-",
		RoomsCount: 1,
		Area:       aptdb.AreaEpsilon,
		Floor:      1,
		Cost:       aptdb.CostEpsilon,
		Added:      aptdb.Date{Day: 1, Month: 1, Year: 2000},
	}
}

// SearchByCost returns every record whose cost equals cost to within
// CostEpsilon, in file order.
func SearchByCost(path string, cost float32) ([]aptdb.Apartment, error) {
	records, err := database.LoadAll(path)
	if err != nil {
		return nil, err
	}
	target := probeRecord()
	target.Cost = cost
	return algo.LinearSearch(records, target, aptdb.CompareByCost)
}

// SearchByRoomsCount returns every record with exactly roomsCount
// rooms.  Lookup happens by sorting a copy of the records and binary
// searching it, so the result's order matches the sort, not the file.
func SearchByRoomsCount(path string, roomsCount int32) ([]aptdb.Apartment, error) {
	records, err := database.LoadAll(path)
	if err != nil {
		return nil, err
	}
	sorted := make([]aptdb.Apartment, len(records))
	copy(sorted, records)
	if err := algo.Quicksort(sorted, aptdb.CompareByRoomsCount); err != nil {
		return nil, err
	}
	target := probeRecord()
	target.RoomsCount = roomsCount
	return algo.BinarySearch(sorted, target, aptdb.CompareByRoomsCount)
}

// SearchByCostRangeAndRooms returns the records costing between lo and
// hi (inclusive) with exactly roomsCount rooms, ordered by addition
// date, oldest first.
func SearchByCostRangeAndRooms(path string, lo, hi float32, roomsCount int32) ([]aptdb.Apartment, error) {
	records, err := database.LoadAll(path)
	if err != nil {
		return nil, err
	}
	found, err := algo.PredicateSearch(records, aptdb.InCostRangeWithRoomsCount(lo, hi, roomsCount))
	if err != nil {
		return nil, err
	}
	if err := algo.InsertionSort(found, aptdb.CompareByAdditionDate); err != nil {
		return nil, err
	}
	return found, nil
}

// SearchNewestFree returns the unsold records added strictly after the
// given date, in file order.
func SearchNewestFree(path string, after aptdb.Date) ([]aptdb.Apartment, error) {
	if !after.IsValid() {
		return nil, fmt.Errorf("%w: no such calendar date %v", err_def.ErrInvalidArgument, after)
	}
	records, err := database.LoadAll(path)
	if err != nil {
		return nil, err
	}
	return algo.PredicateSearch(records, aptdb.AddedAfterAndUnsold(after))
}
