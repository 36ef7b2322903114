package executor

import (
	"fmt"
	"math"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/algo"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/database"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// The algorithm behind each sort differs on purpose: the store keeps
// one of each kind in use.

// SortByCost rewrites the file with its records quicksorted by cost,
// cheapest first.
func SortByCost(path string) error {
	return sortAndRewrite(path, algo.Quicksort[aptdb.Apartment], aptdb.CompareByCost)
}

// SortByArea rewrites the file with its records selection sorted by
// area, smallest first.
func SortByArea(path string) error {
	return sortAndRewrite(path, algo.SelectionSort[aptdb.Apartment], aptdb.CompareByArea)
}

// SortByAdditionDate rewrites the file with its records insertion
// sorted by addition date, oldest first.
func SortByAdditionDate(path string) error {
	return sortAndRewrite(path, algo.InsertionSort[aptdb.Apartment], aptdb.CompareByAdditionDate)
}

type sortFunc func([]aptdb.Apartment, algo.CompareFunc[aptdb.Apartment]) error

// sortAndRewrite loads the whole file, sorts the records in memory,
// then truncates the file and re-appends the sorted array in full.
func sortAndRewrite(path string, sort sortFunc, compare algo.CompareFunc[aptdb.Apartment]) error {
	records, err := database.LoadAll(path)
	if err != nil {
		return err
	}
	if err := sort(records, compare); err != nil {
		return err
	}
	data, err := encodeAll(records)
	if err != nil {
		return err
	}
	if err := bin_file.Create(path, true); err != nil {
		return err
	}
	return bin_file.Append(path, data)
}

// encodeAll concatenates the on-disk form of every record.
func encodeAll(records []aptdb.Apartment) ([]byte, error) {
	if len(records) > math.MaxInt/aptdb.RecordWidth {
		return nil, fmt.Errorf("%w: %d records do not fit in one buffer",
			err_def.ErrSizeOverflow, len(records))
	}
	data := make([]byte, 0, len(records)*aptdb.RecordWidth)
	for _, record := range records {
		block, err := aptdb.MarshalApartment(record)
		if err != nil {
			return nil, err
		}
		data = append(data, block...)
	}
	return data, nil
}
