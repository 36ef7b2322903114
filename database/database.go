// Package database is the record layer over the flat file: bulk load,
// identifier lookup, and unique identifier generation.
package database

import (
	"errors"
	"fmt"
	"math"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/algo"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// LoadAll reads and decodes every record in the file, in file order.
func LoadAll(path string) ([]aptdb.Apartment, error) {
	data, err := bin_file.ReadAll(path)
	if err != nil {
		return nil, err
	}
	if len(data)%aptdb.RecordWidth != 0 {
		return nil, fmt.Errorf("%w: %s holds %d bytes, not a multiple of %d",
			err_def.ErrCorruption, path, len(data), aptdb.RecordWidth)
	}
	records := make([]aptdb.Apartment, 0, len(data)/aptdb.RecordWidth)
	for start := 0; start < len(data); start += aptdb.RecordWidth {
		record, err := aptdb.UnmarshalApartment(data[start : start+aptdb.RecordWidth])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// GetByID returns the single record carrying id.  Zero matches is
// ErrNotFound.  Several matches break the uniqueness invariant and
// yield ErrConflict rather than an arbitrary one of the records.
func GetByID(path string, id int32) (aptdb.Apartment, error) {
	if id <= 0 {
		return aptdb.Apartment{}, fmt.Errorf("%w: identifier %d", err_def.ErrInvalidArgument, id)
	}
	records, err := LoadAll(path)
	if err != nil {
		return aptdb.Apartment{}, err
	}
	found, err := algo.PredicateSearch(records, aptdb.IDEquals(id))
	if err != nil {
		return aptdb.Apartment{}, err
	}
	switch len(found) {
	case 0:
		return aptdb.Apartment{}, fmt.Errorf("%w: identifier %d", err_def.ErrNotFound, id)
	case 1:
		return found[0], nil
	default:
		return aptdb.Apartment{}, fmt.Errorf("%w: %d records carry identifier %d",
			err_def.ErrConflict, len(found), id)
	}
}

// IDIsUnused reports whether no record carries id.
func IDIsUnused(path string, id int32) (bool, error) {
	_, err := GetByID(path, id)
	if errors.Is(err, err_def.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// GenerateUniqueID returns the smallest positive identifier no current
// record carries: it sorts a copy of the records by identifier and
// walks upward from 1 past every consecutively taken value.
func GenerateUniqueID(path string) (int32, error) {
	records, err := LoadAll(path)
	if err != nil {
		return 0, err
	}
	sorted := make([]aptdb.Apartment, len(records))
	copy(sorted, records)
	if err := algo.Quicksort(sorted, aptdb.CompareByID); err != nil {
		return 0, err
	}
	next := int32(1)
	for _, record := range sorted {
		if record.ID < next {
			continue
		}
		if record.ID > next {
			break
		}
		if next == math.MaxInt32 {
			return 0, fmt.Errorf("%w: identifier space exhausted", err_def.ErrSizeOverflow)
		}
		next++
	}
	return next, nil
}
