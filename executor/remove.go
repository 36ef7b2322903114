package executor

import (
	"fmt"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/database"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Remove deletes the record carrying id.
func Remove(path string, id int32) error {
	if id <= 0 {
		return fmt.Errorf("%w: identifier %d", err_def.ErrInvalidArgument, id)
	}
	unused, err := database.IDIsUnused(path, id)
	if err != nil {
		return err
	}
	if unused {
		return fmt.Errorf("%w: identifier %d", err_def.ErrNotFound, id)
	}
	matchesID := aptdb.IDEquals(id)
	return bin_file.RemoveMatching(path, aptdb.RecordWidth, func(block []byte) (bool, error) {
		record, err := aptdb.UnmarshalApartment(block)
		if err != nil {
			return false, err
		}
		return matchesID(record)
	})
}
