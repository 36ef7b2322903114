// Package executor implements the operations behind the interactive
// menu: add, edit, remove, the four searches, and the three whole-file
// sorts.
package executor

import (
	"fmt"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/database"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Add appends a record to the file.  An identifier of zero, or one some
// record already carries, is silently replaced with a freshly generated
// unique identifier before the write.
func Add(path string, a aptdb.Apartment) error {
	if !a.IsValid() {
		return fmt.Errorf("%w: refusing to store invalid record %v",
			err_def.ErrInvalidArgument, a)
	}
	needsID := a.ID == 0
	if !needsID {
		unused, err := database.IDIsUnused(path, a.ID)
		if err != nil {
			return err
		}
		needsID = !unused
	}
	if needsID {
		id, err := database.GenerateUniqueID(path)
		if err != nil {
			return err
		}
		a.ID = id
	}
	block, err := aptdb.MarshalApartment(a)
	if err != nil {
		return err
	}
	return bin_file.Append(path, block)
}
