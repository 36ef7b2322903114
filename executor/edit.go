package executor

import (
	"fmt"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Edit replaces the record carrying id with replacement, which may
// carry a different identifier (Add reassigns it if it collides).  The
// removal and the re-add are two separate file rewrites; a failure
// between them loses the original record.
func Edit(path string, id int32, replacement aptdb.Apartment) error {
	if !replacement.IsValid() {
		return fmt.Errorf("%w: refusing to store invalid record %v",
			err_def.ErrInvalidArgument, replacement)
	}
	if err := Remove(path, id); err != nil {
		return err
	}
	return Add(path, replacement)
}
