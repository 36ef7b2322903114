// Package bin_file stores fixed-width records as a raw byte sequence
// in a single flat file: no header, no index, insertion order.  The
// store assumes one writer per path; an advisory lock next to the data
// file makes that assumption explicit for cooperating processes.
package bin_file

import (
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Predicate classifies one fixed-width record block.
type Predicate func(record []byte) (bool, error)

const filePerm = 0644

// withFileLock runs op while holding the advisory lock for path.  Every
// public operation takes the lock exactly once, for its full duration,
// and never nests.
func withFileLock(path string, op func() error) error {
	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("%w: lock %s: %w", err_def.ErrIO, path, err)
	}
	defer fl.Unlock()
	return op()
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create makes an empty file at path.  An existing file is refused
// unless overwrite is set, in which case it is truncated.
func Create(path string, overwrite bool) error {
	return withFileLock(path, func() error {
		if !overwrite && Exists(path) {
			return fmt.Errorf("%w: %s", err_def.ErrAlreadyExists, path)
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
		if err != nil {
			return fmt.Errorf("%w: create %s: %w", err_def.ErrIO, path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: close %s: %w", err_def.ErrIO, path, err)
		}
		return nil
	})
}

// ReadAll returns the file's entire contents.  An empty file yields an
// empty slice, not an error.
func ReadAll(path string) ([]byte, error) {
	var data []byte
	err := withFileLock(path, func() error {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", err_def.ErrIO, path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Append writes data at the end of an existing file.  Append never
// creates the file.
func Append(path string, data []byte) error {
	return withFileLock(path, func() error {
		f, err := os.OpenFile(path, os.O_RDWR, filePerm)
		if err != nil {
			return fmt.Errorf("%w: open %s: %w", err_def.ErrIO, path, err)
		}
		defer f.Close()
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			return fmt.Errorf("%w: seek %s: %w", err_def.ErrIO, path, err)
		}
		if err := writeFully(f, data); err != nil {
			return fmt.Errorf("%w: append %s: %w", err_def.ErrIO, path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: close %s: %w", err_def.ErrIO, path, err)
		}
		return nil
	})
}

// writeFully loops until every byte is written or the write fails.
func writeFully(f *os.File, data []byte) error {
	for len(data) > 0 {
		n, err := f.Write(data)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}

// RemoveMatching deletes every width-sized record the predicate
// matches, keeping the survivors in their original order.  The file is
// read whole, truncated, and rewritten; that protocol is not atomic, so
// a crash between the truncate and the rewrite loses records.  The
// predicate runs over every record before anything is written, which
// leaves the file untouched when the predicate fails.
func RemoveMatching(path string, width int, match Predicate) error {
	if width <= 0 {
		return fmt.Errorf("%w: record width %d", err_def.ErrInvalidArgument, width)
	}
	if match == nil {
		return fmt.Errorf("%w: nil predicate", err_def.ErrInvalidArgument)
	}
	return withFileLock(path, func() error {
		f, err := os.OpenFile(path, os.O_RDWR, filePerm)
		if err != nil {
			return fmt.Errorf("%w: open %s: %w", err_def.ErrIO, path, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", err_def.ErrIO, path, err)
		}
		if len(data)%width != 0 {
			return fmt.Errorf("%w: %s holds %d bytes, not a multiple of %d",
				err_def.ErrCorruption, path, len(data), width)
		}
		survivors := make([]byte, 0, len(data))
		for start := 0; start < len(data); start += width {
			record := data[start : start+width]
			matched, err := match(record)
			if err != nil {
				return err
			}
			if !matched {
				survivors = append(survivors, record...)
			}
		}
		if err := f.Truncate(0); err != nil {
			return fmt.Errorf("%w: truncate %s: %w", err_def.ErrIO, path, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("%w: seek %s: %w", err_def.ErrIO, path, err)
		}
		if err := writeFully(f, survivors); err != nil {
			return fmt.Errorf("%w: rewrite %s: %w", err_def.ErrIO, path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: close %s: %w", err_def.ErrIO, path, err)
		}
		return nil
	})
}
