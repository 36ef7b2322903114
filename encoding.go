package aptdb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dropbox/godropbox/errors"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// ByteOrder is the endianness of every multi-byte field on disk.
var ByteOrder = binary.LittleEndian

const (
	// MaxAddressLen bounds the address field.  Shorter addresses are
	// zero-padded on disk.
	MaxAddressLen = 256

	// RecordWidth is the exact on-disk size of one record; the data
	// file's length must always be a multiple of it.  Layout, in
	// declaration order: id, address, rooms count, area, floor, cost,
	// sold flag, addition date as day/month/year.
	RecordWidth = 4 + MaxAddressLen + 4 + 4 + 4 + 4 + 1 + 3*4
)

// MarshalApartment encodes a into its fixed-width on-disk form.
// Invalid records are refused so they can never reach the file.
func MarshalApartment(a Apartment) ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("%w: refusing to encode invalid record %v",
			err_def.ErrInvalidArgument, a)
	}
	var address [MaxAddressLen]byte
	copy(address[:], a.Address)
	buf := bytes.NewBuffer(make([]byte, 0, RecordWidth))
	for _, field := range []interface{}{
		a.ID,
		address,
		a.RoomsCount,
		a.Area,
		a.Floor,
		a.Cost,
		a.Sold,
		a.Added.Day,
		a.Added.Month,
		a.Added.Year,
	} {
		if err := binary.Write(buf, ByteOrder, field); err != nil {
			return nil, errors.Wrap(err, "encode apartment record")
		}
	}
	if buf.Len() != RecordWidth {
		return nil, errors.Newf("encoded %d bytes, expected %d", buf.Len(), RecordWidth)
	}
	return buf.Bytes(), nil
}

// UnmarshalApartment decodes one fixed-width record block.  Field
// values are taken as stored; whether they form a valid record is
// checked by the comparators and predicates that inspect them.
func UnmarshalApartment(block []byte) (Apartment, error) {
	if len(block) != RecordWidth {
		return Apartment{}, fmt.Errorf("%w: record block holds %d bytes, want %d",
			err_def.ErrInvalidArgument, len(block), RecordWidth)
	}
	var (
		a       Apartment
		address [MaxAddressLen]byte
	)
	r := bytes.NewReader(block)
	for _, field := range []interface{}{
		&a.ID,
		&address,
		&a.RoomsCount,
		&a.Area,
		&a.Floor,
		&a.Cost,
		&a.Sold,
		&a.Added.Day,
		&a.Added.Month,
		&a.Added.Year,
	} {
		if err := binary.Read(r, ByteOrder, field); err != nil {
			return Apartment{}, errors.Wrap(err, "decode apartment record")
		}
	}
	a.Address = string(bytes.TrimRight(address[:], "\x00"))
	return a, nil
}
