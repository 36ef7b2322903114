package aptdb

import "fmt"

// Tolerances for the two real-valued fields.  Costs closer than
// CostEpsilon count as equal, areas closer than AreaEpsilon likewise;
// both also serve as the smallest value the field may hold.
const (
	CostEpsilon float32 = 1e-2
	AreaEpsilon float32 = 1e-1
)

// Apartment is one listing record.
type Apartment struct {
	ID         int32
	Address    string
	RoomsCount int32
	Area       float32
	Floor      int32
	Cost       float32
	Sold       bool
	Added      Date
}

// IsValid reports whether the record may be persisted.  An ID of 0 is
// allowed in memory; Add assigns a real identifier before the write, so
// stored records always carry a positive one.
func (a Apartment) IsValid() bool {
	return a.ID >= 0 &&
		len(a.Address) > 0 && len(a.Address) <= MaxAddressLen &&
		a.RoomsCount > 0 &&
		a.Area >= AreaEpsilon &&
		a.Floor > 0 &&
		a.Cost >= CostEpsilon &&
		a.Added.IsValid()
}

// Equals reports whether two records hold exactly the same field
// values, identifier included.
func (a Apartment) Equals(other Apartment) bool {
	return a == other
}

func (a Apartment) String() string {
	status := "for sale"
	if a.Sold {
		status = "sold"
	}
	return fmt.Sprintf("#%d %s | %d room(s) | %.1f m2 | floor %d | %.2f | %s | added %v",
		a.ID, a.Address, a.RoomsCount, a.Area, a.Floor, a.Cost, status, a.Added)
}
