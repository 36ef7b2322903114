package aptdb

import (
	"errors"

	. "github.com/dropbox/godropbox/gocheck2"
	. "gopkg.in/check.v1"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

type CompareSuite struct{}

var _ = Suite(&CompareSuite{})

func (s *CompareSuite) TestCompareByID(c *C) {
	a := validListing()
	b := validListing()
	b.ID = a.ID + 5

	cmp, err := CompareByID(a, b)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, -1)

	cmp, err = CompareByID(b, a)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 1)

	cmp, err = CompareByID(a, a)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 0)
}

func (s *CompareSuite) TestCompareByRoomsCount(c *C) {
	smaller := validListing()
	smaller.RoomsCount = 1
	larger := validListing()
	larger.RoomsCount = 4

	cmp, err := CompareByRoomsCount(smaller, larger)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, -1)

	cmp, err = CompareByRoomsCount(larger, smaller)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 1)
}

func (s *CompareSuite) TestCostEpsilonEquality(c *C) {
	a := validListing()
	b := validListing()

	// Costs within the tolerance compare equal.
	b.Cost = a.Cost + CostEpsilon/2
	cmp, err := CompareByCost(a, b)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 0)

	b.Cost = a.Cost + 3
	cmp, err = CompareByCost(a, b)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, -1)

	cmp, err = CompareByCost(b, a)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 1)
}

func (s *CompareSuite) TestAreaEpsilonEquality(c *C) {
	a := validListing()
	b := validListing()

	b.Area = a.Area + AreaEpsilon/2
	cmp, err := CompareByArea(a, b)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 0)

	b.Area = a.Area + 5
	cmp, err = CompareByArea(b, a)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 1)
}

func (s *CompareSuite) TestCompareByAdditionDate(c *C) {
	older := validListing()
	older.Added = Date{Day: 1, Month: 2, Year: 2020}
	newer := validListing()
	newer.Added = Date{Day: 28, Month: 1, Year: 2021}

	cmp, err := CompareByAdditionDate(older, newer)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, -1)

	cmp, err = CompareByAdditionDate(newer, newer)
	c.Assert(err, IsNil)
	c.Assert(cmp, Equals, 0)
}

// Every comparator refuses a record that fails validation, whichever
// side it arrives on.
func (s *CompareSuite) TestInvalidRecordFails(c *C) {
	valid := validListing()
	broken := validListing()
	broken.Floor = 0

	comparators := []func(a, b Apartment) (int, error){
		CompareByID,
		CompareByRoomsCount,
		CompareByCost,
		CompareByArea,
		CompareByAdditionDate,
	}
	for i, compare := range comparators {
		_, err := compare(valid, broken)
		c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue, Commentf("comparator %d", i))
		_, err = compare(broken, valid)
		c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue, Commentf("comparator %d", i))
	}
}
