package aptdb

import (
	"errors"

	. "github.com/dropbox/godropbox/gocheck2"
	. "gopkg.in/check.v1"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

type PredicateSuite struct{}

var _ = Suite(&PredicateSuite{})

func (s *PredicateSuite) TestIDEquals(c *C) {
	match := IDEquals(7)

	a := validListing()
	ok, err := match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsTrue)

	a.ID = 8
	ok, err = match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsFalse)

	a.Address = ""
	_, err = match(a)
	c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue)
}

func (s *PredicateSuite) TestInCostRangeWithRoomsCount(c *C) {
	match := InCostRangeWithRoomsCount(100_000, 200_000, 3)

	cases := []struct {
		cost  float32
		rooms int32
		want  bool
	}{
		{156_000, 3, true},
		{100_000, 3, true},
		{200_000, 3, true},
		{99_000, 3, false},
		{201_000, 3, false},
		{156_000, 2, false},
	}
	for _, tc := range cases {
		a := validListing()
		a.Cost = tc.cost
		a.RoomsCount = tc.rooms
		ok, err := match(a)
		c.Assert(err, IsNil)
		c.Assert(ok, Equals, tc.want, Commentf("cost %.0f rooms %d", tc.cost, tc.rooms))
	}
}

func (s *PredicateSuite) TestAddedAfterAndUnsold(c *C) {
	after := Date{Day: 1, Month: 1, Year: 2023}
	match := AddedAfterAndUnsold(after)

	a := validListing()
	a.Added = Date{Day: 2, Month: 1, Year: 2023}
	ok, err := match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsTrue)

	// The comparison is strict, the boundary date itself does not match.
	a.Added = after
	ok, err = match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsFalse)

	a.Added = Date{Day: 31, Month: 12, Year: 2022}
	ok, err = match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsFalse)

	a.Added = Date{Day: 2, Month: 1, Year: 2023}
	a.Sold = true
	ok, err = match(a)
	c.Assert(err, IsNil)
	c.Assert(ok, IsFalse)
}
