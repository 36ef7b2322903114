package aptdb

import (
	"errors"

	. "github.com/dropbox/godropbox/gocheck2"
	. "gopkg.in/check.v1"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

type DateSuite struct{}

var _ = Suite(&DateSuite{})

func (s *DateSuite) TestIsValid(c *C) {
	valid := []Date{
		{Day: 1, Month: 1, Year: 1},
		{Day: 31, Month: 12, Year: 2024},
		{Day: 29, Month: 2, Year: 2024},
		{Day: 29, Month: 2, Year: 2000},
		{Day: 28, Month: 2, Year: 1900},
		{Day: 31, Month: 7, Year: 2023},
		{Day: 30, Month: 4, Year: 2023},
		// Before the calendar reform every fourth year is a leap year.
		{Day: 29, Month: 2, Year: 1500},
		{Day: 29, Month: 2, Year: 1100},
	}
	for _, d := range valid {
		c.Assert(d.IsValid(), IsTrue, Commentf("%v", d))
	}

	invalid := []Date{
		{},
		{Day: 0, Month: 1, Year: 2023},
		{Day: 1, Month: 0, Year: 2023},
		{Day: 1, Month: 1, Year: 0},
		{Day: -3, Month: 5, Year: 2023},
		{Day: 1, Month: 13, Year: 2023},
		{Day: 32, Month: 1, Year: 2023},
		{Day: 31, Month: 4, Year: 2023},
		{Day: 29, Month: 2, Year: 2023},
		{Day: 30, Month: 2, Year: 2024},
		// 1900 is divisible by 100 but not by 400.
		{Day: 29, Month: 2, Year: 1900},
	}
	for _, d := range invalid {
		c.Assert(d.IsValid(), IsFalse, Commentf("%v", d))
	}
}

func (s *DateSuite) TestCompare(c *C) {
	earlier := Date{Day: 14, Month: 3, Year: 2022}
	later := Date{Day: 2, Month: 1, Year: 2023}
	c.Assert(earlier.Compare(later), Equals, -1)
	c.Assert(later.Compare(earlier), Equals, 1)
	c.Assert(earlier.Compare(earlier), Equals, 0)

	// Year dominates month, month dominates day.
	c.Assert(Date{Day: 31, Month: 12, Year: 2022}.Compare(Date{Day: 1, Month: 1, Year: 2023}), Equals, -1)
	c.Assert(Date{Day: 28, Month: 2, Year: 2023}.Compare(Date{Day: 1, Month: 3, Year: 2023}), Equals, -1)
	c.Assert(Date{Day: 9, Month: 6, Year: 2023}.Compare(Date{Day: 8, Month: 6, Year: 2023}), Equals, 1)
}

func (s *DateSuite) TestAfter(c *C) {
	d := Date{Day: 1, Month: 5, Year: 2023}
	c.Assert(d.After(Date{Day: 30, Month: 4, Year: 2023}), IsTrue)
	c.Assert(d.After(d), IsFalse)
	c.Assert(d.After(Date{Day: 2, Month: 5, Year: 2023}), IsFalse)
}

func (s *DateSuite) TestString(c *C) {
	c.Assert(Date{Day: 7, Month: 11, Year: 2023}.String(), Equals, "07.11.2023")
	c.Assert(Date{Day: 31, Month: 12, Year: 999}.String(), Equals, "31.12.0999")
}

func (s *DateSuite) TestParseDate(c *C) {
	d, err := ParseDate("7.11.2023")
	c.Assert(err, IsNil)
	c.Assert(d, Equals, Date{Day: 7, Month: 11, Year: 2023})

	d, err = ParseDate("29.02.2024")
	c.Assert(err, IsNil)
	c.Assert(d, Equals, Date{Day: 29, Month: 2, Year: 2024})

	bad := []string{"", "yesterday", "31.04.2023", "29.2.2023", "1.2", "a.b.c"}
	for _, input := range bad {
		_, err := ParseDate(input)
		c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue, Commentf("%q", input))
	}
}
