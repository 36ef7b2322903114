package algo

import (
	"errors"

	. "github.com/dropbox/godropbox/gocheck2"
	"github.com/dropbox/godropbox/math2/rand2"
	. "gopkg.in/check.v1"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

type SortSuite struct{}

var _ = Suite(&SortSuite{})

var sortsUnderTest = []struct {
	name string
	run  func([]int, CompareFunc[int]) error
}{
	{"quicksort", Quicksort[int]},
	{"selection sort", SelectionSort[int]},
	{"insertion sort", InsertionSort[int]},
}

func counted(items []int) map[int]int {
	counts := make(map[int]int)
	for _, v := range items {
		counts[v]++
	}
	return counts
}

// checkSorts runs every sort on its own copy of input and checks that
// the result is a non-decreasing permutation of the input.
func checkSorts(c *C, input []int) {
	for _, sorter := range sortsUnderTest {
		items := make([]int, len(input))
		copy(items, input)

		err := sorter.run(items, compareInts)
		c.Assert(err, IsNil, Commentf("%s on %v", sorter.name, input))
		for i := 1; i < len(items); i++ {
			c.Assert(items[i-1] <= items[i], IsTrue,
				Commentf("%s on %v gave %v", sorter.name, input, items))
		}
		c.Assert(counted(items), DeepEquals, counted(input),
			Commentf("%s on %v gave %v", sorter.name, input, items))
	}
}

func (s *SortSuite) TestSortsOrderFixedInputs(c *C) {
	checkSorts(c, nil)
	checkSorts(c, []int{1})
	checkSorts(c, []int{2, 1})
	checkSorts(c, []int{3, 1, 2})
	checkSorts(c, []int{5, 5, 5, 5})
	checkSorts(c, []int{1, 2, 3, 4, 5, 6})
	checkSorts(c, []int{9, 8, 7, 6, 5, 4, 3, 2, 1})
	checkSorts(c, []int{2, 1, 2, 1, 2, 1, 2})
}

func (s *SortSuite) TestSortsOrderRandomInputs(c *C) {
	for trial := 0; trial < 30; trial++ {
		items := make([]int, rand2.Intn(200))
		for i := range items {
			items[i] = rand2.Intn(50)
		}
		checkSorts(c, items)
	}
}

func (s *SortSuite) TestNilComparator(c *C) {
	for _, sorter := range sortsUnderTest {
		err := sorter.run([]int{2, 1}, nil)
		c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue, Commentf("%s", sorter.name))
	}
}

// A comparator failure aborts the sort, and whatever order the abort
// leaves behind, no element may be lost or duplicated.
func (s *SortSuite) TestComparatorErrorAborts(c *C) {
	input := []int{4, 2, 7, 2, 9, 1}
	for _, sorter := range sortsUnderTest {
		items := make([]int, len(input))
		copy(items, input)

		err := sorter.run(items, failOn(7))
		c.Assert(err, Equals, errBadElement, Commentf("%s", sorter.name))
		c.Assert(counted(items), DeepEquals, counted(input), Commentf("%s left %v", sorter.name, items))
	}
}

func (s *SortSuite) TestSwap(c *C) {
	a, b := 1, 2
	c.Assert(Swap(&a, &b), IsNil)
	c.Assert(a, Equals, 2)
	c.Assert(b, Equals, 1)

	err := Swap[int](nil, &b)
	c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue)
	err = Swap(&a, (*int)(nil))
	c.Assert(errors.Is(err, err_def.ErrInvalidArgument), IsTrue)
}
