package aptdb

import (
	"fmt"

	"github.com/dropbox/godropbox/math2/rand2"
)

var randomStreets = []string{
	"Maple Street",
	"Oak Avenue",
	"Pine Lane",
	"Birch Road",
	"Cedar Court",
	"Elm Boulevard",
	"Willow Drive",
	"Chestnut Square",
}

// RandomApartment returns a valid record with randomized fields and an
// unassigned identifier.  It should only be used in tests and in the
// data seeding tool.
func RandomApartment() Apartment {
	return Apartment{
		ID:         0,
		Address:    fmt.Sprintf("%s, %d", randomStreets[rand2.Intn(len(randomStreets))], 1+rand2.Intn(200)),
		RoomsCount: int32(1 + rand2.Intn(5)),
		Area:       AreaEpsilon + float32(rand2.Intn(1500))/10,
		Floor:      int32(1 + rand2.Intn(24)),
		Cost:       float32(10_000+rand2.Intn(990_000)) + float32(rand2.Intn(100))/100,
		Sold:       rand2.Intn(4) == 0,
		Added:      RandomDate(),
	}
}

// RandomDate returns a valid date between 2015 and 2024.
func RandomDate() Date {
	return Date{
		Day:   int32(1 + rand2.Intn(28)),
		Month: int32(1 + rand2.Intn(12)),
		Year:  int32(2015 + rand2.Intn(10)),
	}
}
