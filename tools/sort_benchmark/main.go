package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"net/http"
	_ "net/http/pprof"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/algo"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	var flagCount int
	flag.IntVar(&flagCount, "count", 20000, "number of random listings to sort")
	flag.Parse()
	if flagCount <= 0 {
		log.Fatal("count must be positive")
	}

	base := make([]aptdb.Apartment, flagCount)
	for i := range base {
		base[i] = aptdb.RandomApartment()
	}

	sorts := []struct {
		name string
		run  func([]aptdb.Apartment, algo.CompareFunc[aptdb.Apartment]) error
	}{
		{"quicksort", algo.Quicksort[aptdb.Apartment]},
		{"selection sort", algo.SelectionSort[aptdb.Apartment]},
		{"insertion sort", algo.InsertionSort[aptdb.Apartment]},
	}
	for _, s := range sorts {
		items := make([]aptdb.Apartment, len(base))
		copy(items, base)
		start := time.Now()
		if err := s.run(items, aptdb.CompareByCost); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %d records by cost in %v\n", s.name, len(items), time.Since(start))
	}
}
