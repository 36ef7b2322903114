package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/executor"
)

func main() {
	var flagPath string
	var flagCount int
	flag.StringVar(&flagPath, "path", "apartments.bin", "data file to fill")
	flag.IntVar(&flagCount, "count", 100, "number of random listings to add")
	flag.Parse()
	if flagCount <= 0 {
		log.Fatal("count must be positive")
	}

	if !bin_file.Exists(flagPath) {
		if err := bin_file.Create(flagPath, false); err != nil {
			log.Fatal(err)
		}
	}

	// Each Add re-reads the file to pick the next identifier, so
	// seeding is quadratic; fine for the sizes this tool is for.
	start := time.Now()
	for i := 0; i < flagCount; i++ {
		if err := executor.Add(flagPath, aptdb.RandomApartment()); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("added %d listings to %s in %v\n", flagCount, flagPath, time.Since(start))
}
