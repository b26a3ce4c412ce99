// Package timeseries provides period-indexed series containers and utilities.
//
// A series is an ordered sequence of items, each pairing a period's serial
// index with an optional value. Serial indices are integers that uniquely and
// monotonically identify calendar periods of one granularity, so the distance
// between two serials is the number of periods between them. A missing value
// keeps its position slot but is excluded from sums and counts.
//
// # Creating a Series
//
// Create a gap-free series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.FromValues("demand", 0, values)
//
// Or build one item by item, serials ascending:
//
//	series := timeseries.New("demand")
//	series.AddValue(0, 100)
//	series.AddMissing(1) // gap
//	series.AddValue(2, 105)
//
// # Calendar Periods
//
// Derive serial indices from timestamps:
//
//	serial := timeseries.SerialIndex(t, timeseries.Month)
//	series.AddValue(serial, v)
//
// # Loading from CSV
//
// Load series data from CSV files:
//
//	// Load a specific column
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "passengers"
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
//	// Load every series, grouped by ID column
//	coll, err := timeseries.LoadCSVGrouped("data.csv", opts)
//
// Empty, NA, NaN and null cells load as missing items, preserving gaps.
//
// # Collections
//
// Group related series, preserving insertion order:
//
//	coll := timeseries.NewCollection()
//	coll.Add(series)
//	s, ok := coll.ByName("demand")
package timeseries
