// Package xyseries provides containers for irregular X/Y coordinate data.
//
// Points sit at arbitrary real-valued X positions in strictly increasing
// order; Y values are optional, and a missing Y keeps its position slot. The
// package mirrors the timeseries containers for data that has no calendar
// structure:
//
//	series, err := xyseries.FromPoints("sensor", xs, ys)
//
//	series := xyseries.New("sensor")
//	series.AddValue(0.5, 20.1)
//	series.AddMissing(0.8) // dropout
//
// Collections group series by name in insertion order, exactly as in the
// timeseries package.
package xyseries
