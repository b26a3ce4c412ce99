// Package movavg computes trailing moving averages over ordered numeric
// series.
//
// All functions are pure: the source is read-only, the result is freshly
// allocated, and identical inputs always produce identical outputs.
//
// # Period Windows
//
// Average windows by serial distance, so calendar gaps shrink the window
// rather than stretching it:
//
//	smoothed, err := movavg.Average(series, "demand (12m)", 12, 0)
//
// Each result item sits at a source period; its value is the mean of the
// present values in the trailing 12-serial window, or missing if that window
// holds none. Periods before firstSerial+skip are not emitted at all.
//
// # Point-Count Windows
//
// Average exactly pointCount consecutive stored points, ignoring how far
// apart they are:
//
//	smoothed, err := movavg.AverageByPoints(series, "demand (30pt)", 30)
//
// The window emits from the moment it first fills, so the result has
// max(0, n-pointCount+1) items. The source must be gap-free; a missing value
// fails with ErrMissingValue.
//
// # Coordinate Windows
//
// The X/Y analogue of the period window, with real-valued width and skip:
//
//	smoothed, err := movavg.AverageXY(series, "sensor (0.5s)", 0.5, 0)
//
// Window membership is decided purely by X distance. A window may hold any
// number of points, so a dense region averages over more of them.
//
// # Collections
//
// Smooth every series in a collection, deriving names with a suffix:
//
//	result, err := movavg.AverageCollection(coll, " (smoothed)", 12, 0)
//	result, err := movavg.AverageXYCollection(coll, " (smoothed)", 0.5, 0)
//
// # Errors
//
// A nil source fails with ErrNilSource; out-of-domain parameters fail with
// errors wrapping ErrInvalidArgument before any scanning happens. A missing
// value is a valid averaging outcome, never an error, except in
// AverageByPoints where it fails with ErrMissingValue.
package movavg
