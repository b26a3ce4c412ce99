// Package gosmooth provides moving-average smoothing for ordered numeric series.
//
// GoSmooth derives smoothed series from source data using trailing windows. It
// supports two index models: regular time-period series, where observations sit
// in contiguous calendar buckets identified by an integer serial index, and
// irregular X/Y series, where observations sit at arbitrary real-valued X
// positions. Gaps (missing observations) are first-class: a missing value keeps
// its position but contributes to neither the sum nor the count of any window.
//
// # Quick Start
//
// Smooth a monthly series with a trailing 12-period window:
//
//	series := timeseries.FromValues("passengers", start, values)
//	smoothed, err := movavg.Average(series, "passengers (12m)", 12, 0)
//
// Smooth every series in a collection at once:
//
//	result, err := movavg.AverageCollection(source, " (smoothed)", 12, 0)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: period-indexed series, collections, and CSV loading
//   - xyseries: X/Y coordinate series and collections
//   - movavg: the moving average algorithms and collection drivers
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package gosmooth
