// Package movavg computes trailing moving averages over ordered series.
package movavg

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Average creates a new series containing the trailing moving average of the
// source series. For each period at or after the skip boundary, the window is
// the half-open serial interval (serial-periodCount, serial]: membership is
// decided by serial distance, not point count, so a series with gaps can have
// fewer than periodCount points in a window. Missing values stay out of both
// the sum and the count; a window with no present values yields a missing
// item. The first skip periods of the series produce no output at all.
func Average(source *timeseries.Series, name string, periodCount, skip int) (*timeseries.Series, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if periodCount < 1 {
		return nil, fmt.Errorf("%w: periodCount must be >= 1, got %d", ErrInvalidArgument, periodCount)
	}
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0, got %d", ErrInvalidArgument, skip)
	}

	result := timeseries.New(name)
	if source.Len() == 0 {
		return result, nil
	}

	first := source.Items[0].Serial + int64(skip)

	window := deque.New[timeseries.Item]()
	for _, item := range source.Items {
		window.PushBack(item)

		// Strictly ascending serials also cap the window at periodCount
		// stored points.
		limit := item.Serial - int64(periodCount)
		for window.Len() > periodCount || window.Front().Serial <= limit {
			window.PopFront()
		}

		if item.Serial < first {
			continue
		}

		sum, n := windowStats(window, func(it timeseries.Item) (float64, bool) {
			return it.Value.Float64, it.Value.Valid
		})
		if n > 0 {
			result.AddValue(item.Serial, sum/float64(n))
		} else {
			result.AddMissing(item.Serial)
		}
	}
	return result, nil
}

// AverageByPoints creates a new series containing the trailing moving average
// over exactly pointCount consecutive stored points, irrespective of the
// serial distance between them. The first emission happens once the window
// fills, at the pointCount-th point. The source must have no missing values:
// this algorithm has no gap handling, so a missing value fails with
// ErrMissingValue rather than corrupting the rolling sum.
func AverageByPoints(source *timeseries.Series, name string, pointCount int) (*timeseries.Series, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if pointCount < 2 {
		return nil, fmt.Errorf("%w: pointCount must be >= 2, got %d", ErrInvalidArgument, pointCount)
	}

	result := timeseries.New(name)
	rollingSum := 0.0
	for i, item := range source.Items {
		if !item.Value.Valid {
			return nil, fmt.Errorf("%w: at serial %d", ErrMissingValue, item.Serial)
		}
		rollingSum += item.Value.Float64

		switch {
		case i > pointCount-1:
			rollingSum -= source.Items[i-pointCount].Value.Float64
			result.AddValue(item.Serial, rollingSum/float64(pointCount))
		case i == pointCount-1:
			result.AddValue(item.Serial, rollingSum/float64(pointCount))
		}
	}
	return result, nil
}
