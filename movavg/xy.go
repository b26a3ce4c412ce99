package movavg

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/sartorproj/gosmooth/xyseries"
)

// AverageXY creates a new series containing the trailing moving average of an
// X/Y series. The window for a point at position x is the half-open interval
// (x-period, x] along X; period and skip are real-valued X distances. Unlike
// the period model there is no bound on the number of points a window may
// hold, so dense regions average proportionally more points. Missing Y values
// stay out of both the sum and the count; a window with no present values
// yields a missing item. Points before firstX+skip produce no output.
func AverageXY(source *xyseries.Series, name string, period, skip float64) (*xyseries.Series, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if period <= 0 {
		return nil, fmt.Errorf("%w: period must be positive, got %g", ErrInvalidArgument, period)
	}
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0, got %g", ErrInvalidArgument, skip)
	}

	result := xyseries.New(name)
	if source.Len() == 0 {
		return result, nil
	}

	first := source.Items[0].X + skip

	window := deque.New[xyseries.Item]()
	for _, item := range source.Items {
		window.PushBack(item)

		limit := item.X - period
		for window.Front().X <= limit {
			window.PopFront()
		}

		if item.X < first {
			continue
		}

		sum, n := windowStats(window, func(it xyseries.Item) (float64, bool) {
			return it.Y.Float64, it.Y.Valid
		})
		if n > 0 {
			result.AddValue(item.X, sum/float64(n))
		} else {
			result.AddMissing(item.X)
		}
	}
	return result, nil
}
