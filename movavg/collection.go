package movavg

import (
	"github.com/sartorproj/gosmooth/timeseries"
	"github.com/sartorproj/gosmooth/xyseries"
)

// AverageCollection applies Average to every series in the source collection.
// Each derived series is named by appending suffix to the source name, and
// the result collection holds the derived series in source order. The first
// failing series aborts the whole operation; no partial collection is
// returned.
func AverageCollection(source *timeseries.Collection, suffix string, periodCount, skip int) (*timeseries.Collection, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	result := timeseries.NewCollection()
	for i := 0; i < source.Len(); i++ {
		src := source.Series(i)
		avg, err := Average(src, src.Name+suffix, periodCount, skip)
		if err != nil {
			return nil, err
		}
		result.Add(avg)
	}
	return result, nil
}

// AverageXYCollection applies AverageXY to every series in the source
// collection, with the same naming and abort semantics as AverageCollection.
func AverageXYCollection(source *xyseries.Collection, suffix string, period, skip float64) (*xyseries.Collection, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	result := xyseries.NewCollection()
	for i := 0; i < source.Len(); i++ {
		src := source.Series(i)
		avg, err := AverageXY(src, src.Name+suffix, period, skip)
		if err != nil {
			return nil, err
		}
		result.Add(avg)
	}
	return result, nil
}
