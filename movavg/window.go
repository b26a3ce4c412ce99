package movavg

import "github.com/gammazero/deque"

// windowStats sums the present values currently held in a window. Summing the
// window directly on each emission keeps results independent of eviction
// history, which an incremental running sum cannot guarantee in floating
// point.
func windowStats[T any](window *deque.Deque[T], value func(T) (float64, bool)) (float64, int) {
	sum := 0.0
	n := 0
	for i := 0; i < window.Len(); i++ {
		if v, ok := value(window.At(i)); ok {
			sum += v
			n++
		}
	}
	return sum, n
}
