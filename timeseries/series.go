// Package timeseries provides period-indexed series containers.
package timeseries

// Value is an optional observation. The zero Value is missing; a missing value
// occupies its position in a series but is excluded from sums and counts.
type Value struct {
	Float64 float64
	Valid   bool
}

// NewValue returns a present Value.
func NewValue(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Item is a single observation: a period's serial index and an optional value.
type Item struct {
	Serial int64
	Value  Value
}

// Series is an ordered sequence of period-indexed observations. Items must be
// held in strictly increasing serial order with no duplicates; Add documents
// but does not enforce this, ordering is the builder's obligation.
type Series struct {
	Name  string
	Items []Item
}

// New creates an empty series with the given name.
func New(name string) *Series {
	return &Series{Name: name}
}

// FromValues creates a gap-free series with consecutive serials starting at
// startSerial.
func FromValues(name string, startSerial int64, values []float64) *Series {
	s := &Series{
		Name:  name,
		Items: make([]Item, len(values)),
	}
	for i, v := range values {
		s.Items[i] = Item{Serial: startSerial + int64(i), Value: NewValue(v)}
	}
	return s
}

// Len returns the number of items, missing values included.
func (s *Series) Len() int {
	return len(s.Items)
}

// Add appends an item. The serial must be greater than the last serial in the
// series.
func (s *Series) Add(serial int64, v Value) {
	s.Items = append(s.Items, Item{Serial: serial, Value: v})
}

// AddValue appends a present observation.
func (s *Series) AddValue(serial int64, f float64) {
	s.Add(serial, NewValue(f))
}

// AddMissing appends a missing observation.
func (s *Series) AddMissing(serial int64) {
	s.Add(serial, Value{})
}

// Serial returns the serial index of the i-th item.
func (s *Series) Serial(i int) int64 {
	return s.Items[i].Serial
}

// Value returns the value of the i-th item.
func (s *Series) Value(i int) Value {
	return s.Items[i].Value
}

// ValidCount returns the number of present values.
func (s *Series) ValidCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Value.Valid {
			n++
		}
	}
	return n
}

// Mean calculates the arithmetic mean of the present values.
func (s *Series) Mean() float64 {
	sum := 0.0
	n := 0
	for _, it := range s.Items {
		if it.Value.Valid {
			sum += it.Value.Float64
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Items) {
		end = len(s.Items)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}

	items := make([]Item, end-start)
	copy(items, s.Items[start:end])

	return &Series{
		Name:  s.Name,
		Items: items,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	return &Series{
		Name:  s.Name,
		Items: items,
	}
}
