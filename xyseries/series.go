// Package xyseries provides X/Y coordinate series containers.
package xyseries

import "errors"

// Value is an optional Y observation. The zero Value is missing.
type Value struct {
	Float64 float64
	Valid   bool
}

// NewValue returns a present Value.
func NewValue(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Item is a single point: an X position and an optional Y value.
type Item struct {
	X float64
	Y Value
}

// Series is an ordered sequence of points. Items must be held in strictly
// increasing X order with no duplicate positions; Add documents but does not
// enforce this.
type Series struct {
	Name  string
	Items []Item
}

// New creates an empty series with the given name.
func New(name string) *Series {
	return &Series{Name: name}
}

// FromPoints creates a series from parallel X and Y slices.
func FromPoints(name string, xs, ys []float64) (*Series, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("xs and ys must have the same length")
	}
	s := &Series{
		Name:  name,
		Items: make([]Item, len(xs)),
	}
	for i := range xs {
		s.Items[i] = Item{X: xs[i], Y: NewValue(ys[i])}
	}
	return s, nil
}

// Len returns the number of points, missing values included.
func (s *Series) Len() int {
	return len(s.Items)
}

// Add appends a point. The X position must be greater than the last position
// in the series.
func (s *Series) Add(x float64, y Value) {
	s.Items = append(s.Items, Item{X: x, Y: y})
}

// AddValue appends a point with a present Y value.
func (s *Series) AddValue(x, y float64) {
	s.Add(x, NewValue(y))
}

// AddMissing appends a point with a missing Y value.
func (s *Series) AddMissing(x float64) {
	s.Add(x, Value{})
}

// X returns the position of the i-th point.
func (s *Series) X(i int) float64 {
	return s.Items[i].X
}

// Y returns the value of the i-th point.
func (s *Series) Y(i int) Value {
	return s.Items[i].Y
}

// ValidCount returns the number of present Y values.
func (s *Series) ValidCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Y.Valid {
			n++
		}
	}
	return n
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
