package timeseries

// Collection is an ordered set of series keyed by name. Series are kept in
// insertion order, which derived collections preserve one-for-one.
type Collection struct {
	series []*Series
	byName map[string]int
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]int)}
}

// Add appends a series to the collection.
func (c *Collection) Add(s *Series) {
	c.byName[s.Name] = len(c.series)
	c.series = append(c.series, s)
}

// Len returns the number of series in the collection.
func (c *Collection) Len() int {
	return len(c.series)
}

// Series returns the i-th series in insertion order.
func (c *Collection) Series(i int) *Series {
	return c.series[i]
}

// ByName returns the series with the given name, if present.
func (c *Collection) ByName(name string) (*Series, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.series[i], true
}

// Names returns the series names in insertion order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.series))
	for i, s := range c.series {
		names[i] = s.Name
	}
	return names
}
