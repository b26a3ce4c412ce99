package timeseries

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	// Check values and consecutive daily serials
	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Value(i).Float64 != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Value(i).Float64)
		}
		if i > 0 && series.Serial(i) != series.Serial(i-1)+1 {
			t.Errorf("Expected consecutive serials, got %d after %d", series.Serial(i), series.Serial(i-1))
		}
	}
}

func TestLoadCSVWithFilter(t *testing.T) {
	csvData := `unique_id,ds,y
A,2020-01-01,100
B,2020-01-01,200
A,2020-01-02,101
B,2020-01-02,201
A,2020-01-03,102`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"
	opts.IDFilter = "A"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations for 'A', got %d", series.Len())
	}

	if series.Name != "A" {
		t.Errorf("Expected series name \"A\", got %q", series.Name)
	}

	expected := []float64{100, 101, 102}
	for i, v := range expected {
		if series.Value(i).Float64 != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Value(i).Float64)
		}
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	// NA and NaN cells become missing items, keeping their position
	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}
	if series.ValidCount() != 3 {
		t.Errorf("Expected 3 present values, got %d", series.ValidCount())
	}
	if series.Value(1).Valid || series.Value(3).Valid {
		t.Error("Expected NA cells to load as missing values")
	}
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{200, 210, 220}
	for i, v := range expected {
		if series.Value(i).Float64 != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Value(i).Float64)
		}
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"unique_id","ds","y"
"Australia","2020-01-01","1000000"
"Australia","2020-01-02","1000100"
"Australia","2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
}

func TestLoadCSVMonthlySerials(t *testing.T) {
	csvData := `Month,Passengers
1949-01,112
1949-02,118
1949-03,132`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Passengers"
	opts.Granularity = Month

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Fatalf("Expected 3 observations, got %d", series.Len())
	}
	for i := 1; i < series.Len(); i++ {
		if series.Serial(i) != series.Serial(i-1)+1 {
			t.Errorf("Expected consecutive monthly serials, got %d after %d", series.Serial(i), series.Serial(i-1))
		}
	}
}

func TestLoadCSVSerialColumn(t *testing.T) {
	csvData := `serial,y
10,1.5
11,2.5
15,3.5`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []int64{10, 11, 15}
	for i, serial := range expected {
		if series.Serial(i) != serial {
			t.Errorf("Serial at index %d: expected %d, got %d", i, serial, series.Serial(i))
		}
	}
}

func TestLoadCSVGroupedFromReader(t *testing.T) {
	csvData := `unique_id,ds,y
A,2020-01-01,100
B,2020-01-01,200
A,2020-01-02,101
B,2020-01-02,201`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"

	coll, err := LoadCSVGroupedFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if coll.Len() != 2 {
		t.Fatalf("Expected 2 series, got %d", coll.Len())
	}

	// First-occurrence order
	if coll.Series(0).Name != "A" || coll.Series(1).Name != "B" {
		t.Errorf("Expected order [A B], got %v", coll.Names())
	}

	b, ok := coll.ByName("B")
	if !ok {
		t.Fatal("Expected to find series \"B\"")
	}
	if b.Len() != 2 || b.Value(1).Float64 != 201 {
		t.Errorf("Unexpected series B contents: %v", b.Items)
	}
}

func TestSaveCSVRoundTrip(t *testing.T) {
	s := New("roundtrip")
	s.AddValue(0, 1.5)
	s.AddMissing(1)
	s.AddValue(2, 2.5)

	path := filepath.Join(t.TempDir(), "series.csv")
	if err := SaveCSV(s, path); err != nil {
		t.Fatalf("Failed to save CSV: %v", err)
	}

	loaded, err := LoadCSV(path, nil)
	if err != nil {
		t.Fatalf("Failed to reload CSV: %v", err)
	}

	if loaded.Len() != 3 {
		t.Fatalf("Expected 3 observations, got %d", loaded.Len())
	}
	if loaded.Value(1).Valid {
		t.Error("Expected missing value to survive the round trip")
	}
	if loaded.Serial(2) != 2 || loaded.Value(2).Float64 != 2.5 {
		t.Errorf("Unexpected item at index 2: %v", loaded.Items[2])
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "y" {
		t.Errorf("Expected default value column 'y', got '%s'", opts.ValueColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if opts.Granularity != Day {
		t.Errorf("Expected default granularity Day, got %v", opts.Granularity)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
