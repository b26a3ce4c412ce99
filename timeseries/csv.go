package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn   string      // Column name for dates (optional)
	SerialColumn string      // Column name for explicit serial indices (optional)
	ValueColumn  string      // Column name for values (default: "y")
	IDColumn     string      // Column name for series ID (optional, for filtering/grouping)
	IDFilter     string      // Value to filter by ID column
	DateFormat   string      // Date format (default: "2006-01-02")
	Granularity  Granularity // Period granularity for date-derived serials (default: Day)
	HasHeader    bool        // Whether CSV has header row (default: true)
	Delimiter    rune        // Field delimiter (default: ',')
	SkipRows     int         // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		Granularity: Day,
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFiltered loads a single series from a CSV file, keeping only rows
// whose ID column matches idValue.
func LoadCSVFiltered(filename string, idColumn, idValue, valueColumn string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader. Empty, NA, NaN and
// null value cells load as missing items; rows whose value does not parse are
// skipped entirely.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	rows, err := readCSVRows(r, opts)
	if err != nil {
		return nil, err
	}

	name := opts.ValueColumn
	if opts.IDFilter != "" {
		name = opts.IDFilter
	}
	series := New(name)
	nextSerial := int64(0)
	for _, row := range rows {
		if opts.IDFilter != "" && row.id != opts.IDFilter {
			continue
		}
		serial := row.serial
		if !row.hasSerial {
			serial = nextSerial
		}
		nextSerial = serial + 1
		series.Add(serial, row.value)
	}

	if series.Len() == 0 {
		return nil, errors.New("no valid data found in CSV")
	}
	return series, nil
}

// LoadCSVGrouped loads every series in a CSV file, grouping rows by the ID
// column into a collection. Groups appear in first-occurrence order.
func LoadCSVGrouped(filename string, opts *CSVOptions) (*Collection, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVGroupedFromReader(file, opts)
}

// LoadCSVGroupedFromReader is the io.Reader variant of LoadCSVGrouped.
func LoadCSVGroupedFromReader(r io.Reader, opts *CSVOptions) (*Collection, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	rows, err := readCSVRows(r, opts)
	if err != nil {
		return nil, err
	}

	result := NewCollection()
	nextSerial := make(map[string]int64)
	for _, row := range rows {
		series, ok := result.ByName(row.id)
		if !ok {
			series = New(row.id)
			result.Add(series)
		}
		serial := row.serial
		if !row.hasSerial {
			serial = nextSerial[row.id]
		}
		nextSerial[row.id] = serial + 1
		series.Add(serial, row.value)
	}

	if result.Len() == 0 {
		return nil, errors.New("no valid data found in CSV")
	}
	return result, nil
}

// csvRow is one parsed data row.
type csvRow struct {
	id        string
	serial    int64
	hasSerial bool
	value     Value
}

// readCSVRows parses all data rows, resolving columns from the header.
func readCSVRows(r io.Reader, opts *CSVOptions) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var valueIdx, dateIdx, serialIdx, idIdx int = -1, -1, -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.SerialColumn != "" && h == opts.SerialColumn:
				serialIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date" || h == "Month" || h == "Year":
				if dateIdx == -1 {
					dateIdx = i
				}
			case opts.IDColumn != "" && h == opts.IDColumn:
				idIdx = i
			case h == "unique_id" || h == "id" || h == "ID":
				if idIdx == -1 && opts.IDColumn == "" {
					idIdx = i
				}
			case h == "serial" || h == "index":
				if serialIdx == -1 && opts.SerialColumn == "" {
					serialIdx = i
				}
			}
		}

		// Default to last column if the value column was not found
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		// No header - assume date then value
		dateIdx = 0
		valueIdx = 1
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		row := csvRow{}

		if idIdx >= 0 && idIdx < len(record) {
			row.id = strings.TrimSpace(strings.Trim(record[idIdx], "\""))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			row.value = Value{}
		} else {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				continue // Skip invalid values
			}
			row.value = NewValue(val)
		}

		if serialIdx >= 0 && serialIdx < len(record) {
			serialStr := strings.TrimSpace(strings.Trim(record[serialIdx], "\""))
			serial, err := strconv.ParseInt(serialStr, 10, 64)
			if err != nil {
				continue
			}
			row.serial = serial
			row.hasSerial = true
		} else if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			ts, err := parseDate(dateStr, opts.DateFormat)
			if err == nil {
				row.serial = SerialIndex(ts, opts.Granularity)
				row.hasSerial = true
			}
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// parseDate tries the configured format first, then a set of common formats.
func parseDate(s, preferred string) (time.Time, error) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006-01",
		"2006",
	}
	var ts time.Time
	var err error
	for _, format := range formats {
		ts, err = time.Parse(format, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

// SaveCSV saves a series to a CSV file as serial,value rows. Missing values
// are written as empty cells, so a round trip preserves gaps.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("serial,y\n")
	for _, it := range series.Items {
		writer.WriteString(strconv.FormatInt(it.Serial, 10))
		writer.WriteString(",")
		if it.Value.Valid {
			writer.WriteString(strconv.FormatFloat(it.Value.Float64, 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}
