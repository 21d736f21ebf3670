package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

var (
	errEmptyInput      = errors.New("missing header row")
	errMissingColumn   = errors.New("required column is missing from header")
	errDuplicateColumn = errors.New("column appears more than once in header")
	errEmptyNumber     = errors.New("empty numeric value")
	errNonFinite       = errors.New("numeric value is not finite")
)

// Load reads the collection dataset stored at path.
//
// It returns an error matching ErrFileNotFound when the path cannot be opened for reading
// and an error matching ErrParse when the content is not a valid collection table.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fileNotFound(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fileNotFound(path, err)
	}
	defer file.Close()

	return Read(file, path)
}

// fileNotFound names path once; the *fs.PathError from os already carries it.
func fileNotFound(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
}

// Read parses a comma-delimited collection table from r.
// The source is only used to label errors and the resulting dataset.
func Read(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Source: source, Err: errEmptyInput}
	}
	if err != nil {
		return nil, csvError(source, err)
	}

	headerLine, _ := reader.FieldPos(0)
	header = normalizeHeader(header)
	index, errHeader := columnIndex(header)
	if errHeader != nil {
		errHeader.Source = source
		errHeader.Line = headerLine
		return nil, errHeader
	}

	ds := &Dataset{source: source, header: header}
	for {
		row, errRead := reader.Read()
		if errors.Is(errRead, io.EOF) {
			break
		}
		if errRead != nil {
			return nil, csvError(source, errRead)
		}

		line, _ := reader.FieldPos(0)
		rec, errRow := parseRow(header, index, row)
		if errRow != nil {
			errRow.Source = source
			errRow.Line = line
			return nil, errRow
		}
		ds.records = append(ds.records, rec)
	}

	return ds, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		out[i] = strings.TrimSpace(name)
	}

	return out
}

// columnIndex maps each required column to its position in header.
// Every header name must be unique so that no value is shadowed in Record.Extra.
func columnIndex(header []string) (map[string]int, *ParseError) {
	index := make(map[string]int, len(RequiredColumns))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if _, dup := seen[name]; dup {
			return nil, &ParseError{Column: name, Err: errDuplicateColumn}
		}
		seen[name] = struct{}{}

		if slices.Contains(RequiredColumns, name) {
			index[name] = i
		}
	}

	for _, required := range RequiredColumns {
		if _, ok := index[required]; !ok {
			return nil, &ParseError{Column: required, Err: errMissingColumn}
		}
	}

	return index, nil
}

func parseRow(header []string, index map[string]int, row []string) (Record, *ParseError) {
	lat, err := parseCoordinate(row[index[ColumnLatitude]])
	if err != nil {
		return Record{}, &ParseError{Column: ColumnLatitude, Err: err}
	}

	lon, err := parseCoordinate(row[index[ColumnLongitude]])
	if err != nil {
		return Record{}, &ParseError{Column: ColumnLongitude, Err: err}
	}

	rec := Record{
		Point:     row[index[ColumnPoint]],
		Latitude:  lat,
		Longitude: lon,
		Extra:     make(map[string]string, len(header)-len(index)),
	}
	for i, name := range header {
		if _, required := index[name]; required {
			continue
		}
		rec.Extra[name] = row[i]
	}

	return rec, nil
}

func parseCoordinate(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, errEmptyNumber
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, fmt.Errorf("%w: %q", errNonFinite, raw)
	}

	return num, nil
}

// csvError converts an encoding/csv failure into a ParseError carrying its line.
func csvError(source string, err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Source: source, Line: csvErr.Line, Err: csvErr.Err}
	}

	return &ParseError{Source: source, Err: err}
}
