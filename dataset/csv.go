package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// CSVOptions contains configuration options for CSV ingestion.
type CSVOptions struct {
	// Comma is the field delimiter.
	Comma rune

	// Header indicates whether the first row is a header and should be skipped.
	Header bool

	// LabelColumn is the index of the label column. Negative means the last
	// column; every other column must be numeric.
	LabelColumn int
}

// DefaultCSVOptions contains the default configuration options for CSV ingestion.
var DefaultCSVOptions = CSVOptions{
	Comma:       ',',
	Header:      true,
	LabelColumn: -1,
}

// FromCSV reads labeled points from delimited text. Each record holds N
// numeric feature fields plus one label field.
func FromCSV(r io.Reader, optFns ...func(o *CSVOptions)) (Dataset, error) {
	opts := DefaultCSVOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	reader.TrimLeadingSpace = true

	var (
		ds  Dataset
		row int
	)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row++
		if opts.Header && row == 1 {
			continue
		}

		p, err := pointFromRecord(rec, opts.LabelColumn)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		ds = append(ds, p)
	}

	return ds, nil
}

// Open reads labeled points from a delimited text file. Files ending in .gz
// or .lz4 are decompressed transparently.
func Open(path string, optFns ...func(o *CSVOptions)) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(path, ".lz4"):
		r = lz4.NewReader(file)
	}

	return FromCSV(r, optFns...)
}

func pointFromRecord(rec []string, labelColumn int) (Point, error) {
	if len(rec) < 2 {
		return Point{}, fmt.Errorf("record has %d fields, need at least 2", len(rec))
	}

	if labelColumn < 0 {
		labelColumn = len(rec) - 1
	}
	if labelColumn >= len(rec) {
		return Point{}, fmt.Errorf("label column %d out of range for %d fields", labelColumn, len(rec))
	}

	features := make([]float64, 0, len(rec)-1)
	for i, field := range rec {
		if i == labelColumn {
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Point{}, fmt.Errorf("field %d: %w", i, err)
		}
		features = append(features, v)
	}

	return Point{Features: features, Label: strings.TrimSpace(rec[labelColumn])}, nil
}
