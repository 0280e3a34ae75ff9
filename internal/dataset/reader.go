package dataset

import (
	"context"
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zoyakhan/covidfactors/internal/errors"
)

// ErrStop can be returned by a scan callback to stop iteration early
// without reporting an error to the caller.
var ErrStop = goerrors.New("stop scan")

// Descriptor describes the fixed layout of a delimited dataset export.
// Layouts are positional and fragile; every dataset carries its own
// header-skip count and delimiter.
type Descriptor struct {
	// Name identifies the dataset in error messages
	Name string

	// Path is the location of the dataset file
	Path string

	// SkipRows is the number of leading metadata/header rows to discard
	SkipRows int

	// Comma is the field delimiter (0 = ',')
	Comma rune
}

// Row represents a single data row with its provenance
type Row struct {
	// LineNumber is the 1-indexed row number in the file, skipped rows included
	LineNumber int

	// FileName is the source file base name
	FileName string

	// Fields contains the parsed row fields
	Fields []string
}

// Field returns the value at column index i. Out-of-range indices produce
// an ErrMalformedRow-wrapped error; downstream extractors never index raw
// slices directly.
func (r Row) Field(i int) (string, error) {
	if i < 0 || i >= len(r.Fields) {
		return "", fmt.Errorf("%w: %s:%d: no column %d in %d-field row",
			errors.ErrMalformedRow, r.FileName, r.LineNumber, i, len(r.Fields))
	}
	return r.Fields[i], nil
}

// FieldFromEnd returns the value n columns from the end of the row;
// n=1 is the last column. Several exports key the most recent year to
// the second-to-last column, so position from the end is the stable axis.
func (r Row) FieldFromEnd(n int) (string, error) {
	if n < 1 || n > len(r.Fields) {
		return "", fmt.Errorf("%w: %s:%d: no column %d from end in %d-field row",
			errors.ErrMalformedRow, r.FileName, r.LineNumber, n, len(r.Fields))
	}
	return r.Fields[len(r.Fields)-n], nil
}

// Reader scans a single delimited dataset file. Each Scan call opens the
// file fresh and performs exactly one pass; a Reader holds no open handles
// between calls.
type Reader struct {
	desc Descriptor
}

// NewReader creates a Reader for the given dataset layout
func NewReader(desc Descriptor) *Reader {
	if desc.Name == "" {
		desc.Name = filepath.Base(desc.Path)
	}
	return &Reader{desc: desc}
}

// Descriptor returns the layout this reader scans
func (r *Reader) Descriptor() Descriptor {
	return r.desc
}

// Scan opens the dataset, skips the configured header rows, and invokes fn
// for every remaining row in order. Iteration stops when fn returns an
// error; ErrStop stops cleanly. The context is checked between rows.
func (r *Reader) Scan(ctx context.Context, fn func(Row) error) error {
	file, err := os.Open(r.desc.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrFileAccess, r.desc.Path, err)
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	csvReader.FieldsPerRecord = -1 // exports are ragged, shape is checked downstream
	csvReader.LazyQuotes = true
	csvReader.ReuseRecord = true
	if r.desc.Comma != 0 {
		csvReader.Comma = r.desc.Comma
	}

	fileName := filepath.Base(r.desc.Path)
	lineNumber := 0

	// Discard leading metadata/header rows. A file shorter than the skip
	// count simply has no data rows.
	for i := 0; i < r.desc.SkipRows; i++ {
		if _, err := csvReader.Read(); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("%w: %s:%d: %v", errors.ErrMalformedRow, fileName, lineNumber+1, err)
		}
		lineNumber++
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, err := csvReader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s:%d: %v", errors.ErrMalformedRow, fileName, lineNumber+1, err)
		}
		lineNumber++

		// Copy out of the reused buffer before handing off.
		fields := make([]string, len(data))
		copy(fields, data)

		row := Row{
			LineNumber: lineNumber,
			FileName:   fileName,
			Fields:     fields,
		}

		if err := fn(row); err != nil {
			if goerrors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}

// ReadAll scans the whole dataset into memory (convenience for tests and
// one-shot index builds).
func ReadAll(ctx context.Context, desc Descriptor) ([]Row, error) {
	var rows []Row
	err := NewReader(desc).Scan(ctx, func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
