package factors

import (
	"context"
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/dataset"
	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

// cpiRow is one monthly consumer-price-index entry as it appears in the
// dataset: country cell left unparsed for containment matching, value cell
// left raw for lookup-time parsing.
type cpiRow struct {
	cell string
	raw  string
}

// scanCPIRows iterates the monthly CPI dataset, yielding each row's
// country cell and raw index value.
func (e *Extractor) scanCPIRows(ctx context.Context, fn func(cell, raw string) error) error {
	return dataset.NewReader(e.cpiDesc()).Scan(ctx, func(row dataset.Row) error {
		cell, err := row.Field(cpiCountryCol)
		if err != nil {
			return err
		}
		raw, err := row.Field(cpiValueCol)
		if err != nil {
			return err
		}
		return fn(cell, raw)
	})
}

// CPIAverage returns the mean consumer price index for food over the
// country's 12 monthly rows, rounded to 2 decimal places. Country matching
// is substring containment against the dataset's own spelling (the export
// embeds extra text, e.g. "United States of America"). Zero matching rows
// fail with ErrCountryNotFound.
func (e *Extractor) CPIAverage(ctx context.Context, country string) (float64, error) {
	rows, err := e.cpiIndex(ctx)
	if err != nil {
		return 0, err
	}
	return cpiAverageFrom(rows, country)
}

// cpiIndex loads the CPI dataset once. Containment matching cannot be
// pre-keyed by canonical name, so the index keeps every row and matching
// happens at lookup.
func (e *Extractor) cpiIndex(ctx context.Context) ([]cpiRow, error) {
	var rows []cpiRow

	err := e.scanCPIRows(ctx, func(cell, raw string) error {
		rows = append(rows, cpiRow{cell: cell, raw: raw})
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("cpi", "cpi", "", err)
	}

	return rows, nil
}

// cpiAverageFrom computes the rounded mean over the index rows matching
// country; shared by the snapshot lookup path.
func cpiAverageFrom(rows []cpiRow, country string) (float64, error) {
	var values []float64

	for _, row := range rows {
		if !alias.Match(country, row.cell, alias.DatasetCPI) {
			continue
		}
		v, err := parseFloat(row.raw)
		if err != nil {
			return 0, errors.NewLookupError("cpi", "cpi", country,
				fmt.Errorf("%w: cpi %q: %v", errors.ErrMalformedRow, row.raw, err))
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return 0, errors.NewLookupError("cpi", "cpi", country, errors.ErrCountryNotFound)
	}

	return stats.Round2(stats.Mean(values)), nil
}
