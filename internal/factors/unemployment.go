package factors

import (
	"context"
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/dataset"
	"github.com/zoyakhan/covidfactors/internal/errors"
)

// scanUnemploymentRows iterates the unemployment dataset, yielding each
// row's country spelling and raw annual-rate cell.
func (e *Extractor) scanUnemploymentRows(ctx context.Context, fn func(spelling, raw string) error) error {
	return dataset.NewReader(e.unemploymentDesc()).Scan(ctx, func(row dataset.Row) error {
		spelling, err := row.Field(unemploymentCountryCol)
		if err != nil {
			return err
		}
		raw, err := row.FieldFromEnd(unemploymentValueFromEnd)
		if err != nil {
			return err
		}
		return fn(spelling, raw)
	})
}

// Unemployment returns the country's 2020 unemployment rate as a
// percentage. Absence is detected by no row matching the resolved country
// name, so a genuine 0% rate is representable and distinct from missing
// data.
func (e *Extractor) Unemployment(ctx context.Context, country string) (float64, error) {
	resolved := alias.Resolve(country, alias.DatasetUnemployment)

	var raw string
	found := false

	err := e.scanUnemploymentRows(ctx, func(spelling, cell string) error {
		if spelling == resolved {
			raw = cell
			found = true
		}
		return nil
	})
	if err != nil {
		return 0, errors.NewLookupError("unemployment", "unemployment", country, err)
	}
	if !found {
		return 0, errors.NewLookupError("unemployment", "unemployment", country, errors.ErrCountryNotFound)
	}

	rate, err := parseFloat(raw)
	if err != nil {
		return 0, errors.NewLookupError("unemployment", "unemployment", country,
			fmt.Errorf("%w: rate %q: %v", errors.ErrMalformedRow, raw, err))
	}

	return rate, nil
}

// unemploymentIndex loads the unemployment dataset once, keyed by dataset
// spelling. Cells stay raw; parsing happens at lookup so the index serves
// results identical to a fresh scan.
func (e *Extractor) unemploymentIndex(ctx context.Context) (map[string]string, error) {
	index := make(map[string]string)

	err := e.scanUnemploymentRows(ctx, func(spelling, raw string) error {
		index[spelling] = raw
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("unemployment", "unemployment", "", err)
	}

	return index, nil
}
