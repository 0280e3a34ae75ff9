package factors

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/dataset"
	"github.com/zoyakhan/covidfactors/internal/errors"
)

// scanPopulationRows iterates the population dataset, yielding each row's
// country spelling and raw population cell. Non-digit population cells are
// treated as missing data and skipped.
func (e *Extractor) scanPopulationRows(ctx context.Context, fn func(spelling, raw string) error) error {
	return dataset.NewReader(e.populationDesc()).Scan(ctx, func(row dataset.Row) error {
		spelling, err := row.Field(populationCountryCol)
		if err != nil {
			return err
		}
		raw, err := row.FieldFromEnd(populationValueFromEnd)
		if err != nil {
			return err
		}
		if !isDigits(raw) {
			return nil
		}
		return fn(spelling, raw)
	})
}

// Population returns the country's year-2020 population. The dataset is
// scanned whole; when a country appears more than once the last entry
// wins. A country with no digit-valued row fails with ErrCountryNotFound.
func (e *Extractor) Population(ctx context.Context, country string) (int64, error) {
	resolved := alias.Resolve(country, alias.DatasetPopulation)

	var value int64
	found := false

	err := e.scanPopulationRows(ctx, func(spelling, raw string) error {
		if spelling != resolved {
			return nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: population %q: %v", errors.ErrMalformedRow, raw, err)
		}
		value = v
		found = true
		return nil
	})
	if err != nil {
		return 0, errors.NewLookupError("population", "population", country, err)
	}
	if !found {
		return 0, errors.NewLookupError("population", "population", country, errors.ErrCountryNotFound)
	}

	return value, nil
}

// populationIndex loads the population dataset once into an in-memory
// index keyed by dataset spelling.
func (e *Extractor) populationIndex(ctx context.Context) (map[string]int64, error) {
	index := make(map[string]int64)

	err := e.scanPopulationRows(ctx, func(spelling, raw string) error {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: population %q: %v", errors.ErrMalformedRow, raw, err)
		}
		index[spelling] = v
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("population", "population", "", err)
	}

	return index, nil
}
