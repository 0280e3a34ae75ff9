package factors

import (
	"context"
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/dataset"
	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

// ConfirmedCases returns every country's cumulative confirmed COVID-19
// cases on 2020-12-31 as a percentage of that country's population, keyed
// by canonical country name. Countries whose population is unknown or zero
// are skipped so the percentage never divides by zero. The mapping covers
// the whole dataset, not a requested subset.
func (e *Extractor) ConfirmedCases(ctx context.Context) (map[string]float64, error) {
	population, err := e.populationIndex(ctx)
	if err != nil {
		return nil, err
	}
	return e.confirmedCases(ctx, population)
}

// confirmedCases scans the COVID time-series against a pre-built
// population index.
func (e *Extractor) confirmedCases(ctx context.Context, population map[string]int64) (map[string]float64, error) {
	out := make(map[string]float64)

	err := dataset.NewReader(e.casesDesc()).Scan(ctx, func(row dataset.Row) error {
		guard, err := row.Field(casesGuardCol)
		if err != nil {
			return err
		}
		if guard == "" {
			return nil
		}

		date, err := row.Field(casesDateCol)
		if err != nil {
			return err
		}
		if date != casesDate {
			return nil
		}

		rawCases, err := row.Field(casesValueCol)
		if err != nil {
			return err
		}
		if rawCases == "" {
			return nil
		}

		cell, err := row.Field(casesCountryCol)
		if err != nil {
			return err
		}

		canonical := alias.Canonical(cell, alias.DatasetConfirmedCases)
		pop, ok := population[alias.Resolve(canonical, alias.DatasetPopulation)]
		if !ok || pop == 0 {
			return nil
		}

		cases, err := parseFloat(rawCases)
		if err != nil {
			return fmt.Errorf("%w: cases %q: %v", errors.ErrMalformedRow, rawCases, err)
		}

		out[canonical] = stats.Percentage(cases, float64(pop))
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("confirmed_cases", "confirmed_cases", "", err)
	}

	return out, nil
}
