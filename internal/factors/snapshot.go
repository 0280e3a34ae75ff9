package factors

import (
	"context"
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

// Snapshot holds every dataset loaded once into in-memory indexes, so a
// batch caller pays one file scan per dataset instead of one per country.
// Value cells stay raw and are parsed at lookup, which keeps lookup
// results identical to the fresh-scan extractor paths. A Snapshot is
// read-only after load and therefore safe for concurrent lookups.
type Snapshot struct {
	population   map[string]int64
	unemployment map[string]string
	income       map[string]string
	exchange     map[string]string
	cpi          []cpiRow
	cases        map[string]float64
}

// Snapshot loads all six datasets into memory
func (e *Extractor) Snapshot(ctx context.Context) (*Snapshot, error) {
	population, err := e.populationIndex(ctx)
	if err != nil {
		return nil, err
	}
	unemployment, err := e.unemploymentIndex(ctx)
	if err != nil {
		return nil, err
	}
	income, err := e.incomeIndex(ctx)
	if err != nil {
		return nil, err
	}
	exchange, err := e.exchangeIndex(ctx)
	if err != nil {
		return nil, err
	}
	cpi, err := e.cpiIndex(ctx)
	if err != nil {
		return nil, err
	}
	cases, err := e.confirmedCases(ctx, population)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		population:   population,
		unemployment: unemployment,
		income:       income,
		exchange:     exchange,
		cpi:          cpi,
		cases:        cases,
	}, nil
}

// Population returns the country's year-2020 population
func (s *Snapshot) Population(country string) (int64, error) {
	v, ok := s.population[alias.Resolve(country, alias.DatasetPopulation)]
	if !ok {
		return 0, errors.NewLookupError("population", "population", country, errors.ErrCountryNotFound)
	}
	return v, nil
}

// Unemployment returns the country's 2020 unemployment rate
func (s *Snapshot) Unemployment(country string) (float64, error) {
	raw, ok := s.unemployment[alias.Resolve(country, alias.DatasetUnemployment)]
	if !ok {
		return 0, errors.NewLookupError("unemployment", "unemployment", country, errors.ErrCountryNotFound)
	}

	rate, err := parseFloat(raw)
	if err != nil {
		return 0, errors.NewLookupError("unemployment", "unemployment", country,
			fmt.Errorf("%w: rate %q: %v", errors.ErrMalformedRow, raw, err))
	}
	return rate, nil
}

// IncomeLocal returns the country's 2020 income in local currency
func (s *Snapshot) IncomeLocal(country string) (float64, error) {
	raw, ok := s.income[country]
	if !ok {
		return 0, errors.NewLookupError("income", "income", country, errors.ErrCountryNotFound)
	}

	income, err := parseFloat(raw)
	if err != nil {
		return 0, errors.NewLookupError("income", "income", country,
			fmt.Errorf("%w: income %q: %v", errors.ErrMalformedRow, raw, err))
	}
	return stats.Round2(income), nil
}

// IncomeUSD returns the country's 2020 income converted to USD
func (s *Snapshot) IncomeUSD(country string) (float64, error) {
	if country == countryUSA {
		return s.IncomeLocal(country)
	}

	resolved := alias.Resolve(country, alias.DatasetExchangeRate)

	income, err := s.IncomeLocal(resolved)
	if err != nil {
		return 0, err
	}

	raw, ok := s.exchange[resolved]
	if !ok {
		return 0, errors.NewLookupError("exchange_rate", "exchange_rate", resolved, errors.ErrCountryNotFound)
	}
	rate, err := parseRate(raw, resolved)
	if err != nil {
		return 0, err
	}

	return stats.Round2(income / rate), nil
}

// CPIAverage returns the country's mean 2020 food CPI
func (s *Snapshot) CPIAverage(country string) (float64, error) {
	return cpiAverageFrom(s.cpi, country)
}

// ConfirmedCases returns the canonical-name-keyed confirmed-case
// percentages for 2020-12-31
func (s *Snapshot) ConfirmedCases() map[string]float64 {
	return s.cases
}

// CaseCountries returns the canonical names present in the confirmed-cases
// mapping, for nearest-name suggestions on failed lookups.
func (s *Snapshot) CaseCountries() []string {
	out := make([]string, 0, len(s.cases))
	for c := range s.cases {
		out = append(out, c)
	}
	return out
}
