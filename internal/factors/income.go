package factors

import (
	"context"
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/alias"
	"github.com/zoyakhan/covidfactors/internal/dataset"
	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

// countryUSA bypasses currency conversion entirely: its income is already
// quoted in USD.
const countryUSA = "United States"

// scanIncomeRows iterates the income dataset, yielding country and raw
// income for rows belonging to the target year.
func (e *Extractor) scanIncomeRows(ctx context.Context, fn func(country, raw string) error) error {
	return dataset.NewReader(e.incomeDesc()).Scan(ctx, func(row dataset.Row) error {
		country, err := row.Field(incomeCountryCol)
		if err != nil {
			return err
		}
		year, err := row.Field(incomeYearCol)
		if err != nil {
			return err
		}
		if year != incomeYear {
			return nil
		}
		raw, err := row.Field(incomeValueCol)
		if err != nil {
			return err
		}
		return fn(country, raw)
	})
}

// scanExchangeRows iterates the exchange-rate dataset, yielding the
// country/region label and raw rate-to-USD cell.
func (e *Extractor) scanExchangeRows(ctx context.Context, fn func(name, raw string) error) error {
	return dataset.NewReader(e.exchangeDesc()).Scan(ctx, func(row dataset.Row) error {
		name, err := row.Field(exchangeCountryCol)
		if err != nil {
			return err
		}
		raw, err := row.Field(exchangeRateCol)
		if err != nil {
			return err
		}
		return fn(name, raw)
	})
}

// IncomeLocal returns the country's 2020 annual income in its local
// currency, rounded to 2 decimal places. The name is matched exactly as
// given; IncomeUSD passes in the exchange-rate spelling for countries
// whose income rows are keyed by that label.
func (e *Extractor) IncomeLocal(ctx context.Context, country string) (float64, error) {
	var raw string
	found := false

	err := e.scanIncomeRows(ctx, func(name, cell string) error {
		if name != country {
			return nil
		}
		raw = cell
		found = true
		return dataset.ErrStop
	})
	if err != nil {
		return 0, errors.NewLookupError("income", "income", country, err)
	}
	if !found {
		return 0, errors.NewLookupError("income", "income", country, errors.ErrCountryNotFound)
	}

	income, err := parseFloat(raw)
	if err != nil {
		return 0, errors.NewLookupError("income", "income", country,
			fmt.Errorf("%w: income %q: %v", errors.ErrMalformedRow, raw, err))
	}

	return stats.Round2(income), nil
}

// exchangeRate returns the rate-to-USD for a resolved exchange-rate label.
// A zero or unparseable rate is malformed data, never a silent divide.
func (e *Extractor) exchangeRate(ctx context.Context, resolved string) (float64, error) {
	var raw string
	found := false

	err := e.scanExchangeRows(ctx, func(name, cell string) error {
		if name != resolved {
			return nil
		}
		raw = cell
		found = true
		return dataset.ErrStop
	})
	if err != nil {
		return 0, errors.NewLookupError("exchange_rate", "exchange_rate", resolved, err)
	}
	if !found {
		return 0, errors.NewLookupError("exchange_rate", "exchange_rate", resolved, errors.ErrCountryNotFound)
	}

	return parseRate(raw, resolved)
}

func parseRate(raw, name string) (float64, error) {
	rate, err := parseFloat(raw)
	if err != nil {
		return 0, errors.NewLookupError("exchange_rate", "exchange_rate", name,
			fmt.Errorf("%w: rate %q: %v", errors.ErrMalformedRow, raw, err))
	}
	if rate == 0 {
		return 0, errors.NewLookupError("exchange_rate", "exchange_rate", name,
			fmt.Errorf("%w: zero exchange rate", errors.ErrMalformedRow))
	}
	return rate, nil
}

// IncomeUSD returns the country's 2020 annual income converted to USD,
// rounded to 2 decimal places. The United States bypasses conversion;
// Euro-zone members and South Korea resolve to the labels the exchange-rate
// and income datasets key their rows by. A missing income or exchange-rate
// row fails with ErrCountryNotFound.
func (e *Extractor) IncomeUSD(ctx context.Context, country string) (float64, error) {
	if country == countryUSA {
		return e.IncomeLocal(ctx, country)
	}

	resolved := alias.Resolve(country, alias.DatasetExchangeRate)

	income, err := e.IncomeLocal(ctx, resolved)
	if err != nil {
		return 0, err
	}

	rate, err := e.exchangeRate(ctx, resolved)
	if err != nil {
		return 0, err
	}

	return stats.Round2(income / rate), nil
}

// incomeIndex loads 2020 income rows once, keyed by dataset country label,
// first row per country winning. Cells stay raw; parsing happens at lookup.
func (e *Extractor) incomeIndex(ctx context.Context) (map[string]string, error) {
	index := make(map[string]string)

	err := e.scanIncomeRows(ctx, func(country, raw string) error {
		if _, ok := index[country]; !ok {
			index[country] = raw
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("income", "income", "", err)
	}

	return index, nil
}

// exchangeIndex loads the exchange-rate dataset once, keyed by label,
// first row winning.
func (e *Extractor) exchangeIndex(ctx context.Context) (map[string]string, error) {
	index := make(map[string]string)

	err := e.scanExchangeRows(ctx, func(name, raw string) error {
		if _, ok := index[name]; !ok {
			index[name] = raw
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewLookupError("exchange_rate", "exchange_rate", "", err)
	}

	return index, nil
}
