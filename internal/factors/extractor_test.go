package factors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/test/fixtures"
)

func setup(t *testing.T) *Extractor {
	t.Helper()

	paths, err := fixtures.WriteAll(t.TempDir())
	require.NoError(t, err)

	return NewExtractor(Config{
		PopulationPath:     paths.Population,
		UnemploymentPath:   paths.Unemployment,
		IncomePath:         paths.Income,
		ExchangeRatePath:   paths.ExchangeRate,
		CPIPath:            paths.CPI,
		ConfirmedCasesPath: paths.ConfirmedCases,
	})
}

func TestPopulation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	tests := []struct {
		country string
		want    int64
		wantErr error
	}{
		{"Canada", 38005238, nil},
		{"United States", 331002651, nil},
		{"South Korea", 51780579, nil},
		{"Japan", 125836021, nil},
		{"Elbonia", 0, errors.ErrCountryNotFound},
		{"Atlantis", 0, errors.ErrCountryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := e.Population(ctx, tt.country)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPopulation_MissingFile(t *testing.T) {
	e := NewExtractor(Config{PopulationPath: "no/such/population.csv"})

	_, err := e.Population(context.Background(), "Canada")
	require.ErrorIs(t, err, errors.ErrFileAccess)
}

func TestUnemployment(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	got, err := e.Unemployment(ctx, "Canada")
	require.NoError(t, err)
	require.Equal(t, 9.48, got)

	got, err = e.Unemployment(ctx, "South Korea")
	require.NoError(t, err)
	require.Equal(t, 4.53, got)

	_, err = e.Unemployment(ctx, "Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)
}

func TestUnemployment_TrueZeroRate(t *testing.T) {
	// A genuine 0% rate is data, not a missing country.
	e := setup(t)

	got, err := e.Unemployment(context.Background(), "Zerostan")
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestIncomeLocal(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	got, err := e.IncomeLocal(ctx, "Canada")
	require.NoError(t, err)
	require.Equal(t, 72259.55, got)

	// Only year-2020 rows count; the 2019 Canada row is filtered out.
	_, err = e.IncomeLocal(ctx, "Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)
}

func TestIncomeUSD(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	tests := []struct {
		country string
		want    float64
	}{
		{"Canada", 56674.16},
		{"United States", 69391.99},
		{"France", 39512.2},
		{"South Korea", 38626.69},
		{"Japan", 41065.38},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := e.IncomeUSD(ctx, tt.country)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIncomeUSD_NoConversionForUSA(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	local, err := e.IncomeLocal(ctx, "United States")
	require.NoError(t, err)

	usd, err := e.IncomeUSD(ctx, "United States")
	require.NoError(t, err)
	require.Equal(t, local, usd)
}

func TestIncomeUSD_MissingIncomeIsExplicit(t *testing.T) {
	// The exchange-rate table knows Brokenland but the income dataset
	// does not; the failure must surface instead of dividing a zero
	// sentinel.
	e := setup(t)

	_, err := e.IncomeUSD(context.Background(), "Brokenland")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)
}

func TestIncomeUSD_ZeroRateIsMalformed(t *testing.T) {
	// Glitchland has a 2020 income row but its exchange rate is 0.0:
	// malformed data, never a silent divide. Both lookup paths agree.
	e := setup(t)
	ctx := context.Background()

	_, err := e.IncomeUSD(ctx, "Glitchland")
	require.ErrorIs(t, err, errors.ErrMalformedRow)

	snap, err := e.Snapshot(ctx)
	require.NoError(t, err)

	_, err = snap.IncomeUSD("Glitchland")
	require.ErrorIs(t, err, errors.ErrMalformedRow)
}

func TestCPIAverage(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	tests := []struct {
		country string
		want    float64
	}{
		{"Canada", 107.02},
		{"United States", 108.7},
		{"South Korea", 104.35},
		{"France", 105.12},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := e.CPIAverage(ctx, tt.country)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := e.CPIAverage(ctx, "Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)
}

func TestConfirmedCases(t *testing.T) {
	e := setup(t)

	cases, err := e.ConfirmedCases(context.Background())
	require.NoError(t, err)

	require.Equal(t, map[string]float64{
		"Canada":        1.55,
		"United States": 6.0,
		"South Korea":   0.12,
		"France":        3.86,
		"Japan":         0.18,
	}, cases)

	// Unknown or zero population never appears: no division by zero.
	require.NotContains(t, cases, "Nulland")
	require.NotContains(t, cases, "Atlantis")
	require.NotContains(t, cases, "Ghostland")
}
