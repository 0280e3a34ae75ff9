package factors

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/zoyakhan/covidfactors/internal/errors"
)

// TestSnapshot_MatchesFreshScans pins the contract that the one-time index
// serves results identical to the per-call dataset scans.
func TestSnapshot_MatchesFreshScans(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	snap, err := e.Snapshot(ctx)
	require.NoError(t, err)

	countries := []string{"Canada", "United States", "South Korea", "France", "Japan"}

	for _, country := range countries {
		t.Run(country, func(t *testing.T) {
			pop, err := e.Population(ctx, country)
			require.NoError(t, err)
			snapPop, err := snap.Population(country)
			require.NoError(t, err)
			require.Equal(t, pop, snapPop)

			rate, err := e.Unemployment(ctx, country)
			require.NoError(t, err)
			snapRate, err := snap.Unemployment(country)
			require.NoError(t, err)
			require.Equal(t, rate, snapRate)

			cpi, err := e.CPIAverage(ctx, country)
			require.NoError(t, err)
			snapCPI, err := snap.CPIAverage(country)
			require.NoError(t, err)
			require.Equal(t, cpi, snapCPI)

			usd, err := e.IncomeUSD(ctx, country)
			require.NoError(t, err)
			snapUSD, err := snap.IncomeUSD(country)
			require.NoError(t, err)
			require.Equal(t, usd, snapUSD)
		})
	}

	fresh, err := e.ConfirmedCases(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(fresh, snap.ConfirmedCases()); diff != "" {
		t.Fatalf("confirmed cases mismatch (-fresh +snapshot):\n%s", diff)
	}
}

func TestSnapshot_NotFound(t *testing.T) {
	e := setup(t)

	snap, err := e.Snapshot(context.Background())
	require.NoError(t, err)

	_, err = snap.Population("Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)

	_, err = snap.Unemployment("Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)

	_, err = snap.IncomeUSD("Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)

	_, err = snap.CPIAverage("Atlantis")
	require.ErrorIs(t, err, errors.ErrCountryNotFound)
}

func TestSnapshot_CaseCountries(t *testing.T) {
	e := setup(t)

	snap, err := e.Snapshot(context.Background())
	require.NoError(t, err)

	require.ElementsMatch(t,
		[]string{"Canada", "United States", "South Korea", "France", "Japan"},
		snap.CaseCountries())
}
