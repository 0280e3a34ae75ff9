package alias

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		canonical string
		ds        Dataset
		want      string
	}{
		{"South Korea", DatasetPopulation, "Korea, Rep."},
		{"South Korea", DatasetUnemployment, "Korea, Rep."},
		{"South Korea", DatasetCPI, "Republic of Korea"},
		{"South Korea", DatasetExchangeRate, "Korea"},
		{"United States", DatasetConfirmedCases, "United States of America"},
		{"France", DatasetExchangeRate, "Euro Zone"},
		{"Germany", DatasetExchangeRate, "Euro Zone"},
		{"France", DatasetPopulation, "France"},
		{"Canada", DatasetUnemployment, "Canada"},
		{"Atlantis", DatasetCPI, "Atlantis"},
	}

	for _, tt := range tests {
		t.Run(tt.canonical+"/"+string(tt.ds), func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.canonical, tt.ds))
		})
	}
}

func TestEuroZone(t *testing.T) {
	require.Len(t, EuroZone(), 19)
	require.True(t, IsEuroZone("France"))
	require.True(t, IsEuroZone("Lithuania"))
	require.False(t, IsEuroZone("United Kingdom"))
	require.False(t, IsEuroZone("Canada"))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		cell      string
		ds        Dataset
		want      bool
	}{
		{"exact hit", "Canada", "Canada", DatasetPopulation, true},
		{"exact miss on extra text", "United States", "United States of America", DatasetPopulation, false},
		{"alias hit", "South Korea", "Korea, Rep.", DatasetUnemployment, true},
		{"raw name misses aliased dataset", "South Korea", "South Korea", DatasetUnemployment, false},
		{"cpi containment", "United States", "United States of America", DatasetCPI, true},
		{"cpi alias containment", "South Korea", "Republic of Korea", DatasetCPI, true},
		{"cases containment", "United States", "United States of America", DatasetConfirmedCases, true},
		{"cpi plain containment", "Canada", "Canada", DatasetCPI, true},
		{"no korea false positive", "South Korea", "Democratic People's Republic of Korea", DatasetCPI, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Match(tt.canonical, tt.cell, tt.ds))
		})
	}
}

func TestCanonical(t *testing.T) {
	require.Equal(t, "United States", Canonical("United States of America", DatasetConfirmedCases))
	require.Equal(t, "South Korea", Canonical("Korea, Rep.", DatasetPopulation))
	require.Equal(t, "Canada", Canonical("Canada", DatasetConfirmedCases))
	require.Equal(t, "Atlantis", Canonical("Atlantis", DatasetIncome))
}
