package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupError_Unwrap(t *testing.T) {
	err := NewLookupError("unemployment", "unemployment.csv", "Atlantis", ErrCountryNotFound)

	require.ErrorIs(t, err, ErrCountryNotFound)
	require.True(t, IsNotFound(err))
	require.Contains(t, err.Error(), "unemployment.csv")
	require.Contains(t, err.Error(), "Atlantis")
}

func TestLookupError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *LookupError
		want string
	}{
		{
			name: "with country",
			err:  NewLookupError("cpi", "cpi.csv", "Canada", ErrCountryNotFound),
			want: `cpi: cpi.csv: "Canada": data on this country is not available`,
		},
		{
			name: "without country",
			err:  NewLookupError("confirmed_cases", "confirmed_cases.csv", "", ErrFileAccess),
			want: "confirmed_cases: confirmed_cases.csv: dataset file is missing or unreadable",
		},
		{
			name: "op only",
			err:  NewLookupError("population", "", "", ErrMalformedRow),
			want: "population: malformed dataset row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"Canada", "United States", "United Kingdom", "South Korea", "Japan"}

	tests := []struct {
		name string
		want string
	}{
		{"Canda", "Canada"},
		{"United Sates", "United States"},
		{"South Koria", "South Korea"},
		{"Xqzw", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Suggest(tt.name, known))
		})
	}
}

func TestNotFoundWithSuggestion(t *testing.T) {
	known := []string{"Canada", "Japan"}

	err := NotFoundWithSuggestion("Canda", known)
	require.ErrorIs(t, err, ErrCountryNotFound)
	require.Contains(t, err.Error(), `did you mean "Canada"?`)

	err = NotFoundWithSuggestion("Atlantis", known)
	require.True(t, errors.Is(err, ErrCountryNotFound))
	require.NotContains(t, err.Error(), "did you mean")
}

func TestCollector(t *testing.T) {
	c := NewCollector(0)

	require.False(t, c.HasErrors())
	require.NoError(t, c.Add("Canada", nil))
	require.False(t, c.HasErrors())

	require.NoError(t, c.Add("Atlantis", ErrCountryNotFound))
	require.NoError(t, c.Add("Elbonia", fmt.Errorf("parse: %w", ErrMalformedRow)))

	require.True(t, c.HasErrors())
	require.Equal(t, 2, c.Count())
	require.Equal(t, 1, c.NotFoundCount())

	entries := c.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "Atlantis", entries[0].Country)
}

func TestCollector_Limit(t *testing.T) {
	c := NewCollector(2)

	require.NoError(t, c.Add("a", ErrCountryNotFound))
	require.NoError(t, c.Add("b", ErrCountryNotFound))
	require.Error(t, c.Add("c", ErrCountryNotFound))
	require.Equal(t, 2, c.Count())
}
