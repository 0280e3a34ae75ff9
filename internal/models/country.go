package models

import (
	"fmt"

	"github.com/zoyakhan/covidfactors/internal/errors"
)

// CountryRecord aggregates every 2020 indicator for one country. Records
// are constructed once by the builder and never mutated afterwards; a
// record only exists if every indicator was available.
type CountryRecord struct {
	// Name is the canonical country name used across all lookups
	Name string

	// Population is the year-2020 total population
	Population int64

	// FoodInsecurity is the food insecurity percentage, in [0,100]
	FoodInsecurity float64

	// ConfirmedCases is cumulative COVID-19 cases as a percent of
	// population on 2020-12-31, in [0,100]
	ConfirmedCases float64

	// Unemployment is the 2020 unemployment rate percentage, in [0,100]
	Unemployment float64

	// CPI is the mean 2020 consumer price index for food
	CPI float64

	// Income is the 2020 annual income in USD
	Income float64
}

// Validate checks the record's representation invariants
func (r CountryRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty name", errors.ErrInvalidRecord)
	}
	if r.Population < 0 {
		return fmt.Errorf("%w: %s: negative population %d", errors.ErrInvalidRecord, r.Name, r.Population)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"food_insecurity", r.FoodInsecurity},
		{"confirmed_cases", r.ConfirmedCases},
		{"unemployment", r.Unemployment},
	} {
		if f.value < 0 || f.value > 100 {
			return fmt.Errorf("%w: %s: %s %.2f outside [0,100]",
				errors.ErrInvalidRecord, r.Name, f.name, f.value)
		}
	}
	if r.CPI < 0 {
		return fmt.Errorf("%w: %s: negative cpi %.2f", errors.ErrInvalidRecord, r.Name, r.CPI)
	}
	if r.Income < 0 {
		return fmt.Errorf("%w: %s: negative income %.2f", errors.ErrInvalidRecord, r.Name, r.Income)
	}
	return nil
}

// RecordSet is an ordered collection of country records. Order follows the
// country list the set was built from.
type RecordSet struct {
	records []CountryRecord
	byName  map[string]int
}

// NewRecordSet creates a RecordSet from records, preserving their order
func NewRecordSet(records []CountryRecord) *RecordSet {
	byName := make(map[string]int, len(records))
	for i, r := range records {
		byName[r.Name] = i
	}
	return &RecordSet{records: records, byName: byName}
}

// Records returns the records in build order
func (s *RecordSet) Records() []CountryRecord {
	out := make([]CountryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record for the named country
func (s *RecordSet) Get(name string) (CountryRecord, bool) {
	i, ok := s.byName[name]
	if !ok {
		return CountryRecord{}, false
	}
	return s.records[i], true
}

// Len returns the number of records in the set
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Names returns the country names in build order
func (s *RecordSet) Names() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Name
	}
	return out
}

// Series extracts one indicator across the set, in build order. Used by
// callers fitting one indicator against another.
func (s *RecordSet) Series(indicator Indicator) []float64 {
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		out[i] = r.Indicator(indicator)
	}
	return out
}

// Indicator identifies one numeric field of a CountryRecord
type Indicator string

const (
	IndicatorPopulation     Indicator = "population"
	IndicatorFoodInsecurity Indicator = "food_insecurity"
	IndicatorConfirmedCases Indicator = "confirmed_cases"
	IndicatorUnemployment   Indicator = "unemployment"
	IndicatorCPI            Indicator = "cpi"
	IndicatorIncome         Indicator = "income"
)

// Indicators lists every indicator in display order
func Indicators() []Indicator {
	return []Indicator{
		IndicatorPopulation,
		IndicatorFoodInsecurity,
		IndicatorConfirmedCases,
		IndicatorUnemployment,
		IndicatorCPI,
		IndicatorIncome,
	}
}

// Indicator returns the named indicator's value
func (r CountryRecord) Indicator(ind Indicator) float64 {
	switch ind {
	case IndicatorPopulation:
		return float64(r.Population)
	case IndicatorFoodInsecurity:
		return r.FoodInsecurity
	case IndicatorConfirmedCases:
		return r.ConfirmedCases
	case IndicatorUnemployment:
		return r.Unemployment
	case IndicatorCPI:
		return r.CPI
	case IndicatorIncome:
		return r.Income
	default:
		return 0
	}
}
