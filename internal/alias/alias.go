// Package alias maps canonical country names to the spellings used by each
// dataset. Every divergence is enumerated in an explicit per-dataset table
// rather than handled with ad hoc substring checks, so accidental matches
// (e.g. "Korea" inside "North Korea") stay impossible to introduce silently.
package alias

import "strings"

// Dataset identifies one of the fixed source datasets
type Dataset string

const (
	DatasetPopulation     Dataset = "population"
	DatasetUnemployment   Dataset = "unemployment"
	DatasetIncome         Dataset = "income"
	DatasetExchangeRate   Dataset = "exchange_rate"
	DatasetCPI            Dataset = "cpi"
	DatasetConfirmedCases Dataset = "confirmed_cases"
)

// MatchMode is the comparison strategy a dataset requires
type MatchMode int

const (
	// MatchExact compares the resolved spelling for equality
	MatchExact MatchMode = iota

	// MatchContains accepts a cell that contains the resolved spelling.
	// The CPI and confirmed-cases exports embed extra text in their
	// country fields ("United States of America"), so equality never
	// fires for some countries.
	MatchContains
)

// euroZone is the fixed set of countries whose income is quoted against the
// single "Euro Zone" row of the exchange-rate dataset.
var euroZone = map[string]struct{}{
	"Belgium": {}, "Germany": {}, "Ireland": {}, "Spain": {}, "France": {},
	"Italy": {}, "Luxembourg": {}, "Netherlands": {}, "Austria": {},
	"Portugal": {}, "Finland": {}, "Greece": {}, "Slovenia": {},
	"Cyprus": {}, "Malta": {}, "Slovakia": {}, "Estonia": {},
	"Latvia": {}, "Lithuania": {},
}

// tables holds the known canonical-name divergences per dataset.
// Unknown countries always pass through unchanged.
var tables = map[Dataset]map[string]string{
	DatasetPopulation: {
		"South Korea": "Korea, Rep.",
	},
	DatasetUnemployment: {
		"South Korea": "Korea, Rep.",
	},
	DatasetCPI: {
		"South Korea": "Republic of Korea",
	},
	DatasetExchangeRate: {
		"South Korea": "Korea",
	},
	DatasetConfirmedCases: {
		"United States": "United States of America",
	},
}

// IsEuroZone reports whether the canonical country name uses the Euro
func IsEuroZone(country string) bool {
	_, ok := euroZone[country]
	return ok
}

// EuroZone returns the enumerated Euro-zone member list
func EuroZone() []string {
	out := make([]string, 0, len(euroZone))
	for c := range euroZone {
		out = append(out, c)
	}
	return out
}

// Resolve maps a canonical country name to the spelling used by the given
// dataset. Euro-zone members collapse to the single "Euro Zone" label in
// the exchange-rate dataset. Unknown countries pass through unchanged.
func Resolve(canonical string, ds Dataset) string {
	if ds == DatasetExchangeRate && IsEuroZone(canonical) {
		return "Euro Zone"
	}
	if table, ok := tables[ds]; ok {
		if spelling, ok := table[canonical]; ok {
			return spelling
		}
	}
	return canonical
}

// Mode returns the comparison strategy the dataset requires
func Mode(ds Dataset) MatchMode {
	switch ds {
	case DatasetCPI, DatasetConfirmedCases:
		return MatchContains
	default:
		return MatchExact
	}
}

// exclusions lists dataset cells that embed another country's spelling as a
// substring. For these cells only exact equality counts, which keeps
// "Republic of Korea" from matching inside "Democratic People's Republic
// of Korea".
var exclusions = map[Dataset]map[string]struct{}{
	DatasetCPI: {
		"Democratic People's Republic of Korea": {},
	},
	DatasetConfirmedCases: {
		"North Korea": {},
	},
}

// Match reports whether a dataset cell refers to the canonical country,
// using the dataset's resolved spelling and match mode.
func Match(canonical, cell string, ds Dataset) bool {
	spelling := Resolve(canonical, ds)
	if cell == spelling {
		return true
	}
	if Mode(ds) != MatchContains {
		return false
	}
	if _, excluded := exclusions[ds][cell]; excluded {
		return false
	}
	return strings.Contains(cell, spelling)
}

// Canonical maps a dataset cell back to its canonical country name.
// Cells with no table entry pass through unchanged.
func Canonical(cell string, ds Dataset) string {
	table, ok := tables[ds]
	if !ok {
		return cell
	}

	mode := Mode(ds)
	_, excluded := exclusions[ds][cell]
	for canonical, spelling := range table {
		if cell == spelling {
			return canonical
		}
		if mode == MatchContains && !excluded && strings.Contains(cell, spelling) {
			return canonical
		}
	}
	return cell
}
