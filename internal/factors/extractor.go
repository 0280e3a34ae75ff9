// Package factors extracts per-country socioeconomic indicators for 2020
// from fixed-layout dataset exports. Each indicator has its own extraction
// routine; all of them share the same scan-filter-accumulate shape over the
// dataset reader.
package factors

import (
	"strconv"
	"strings"

	"github.com/zoyakhan/covidfactors/internal/dataset"
)

// Fixed column layout per dataset. The exports are positional and fragile;
// these constants are the single place the layouts live.
const (
	populationSkipRows   = 5
	populationCountryCol = 0
	// The most recent year sits in the second-to-last column of the sheet.
	populationValueFromEnd = 2

	unemploymentSkipRows     = 5
	unemploymentCountryCol   = 0
	unemploymentValueFromEnd = 2

	incomeSkipRows   = 1
	incomeCountryCol = 1
	incomeYearCol    = 5
	incomeValueCol   = 12
	incomeYear       = "2020"

	exchangeSkipRows   = 1
	exchangeCountryCol = 1
	exchangeRateCol    = 4

	cpiSkipRows   = 1
	cpiCountryCol = 3
	cpiValueCol   = 11

	casesSkipRows   = 8
	casesGuardCol   = 1
	casesCountryCol = 2
	casesDateCol    = 3
	casesValueCol   = 4
	casesDate       = "2020-12-31"
)

// Config holds the dataset file locations. It is constructed at program
// start and passed in explicitly; there is no package-level dataset state.
type Config struct {
	PopulationPath     string
	UnemploymentPath   string
	IncomePath         string
	ExchangeRatePath   string
	CPIPath            string
	ConfirmedCasesPath string
}

// Extractor extracts indicator values from the configured datasets.
// Every call opens and scans its dataset fresh; nothing is cached between
// calls. Batch callers use Snapshot to load each dataset once instead.
type Extractor struct {
	config Config
}

// NewExtractor creates a new Extractor
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

func (e *Extractor) populationDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "population", Path: e.config.PopulationPath, SkipRows: populationSkipRows}
}

func (e *Extractor) unemploymentDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "unemployment", Path: e.config.UnemploymentPath, SkipRows: unemploymentSkipRows}
}

func (e *Extractor) incomeDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "income", Path: e.config.IncomePath, SkipRows: incomeSkipRows}
}

func (e *Extractor) exchangeDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "exchange_rate", Path: e.config.ExchangeRatePath, SkipRows: exchangeSkipRows}
}

func (e *Extractor) cpiDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "cpi", Path: e.config.CPIPath, SkipRows: cpiSkipRows}
}

func (e *Extractor) casesDesc() dataset.Descriptor {
	return dataset.Descriptor{Name: "confirmed_cases", Path: e.config.ConfirmedCasesPath, SkipRows: casesSkipRows}
}

// isDigits reports whether s is non-empty and consists only of ASCII
// digits. Population cells that fail this are treated as missing data.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseFloat parses a numeric dataset cell, tolerating surrounding space
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
