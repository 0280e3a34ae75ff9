// Package builder assembles country records from the loaded datasets and
// orchestrates concurrent batch builds.
package builder

import (
	"context"

	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/factors"
	"github.com/zoyakhan/covidfactors/internal/models"
	"github.com/zoyakhan/covidfactors/internal/worker"
)

// Config holds the loaded data sources and batch settings
type Config struct {
	// Snapshot serves every per-country indicator lookup
	Snapshot *factors.Snapshot

	// FoodInsecurity maps canonical country names to food insecurity
	// percentages, as produced by factors.LoadFoodInsecurity
	FoodInsecurity map[string]float64

	// Workers is the batch concurrency (0 = NumCPU)
	Workers int

	// ErrorLimit caps the number of collected failures; reaching the cap
	// aborts the batch (0 = unlimited)
	ErrorLimit int
}

// Builder assembles CountryRecord values. A Builder is safe for concurrent
// use: the snapshot and the insecurity mapping are read-only after load.
type Builder struct {
	snap       *factors.Snapshot
	insecurity map[string]float64

	// insecurityNames is precomputed for nearest-name suggestions
	insecurityNames []string

	workers    int
	errorLimit int
}

// New creates a Builder over an already-loaded snapshot
func New(config Config) *Builder {
	names := make([]string, 0, len(config.FoodInsecurity))
	for name := range config.FoodInsecurity {
		names = append(names, name)
	}

	return &Builder{
		snap:            config.Snapshot,
		insecurity:      config.FoodInsecurity,
		insecurityNames: names,
		workers:         config.Workers,
		errorLimit:      config.ErrorLimit,
	}
}

// Build assembles the full record for one country. The food-insecurity and
// confirmed-cases mappings act as gatekeepers: both are checked, in that
// order, before any other indicator lookup runs. Any missing indicator
// fails the whole build; a partial record is never returned.
func (b *Builder) Build(ctx context.Context, name string) (models.CountryRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.CountryRecord{}, err
	}

	insecurity, ok := b.insecurity[name]
	if !ok {
		return models.CountryRecord{}, errors.NewLookupError("food_insecurity", "food_security", name,
			errors.NotFoundWithSuggestion(name, b.insecurityNames))
	}

	caseRate, ok := b.snap.ConfirmedCases()[name]
	if !ok {
		return models.CountryRecord{}, errors.NewLookupError("confirmed_cases", "confirmed_cases", name,
			errors.NotFoundWithSuggestion(name, b.snap.CaseCountries()))
	}

	population, err := b.snap.Population(name)
	if err != nil {
		return models.CountryRecord{}, err
	}

	unemployment, err := b.snap.Unemployment(name)
	if err != nil {
		return models.CountryRecord{}, err
	}

	cpi, err := b.snap.CPIAverage(name)
	if err != nil {
		return models.CountryRecord{}, err
	}

	income, err := b.snap.IncomeUSD(name)
	if err != nil {
		return models.CountryRecord{}, err
	}

	record := models.CountryRecord{
		Name:           name,
		Population:     population,
		FoodInsecurity: insecurity,
		ConfirmedCases: caseRate,
		Unemployment:   unemployment,
		CPI:            cpi,
		Income:         income,
	}

	if err := record.Validate(); err != nil {
		return models.CountryRecord{}, err
	}

	return record, nil
}

// BatchResult is the outcome of a BuildAll run
type BatchResult struct {
	// Records holds the assembled records, in input order
	Records *models.RecordSet

	// Summary aggregates counts and timing for the batch
	Summary *models.Summary

	// Failures collects per-country build errors
	Failures *errors.Collector
}

// BuildAll builds records for every named country using the worker pool.
// Output order follows input order; failures are collected instead of
// aborting the batch.
func (b *Builder) BuildAll(ctx context.Context, names []string) (*BatchResult, error) {
	summary := models.NewSummary()
	failures := errors.NewCollector(b.errorLimit)

	inputCh := make(chan string, len(names))
	for _, name := range names {
		inputCh <- name
	}
	close(inputCh)

	pool := worker.NewPool(ctx, worker.Config{
		Workers:      b.workers,
		Build:        b.Build,
		InputChannel: inputCh,
	})

	if err := pool.Start(); err != nil {
		return nil, err
	}

	byCountry := make(map[string]*models.BuildResult, len(names))
	for result := range pool.Results() {
		byCountry[result.Country] = result
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reassemble in input order; the pool emits in completion order
	records := make([]models.CountryRecord, 0, len(names))
	for _, name := range names {
		result, ok := byCountry[name]
		if !ok {
			continue
		}

		summary.AddResult(result)

		if result.IsBuilt() {
			records = append(records, result.Record)
		} else if err := failures.Add(name, result.Error); err != nil {
			// The configured failure cap is a batch abort, not a
			// silent drop.
			return nil, err
		}
	}
	summary.Finalize()

	return &BatchResult{
		Records:  models.NewRecordSet(records),
		Summary:  summary,
		Failures: failures,
	}, nil
}
