package models

import (
	"time"
)

// BuildStatus represents the outcome of building one country record
type BuildStatus string

const (
	StatusBuilt  BuildStatus = "BUILT"
	StatusFailed BuildStatus = "FAILED"
)

// BuildResult represents the outcome of building a single country record
type BuildResult struct {
	// Country is the requested country name
	Country string

	// Status indicates the build outcome
	Status BuildStatus

	// Record is the assembled record, set only when Status is StatusBuilt
	Record CountryRecord

	// Error contains the failure, set only when Status is StatusFailed
	Error error

	// BuiltAt is when the build finished
	BuiltAt time.Time

	// Duration is how long the build took
	Duration time.Duration
}

// NewBuiltResult creates a successful build result
func NewBuiltResult(country string, record CountryRecord, duration time.Duration) *BuildResult {
	return &BuildResult{
		Country:  country,
		Status:   StatusBuilt,
		Record:   record,
		BuiltAt:  time.Now(),
		Duration: duration,
	}
}

// NewFailedResult creates a failed build result
func NewFailedResult(country string, err error, duration time.Duration) *BuildResult {
	return &BuildResult{
		Country:  country,
		Status:   StatusFailed,
		Error:    err,
		BuiltAt:  time.Now(),
		Duration: duration,
	}
}

// IsBuilt returns true if the record was assembled
func (r *BuildResult) IsBuilt() bool {
	return r.Status == StatusBuilt
}

// IsFailed returns true if the build failed
func (r *BuildResult) IsFailed() bool {
	return r.Status == StatusFailed
}

// Summary represents aggregated build results
type Summary struct {
	// TotalCountries is the number of countries attempted
	TotalCountries int

	// BuiltCount is the number of fully assembled records
	BuiltCount int

	// FailedCount is the number of countries with at least one
	// missing indicator
	FailedCount int

	// StartTime is when the batch started
	StartTime time.Time

	// EndTime is when the batch completed
	EndTime time.Time

	// Duration is the total batch time
	Duration time.Duration
}

// NewSummary creates a new Summary instance
func NewSummary() *Summary {
	return &Summary{
		StartTime: time.Now(),
	}
}

// AddResult updates the summary with a new result
func (s *Summary) AddResult(result *BuildResult) {
	s.TotalCountries++

	switch result.Status {
	case StatusBuilt:
		s.BuiltCount++
	case StatusFailed:
		s.FailedCount++
	}
}

// Finalize completes the summary calculation
func (s *Summary) Finalize() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// SuccessRate returns the percentage of assembled records
func (s *Summary) SuccessRate() float64 {
	if s.TotalCountries == 0 {
		return 0
	}
	return float64(s.BuiltCount) / float64(s.TotalCountries) * 100
}
