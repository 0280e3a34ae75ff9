package errors

import (
	"errors"
	"fmt"

	"github.com/antzucaro/matchr"
)

// Sentinel errors for common failure conditions
var (
	// ErrCountryNotFound indicates a mandatory per-country lookup yielded no data
	ErrCountryNotFound = errors.New("data on this country is not available")

	// ErrFileAccess indicates a dataset file is missing or unreadable
	ErrFileAccess = errors.New("dataset file is missing or unreadable")

	// ErrMalformedRow indicates a dataset row has an unexpected shape or value
	ErrMalformedRow = errors.New("malformed dataset row")

	// ErrInvalidRecord indicates a country record violates its invariants
	ErrInvalidRecord = errors.New("invalid country record")

	// ErrZeroDenominator indicates a ratio was requested with a zero denominator
	ErrZeroDenominator = errors.New("denominator must be non-zero")
)

// LookupError wraps extraction errors with dataset and country context
type LookupError struct {
	// Op is the indicator operation that failed (e.g. "population")
	Op string

	// Dataset is the dataset identifier being scanned
	Dataset string

	// Country is the canonical country name being looked up
	Country string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.Country != "" {
		return fmt.Sprintf("%s: %s: %q: %v", e.Op, e.Dataset, e.Country, e.Err)
	}
	if e.Dataset != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Dataset, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError creates a new LookupError
func NewLookupError(op, dataset, country string, err error) *LookupError {
	return &LookupError{
		Op:      op,
		Dataset: dataset,
		Country: country,
		Err:     err,
	}
}

// IsNotFound reports whether err indicates missing country data
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCountryNotFound)
}

// IsFileAccess reports whether err indicates an unreadable dataset file
func IsFileAccess(err error) bool {
	return errors.Is(err, ErrFileAccess)
}

// Suggest returns the known country name most similar to name, or "" when
// nothing clears the similarity floor. Used to enrich not-found errors with
// a "did you mean" hint when a lookup fails on a misspelled country.
func Suggest(name string, known []string) string {
	const floor = 0.82

	var best string
	var bestScore float64

	for _, candidate := range known {
		score := matchr.JaroWinkler(name, candidate, false)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore < floor {
		return ""
	}
	return best
}

// NotFoundWithSuggestion wraps ErrCountryNotFound with a nearest-name hint
// when one exists among the known spellings.
func NotFoundWithSuggestion(name string, known []string) error {
	if hint := Suggest(name, known); hint != "" {
		return fmt.Errorf("%w (did you mean %q?)", ErrCountryNotFound, hint)
	}
	return ErrCountryNotFound
}
