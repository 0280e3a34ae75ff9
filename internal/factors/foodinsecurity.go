package factors

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

// InsecurityFromSecurity converts an external food *security* score into
// the food insecurity percentage this system works with: the complement of
// the score, rounded to 1 decimal place. This conversion is applied
// exactly once, at ingestion.
func InsecurityFromSecurity(score float64) float64 {
	return stats.Round1(100 - score)
}

// LoadFoodInsecurity reads the scraped food-security JSON document (an
// array of single-entry country-to-score objects) and returns a mapping of
// country name to food insecurity percentage.
func LoadFoodInsecurity(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrFileAccess, path, err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrMalformedRow, path, err)
	}

	out := make(map[string]float64, len(entries))
	for _, entry := range entries {
		for country, value := range entry {
			score, err := scoreValue(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: score for %q: %v",
					errors.ErrMalformedRow, path, country, err)
			}
			out[country] = InsecurityFromSecurity(score)
		}
	}

	return out, nil
}

// scoreValue coerces a scraped score into a float. The scraper emits the
// table cells as strings, but hand-built documents carry plain numbers.
func scoreValue(v any) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case string:
		return strconv.ParseFloat(value, 64)
	default:
		return 0, fmt.Errorf("unsupported score type %T", v)
	}
}
