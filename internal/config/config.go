// Package config loads run configuration from JSON5 files with optional
// local overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Datasets holds the on-disk locations of every input file
type Datasets struct {
	Population     string `json:"population"`
	Unemployment   string `json:"unemployment"`
	Income         string `json:"income"`
	ExchangeRate   string `json:"exchange_rate"`
	CPI            string `json:"cpi"`
	ConfirmedCases string `json:"confirmed_cases"`
	FoodSecurity   string `json:"food_security"`
}

// Config is the full run configuration
type Config struct {
	// Datasets locates the input files
	Datasets Datasets `json:"datasets"`

	// Countries is the list of countries to build records for
	Countries []string `json:"countries"`

	// Workers is the batch build concurrency (0 = NumCPU)
	Workers int `json:"workers"`
}

// DefaultCountries returns the country list used when the config file
// names none.
func DefaultCountries() []string {
	return []string{
		"Canada",
		"United States",
		"China",
		"Japan",
		"Australia",
		"France",
		"United Arab Emirates",
		"United Kingdom",
	}
}

// Validate checks that every dataset path is set
func (c Config) Validate() error {
	paths := []struct {
		name string
		path string
	}{
		{"datasets.population", c.Datasets.Population},
		{"datasets.unemployment", c.Datasets.Unemployment},
		{"datasets.income", c.Datasets.Income},
		{"datasets.exchange_rate", c.Datasets.ExchangeRate},
		{"datasets.cpi", c.Datasets.CPI},
		{"datasets.confirmed_cases", c.Datasets.ConfirmedCases},
		{"datasets.food_security", c.Datasets.FoodSecurity},
	}
	for _, p := range paths {
		if p.path == "" {
			return fmt.Errorf("config: %s is not set", p.name)
		}
	}
	return nil
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// Read loads a JSON5 config file and merges a `<name>.local.<ext>` sibling
// over it when one exists. Missing country list falls back to the default
// eight countries.
func Read(name string) (Config, error) {
	var out Config
	allNotFound := true

	dirname := filepath.Dir(name)
	basename := filepath.Base(name)
	prefixname, ext := splitExt(basename)

	defaultFile, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(defaultFile) > 0 {
		if err := json5.Unmarshal(defaultFile, &out); err != nil {
			return out, err
		}
		allNotFound = false
	}

	localFilepath := filepath.Join(
		dirname,
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
	localFile, err := os.ReadFile(localFilepath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(localFile) > 0 {
		var override Config
		if err := json5.Unmarshal(localFile, &override); err != nil {
			return out, err
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localFilepath)
		allNotFound = false
	}

	if allNotFound {
		return out, os.ErrNotExist
	}

	if len(out.Countries) == 0 {
		out.Countries = DefaultCountries()
	}

	return out, nil
}
