package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const baseConfig = `{
  // paths are relative to the working directory
  datasets: {
    population: "data/population.csv",
    unemployment: "data/unemployment.csv",
    income: "data/income.csv",
    exchange_rate: "data/exchange_rates.csv",
    cpi: "data/cpi.csv",
    confirmed_cases: "data/confirmed_cases.csv",
    food_security: "data/food_security.json",
  },
  countries: ["Canada", "Japan"],
  workers: 2,
}`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "covidfactors.json5", baseConfig)

	cfg, err := Read(path)
	require.NoError(t, err)

	require.Equal(t, "data/population.csv", cfg.Datasets.Population)
	require.Equal(t, "data/food_security.json", cfg.Datasets.FoodSecurity)
	require.Equal(t, []string{"Canada", "Japan"}, cfg.Countries)
	require.Equal(t, 2, cfg.Workers)
	require.NoError(t, cfg.Validate())
}

func TestRead_LocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "covidfactors.json5", baseConfig)
	writeConfig(t, dir, "covidfactors.local.json5", `{
  datasets: { population: "local/population.csv" },
  workers: 8,
}`)

	cfg, err := Read(path)
	require.NoError(t, err)

	// Overridden fields come from the local file, the rest stay
	require.Equal(t, "local/population.csv", cfg.Datasets.Population)
	require.Equal(t, "data/income.csv", cfg.Datasets.Income)
	require.Equal(t, 8, cfg.Workers)
}

func TestRead_DefaultCountries(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "covidfactors.json5", `{
  datasets: {
    population: "a.csv", unemployment: "b.csv", income: "c.csv",
    exchange_rate: "d.csv", cpi: "e.csv", confirmed_cases: "f.csv",
    food_security: "g.json",
  },
}`)

	cfg, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, DefaultCountries(), cfg.Countries)
	require.Len(t, cfg.Countries, 8)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_MissingPath(t *testing.T) {
	cfg := Config{}
	require.Error(t, cfg.Validate())
}
