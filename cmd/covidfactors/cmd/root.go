package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoyakhan/covidfactors/internal/builder"
	"github.com/zoyakhan/covidfactors/internal/config"
	"github.com/zoyakhan/covidfactors/internal/factors"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "covidfactors",
	Short: "covidfactors extracts 2020 per-country socioeconomic indicators from the dataset exports.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		"covidfactors.json5", "path to the JSON5 config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadBuilder reads the config, loads every dataset once, and returns a
// ready builder plus the configured country list.
func loadBuilder(ctx context.Context) (*builder.Builder, config.Config, error) {
	cfg, err := config.Read(configPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("reading config %q: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, err
	}

	extractor := factors.NewExtractor(factors.Config{
		PopulationPath:     cfg.Datasets.Population,
		UnemploymentPath:   cfg.Datasets.Unemployment,
		IncomePath:         cfg.Datasets.Income,
		ExchangeRatePath:   cfg.Datasets.ExchangeRate,
		CPIPath:            cfg.Datasets.CPI,
		ConfirmedCasesPath: cfg.Datasets.ConfirmedCases,
	})

	snap, err := extractor.Snapshot(ctx)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading datasets: %w", err)
	}

	insecurity, err := factors.LoadFoodInsecurity(cfg.Datasets.FoodSecurity)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading food security scores: %w", err)
	}

	b := builder.New(builder.Config{
		Snapshot:       snap,
		FoodInsecurity: insecurity,
		Workers:        cfg.Workers,
	})

	return b, cfg, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
