package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zoyakhan/covidfactors/internal/errors"
	"github.com/zoyakhan/covidfactors/internal/models"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [countries...]",
	Short: "Builds the full indicator record set and prints it as a table.",
	Long: `Builds a record for every configured country (or for the countries given
as arguments) and prints the assembled records. Countries with a missing
indicator are reported separately and do not abort the batch.`,
	Run: func(cmd *cobra.Command, args []string) {
		b, cfg, err := loadBuilder(cmd.Context())
		if err != nil {
			fatal(err)
		}

		countries := cfg.Countries
		if len(args) > 0 {
			countries = args
		}

		batch, err := b.BuildAll(cmd.Context(), countries)
		if err != nil {
			fatal(err)
		}

		renderRecords(batch.Records.Records())

		slog.Info("batch complete",
			"countries", batch.Summary.TotalCountries,
			"built", batch.Summary.BuiltCount,
			"failed", batch.Summary.FailedCount,
			"duration", batch.Summary.Duration,
		)

		if batch.Failures.HasErrors() {
			reporter := errors.NewReporter(batch.Failures, os.Stderr)
			reporter.PrintSummary()
			reporter.PrintDetailed(0)
			os.Exit(1)
		}
	},
}

func renderRecords(records []models.CountryRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{
		"Country", "Population", "Food Insecurity %", "Confirmed Cases %",
		"Unemployment %", "Food CPI", "Income (USD)",
	})

	for _, r := range records {
		t.AppendRow(table.Row{
			r.Name,
			r.Population,
			fmt.Sprintf("%.1f", r.FoodInsecurity),
			fmt.Sprintf("%.2f", r.ConfirmedCases),
			fmt.Sprintf("%.2f", r.Unemployment),
			fmt.Sprintf("%.2f", r.CPI),
			fmt.Sprintf("%.2f", r.Income),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
