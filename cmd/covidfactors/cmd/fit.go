package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoyakhan/covidfactors/internal/models"
	"github.com/zoyakhan/covidfactors/internal/stats"
)

func init() {
	rootCmd.AddCommand(fitCmd)
}

var fitCmd = &cobra.Command{
	Use:   "fit <indicator>",
	Short: "Fits a least-squares line of the confirmed-case rate against an indicator.",
	Long: `Builds the configured record set, then fits confirmed-case rate as a
linear function of the chosen indicator (population, food_insecurity,
unemployment, cpi, income) across the built countries.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ind := models.Indicator(args[0])
		if !validIndicator(ind) {
			fatal(fmt.Errorf("unknown indicator %q", args[0]))
		}

		b, cfg, err := loadBuilder(cmd.Context())
		if err != nil {
			fatal(err)
		}

		batch, err := b.BuildAll(cmd.Context(), cfg.Countries)
		if err != nil {
			fatal(err)
		}

		xs := batch.Records.Series(ind)
		ys := batch.Records.Series(models.IndicatorConfirmedCases)

		slope, intercept, err := stats.LeastSquares(xs, ys)
		if err != nil {
			fatal(fmt.Errorf("fitting over %d countries: %w", batch.Records.Len(), err))
		}

		fmt.Printf("confirmed_cases = %.6g * %s + %.6g  (n=%d)\n",
			slope, ind, intercept, batch.Records.Len())
	},
}
