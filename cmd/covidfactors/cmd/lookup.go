package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoyakhan/covidfactors/internal/models"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <country> [indicator]",
	Short: "Prints one country's record, or a single indicator of it.",
	Long: `Builds the record for one country and prints it. With an indicator
argument (population, food_insecurity, confirmed_cases, unemployment,
cpi, income) only that value is printed.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		b, _, err := loadBuilder(cmd.Context())
		if err != nil {
			fatal(err)
		}

		record, err := b.Build(cmd.Context(), args[0])
		if err != nil {
			fatal(err)
		}

		if len(args) == 1 {
			renderRecords([]models.CountryRecord{record})
			return
		}

		ind := models.Indicator(args[1])
		if !validIndicator(ind) {
			fatal(fmt.Errorf("unknown indicator %q", args[1]))
		}

		if ind == models.IndicatorPopulation {
			fmt.Printf("%d\n", record.Population)
			return
		}
		fmt.Printf("%.2f\n", record.Indicator(ind))
	},
}

func validIndicator(ind models.Indicator) bool {
	for _, known := range models.Indicators() {
		if ind == known {
			return true
		}
	}
	return false
}
