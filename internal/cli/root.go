package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ufcompare",
	Short: "Compare UFC fighters head-to-head",
	Long: `ufcompare loads a UFC fighter statistics CSV and compares two fighters
on a single statistic, from the terminal or a local web page.

The dataset path comes from --data, then UFC_DATA_PATH, then the default
ufc-fighters-statistics-CLEANED.csv in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var dataPath string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Path to the fighters CSV (overrides UFC_DATA_PATH)")
}
