package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List comparable statistics",
	Long: `List the statistics available for comparison in the loaded dataset.
The default feature is marked with *.`,
	Args: cobra.NoArgs,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	features := app.Engine.Features()
	def := domain.DefaultFeature(features)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FEATURE\tLABEL\tBETTER")
	fmt.Fprintln(w, "-------\t-----\t------")
	for _, f := range features {
		name := f
		if f == def {
			name += " *"
		}
		better := "higher"
		if domain.LowerIsBetter(f) {
			better = "lower"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, domain.FeatureLabel(f), better)
	}
	return w.Flush()
}
