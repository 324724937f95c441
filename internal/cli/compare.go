package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

var compareCmd = &cobra.Command{
	Use:   "compare <fighter1> <fighter2>",
	Short: "Compare two fighters on one statistic",
	Long: `Compare two fighters head-to-head on a single statistic.

Examples:
  ufcompare compare "Jon Jones" "Anderson Silva"
  ufcompare compare "Jon Jones" "Anderson Silva" --feature losses`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var compareFeature string

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVarP(&compareFeature, "feature", "f", "", "Statistic to compare (default: the dataset's default feature)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	feature := compareFeature
	if feature == "" {
		feature = domain.DefaultFeature(app.Engine.Features())
	}

	res, err := app.Engine.CompareByName(args[0], args[1], feature)
	if err != nil {
		return err
	}

	missed := 0
	for _, s := range []domain.Side{res.A, res.B} {
		if !s.Found {
			missed++
			app.Logger.Warn("fighter not found", "fighter", s.Fighter)
		}
	}
	app.Metrics.RecordComparison(ctx, ports.ComparisonEvent{
		Feature:        res.Feature,
		Numeric:        res.Numeric,
		FightersMissed: missed,
		Source:         "cli",
	})

	return printComparison(cmd.OutOrStdout(), res)
}

func printComparison(out io.Writer, res domain.ComparisonResult) error {
	title := fmt.Sprintf("Head-to-Head: %s", domain.FeatureLabel(res.Feature))
	if res.Numeric && res.LowerIsBetter {
		title += " (lower is better)"
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIGHTER\tVALUE\tDELTA\tRESULT")
	fmt.Fprintln(w, "-------\t-----\t-----\t------")
	for _, a := range []bool{true, false} {
		s := res.B
		if a {
			s = res.A
		}
		name := s.Fighter
		if !s.Found {
			name += " (not found)"
		}
		delta, result := "-", "-"
		if res.Numeric {
			delta = res.DisplayDelta(a)
			result = res.Outcome(a).String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, res.DisplayValue(a), delta, result)
	}
	return w.Flush()
}
