package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <fighter>...",
	Short: "Show the details table for fighters",
	Long: `Show wins, losses, draws, age, stance, height and weight for the named
fighters. Every row with a matching name is shown, in dataset order.

Examples:
  ufcompare details "Jon Jones" "Anderson Silva"
  ufcompare details "Jon Jones" --format csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetails,
}

var detailsFormat string

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().StringVar(&detailsFormat, "format", "table", "Output format: table, csv")
}

func runDetails(cmd *cobra.Command, args []string) error {
	if detailsFormat != "table" && detailsFormat != "csv" {
		return fmt.Errorf("unsupported format: %s", detailsFormat)
	}

	ctx := context.Background()

	app, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	table := app.Engine.Details(args...)
	out := cmd.OutOrStdout()

	if detailsFormat == "csv" {
		cw := csv.NewWriter(out)
		_ = cw.Write(append([]string{"name"}, table.Columns...))
		for _, row := range table.Rows {
			_ = cw.Write(append([]string{row.Name}, row.Cells...))
		}
		cw.Flush()
		return cw.Error()
	}

	if len(table.Rows) == 0 {
		fmt.Fprintln(out, "No matching fighters")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := append([]string{"NAME"}, table.Columns...)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(header, "\t")))
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(append([]string{row.Name}, row.Cells...), "\t"))
	}
	return w.Flush()
}
