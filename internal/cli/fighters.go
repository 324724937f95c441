package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var fightersCmd = &cobra.Command{
	Use:   "fighters",
	Short: "List fighter names",
	Long: `List every distinct fighter name in the dataset, sorted.

Examples:
  ufcompare fighters                 # All fighters
  ufcompare fighters --search jones  # Names containing "jones"`,
	Args: cobra.NoArgs,
	RunE: runFighters,
}

var fightersSearch string

func init() {
	rootCmd.AddCommand(fightersCmd)
	fightersCmd.Flags().StringVarP(&fightersSearch, "search", "s", "", "Case-insensitive substring filter")
}

func runFighters(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext(ctx, false)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	needle := strings.ToLower(fightersSearch)
	out := cmd.OutOrStdout()
	for _, name := range app.Engine.FighterNames() {
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		fmt.Fprintln(out, name)
	}
	return nil
}
