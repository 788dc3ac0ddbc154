package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Generate the full showcase set of signal pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := getApp().Suite()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICKER\tKIND\tPRIORITY\tPRICE\tCHANGE\tFILE")
		for _, res := range results {
			s := res.Summary
			fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s%%\t%s\n",
				s.Ticker, s.Kind, s.Priority, s.Price, s.ChangePercent, s.Filename)
		}
		return w.Flush()
	},
}
