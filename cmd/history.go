package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/dlg/internal/journal"
	"github.com/marcus/dlg/internal/output"
)

var (
	historyLimit int
	historyStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded dialog outcomes",
	Long:  `List outcomes recorded with --journal (or "journal": true in .dlg/config.json), newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := journalPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), output.Muted("no journal yet"))
			return nil
		}

		j, err := journal.Open(path)
		if err != nil {
			return err
		}
		defer j.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		if historyStats {
			counts, err := j.Counts(cmd.Context())
			if err != nil {
				return err
			}
			outcomes := make([]string, 0, len(counts))
			for o := range counts {
				outcomes = append(outcomes, o)
			}
			sort.Strings(outcomes)
			for _, o := range outcomes {
				fmt.Fprintf(w, "%s\t%d\n", o, counts[o])
			}
			return nil
		}

		entries, err := j.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.ClosedAt.Local().Format(time.DateTime), e.Dialog, e.Outcome, e.Value)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "show counts per outcome")
	rootCmd.AddCommand(historyCmd)
}
