package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/output"
)

var (
	historyLimit   int
	historySummary bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded audit scores",
	Long: `Display past recorded assessments, newest first. Only score metrics
are stored; the audited passwords themselves are never persisted.

Use --summary for aggregate counts per strength tier instead of
individual entries.`,
	Example: `  # Show the 20 most recent recorded assessments
  passgauge history

  # Show the last 100
  passgauge history --limit 100

  # Aggregate counts per tier
  passgauge history --summary`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().BoolVar(&historySummary, "summary", false, "Show aggregate tier counts")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit <= 0 {
		return fmt.Errorf("invalid limit: %d (must be positive)", historyLimit)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if historySummary {
		counts, err := st.TierCounts()
		if err != nil {
			return fmt.Errorf("failed to load tier counts: %w", err)
		}
		fmt.Print(output.RenderTierSummary(counts))
		return nil
	}

	records, err := st.ListRecords(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	fmt.Print(output.RenderHistoryTable(records))
	return nil
}
