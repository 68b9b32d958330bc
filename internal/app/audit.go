package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/export"
	"github.com/blackwell-systems/passgauge/internal/output"
)

var (
	auditJSON      bool
	auditRecord    bool
	auditFailUnder int
)

var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Audit a file of candidate passwords",
	Long: `Audit every password in a file, one per line, and print a summary
table sorted weakest first. Blank lines and lines starting with '#'
are skipped.

With --fail-under N the command exits non-zero if any password scores
below N, which makes it usable as a policy gate in scripts and CI.`,
	Example: `  # Audit a candidate list
  passgauge audit candidates.txt

  # Fail if anything scores below 50
  passgauge audit --fail-under 50 candidates.txt

  # Emit per-password JSON reports, weakest first
  passgauge audit --json candidates.txt

  # Record score metrics for later review
  passgauge audit --record candidates.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Emit reports as a JSON array")
	auditCmd.Flags().BoolVar(&auditRecord, "record", false, "Record score metrics in the history database")
	auditCmd.Flags().IntVar(&auditFailUnder, "fail-under", 0, "Exit non-zero if any score falls below this value")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	record := auditRecord || (!cmd.Flags().Changed("record") && fileCfg.RecordByDefault())
	failUnder := auditFailUnder
	if !cmd.Flags().Changed("fail-under") {
		failUnder = fileCfg.FailUnderDefault()
	}

	passwords, err := readPasswordList(args[0])
	if err != nil {
		return err
	}
	results := assessAll(passwords)

	if record {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := recordResults(st, results, "audit"); err != nil {
			return fmt.Errorf("failed to record audit results: %w", err)
		}
	}

	if auditJSON {
		reports := make([]*export.Report, 0, len(results))
		for _, r := range results {
			reports = append(reports, export.NewReport(r.Assessment, r.Estimate))
		}
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode reports: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(output.RenderAuditTable(results))
	}

	if failUnder > 0 {
		for _, r := range results {
			if r.Assessment.Score < failUnder {
				return fmt.Errorf("%d password(s) scored below %d", countBelow(results, failUnder), failUnder)
			}
		}
	}
	return nil
}

func countBelow(results []output.AuditResult, threshold int) int {
	n := 0
	for _, r := range results {
		if r.Assessment.Score < threshold {
			n++
		}
	}
	return n
}
