package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/cracktime"
	"github.com/blackwell-systems/passgauge/internal/export"
	"github.com/blackwell-systems/passgauge/internal/output"
	"github.com/blackwell-systems/passgauge/internal/store"
)

var (
	assessJSON   bool
	assessRecord bool
)

var assessCmd = &cobra.Command{
	Use:   "assess <password>",
	Short: "Score a single password",
	Long: `Assess one password and print its score, strength tier, entropy,
detected weak patterns, and estimated time to crack at three attacker
speeds.

Pass '-' as the password to read it from stdin instead of the command
line, which keeps it out of shell history.`,
	Example: `  # Assess a password given as an argument
  passgauge assess 'Tr0ub4dor&3'

  # Read the password from stdin
  echo -n 'Tr0ub4dor&3' | passgauge assess -

  # Emit the full report as JSON
  passgauge assess --json 'hunter2'

  # Record the score (not the password) in the history database
  passgauge assess --record 'hunter2'`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Emit the report as JSON")
	assessCmd.Flags().BoolVar(&assessRecord, "record", false, "Record score metrics in the history database")

	RootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	password := args[0]
	if password == "-" {
		line, err := readPasswordStdin()
		if err != nil {
			return err
		}
		password = line
	}

	a := analyzer.Assess(password)
	est := cracktime.Compute(a, password)

	if assessRecord {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.InsertRecord(store.NewRecord(a, "cli")); err != nil {
			return fmt.Errorf("failed to record assessment: %w", err)
		}
	}

	if assessJSON {
		data, err := export.NewReport(a, est).Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(output.RenderAssessment(password, a, est))
	return nil
}

// readPasswordStdin reads a single password from stdin, stripping one
// trailing newline.
func readPasswordStdin() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
