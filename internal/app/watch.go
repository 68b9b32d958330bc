package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/passgauge/internal/output"
	"github.com/blackwell-systems/passgauge/internal/watcher"
)

var watchRecord bool

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-audit a password file whenever it changes",
	Long: `Watch a candidate password file and re-run the audit every time the
file is saved. The audit table is printed once at startup and again
after each change. Press Ctrl-C to stop.`,
	Example: `  # Watch a candidate list
  passgauge watch candidates.txt

  # Watch and record each audit's score metrics
  passgauge watch --record candidates.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchRecord, "record", false, "Record score metrics in the history database")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	audit := func() error {
		passwords, err := readPasswordList(path)
		if err != nil {
			return err
		}
		results := assessAll(passwords)
		fmt.Print(output.RenderAuditTable(results))

		if watchRecord {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := recordResults(st, results, "watch"); err != nil {
				return fmt.Errorf("failed to record audit results: %w", err)
			}
		}
		return nil
	}

	w, err := watcher.New(path, audit)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("\nWatching %s for changes (Ctrl-C to stop)...\n", path)

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	fmt.Printf("\nReceived signal %v, shutting down...\n", sig)

	return w.Stop()
}
