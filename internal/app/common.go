package app

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/cracktime"
	"github.com/blackwell-systems/passgauge/internal/output"
	"github.com/blackwell-systems/passgauge/internal/store"
)

// openStore opens the history database and ensures the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to prepare database: %w", err)
	}
	return st, nil
}

// readPasswordList reads candidate passwords from a file, one per line.
// Blank lines and lines starting with '#' are skipped. Leading and
// trailing whitespace is preserved inside the password but a trailing
// CR from Windows line endings is stripped.
func readPasswordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}
	return passwords, nil
}

// assessAll scores every candidate and sorts the results weakest first.
func assessAll(passwords []string) []output.AuditResult {
	results := make([]output.AuditResult, 0, len(passwords))
	for _, pw := range passwords {
		a := analyzer.Assess(pw)
		results = append(results, output.AuditResult{
			Password:   pw,
			Assessment: a,
			Estimate:   cracktime.Compute(a, pw),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Assessment.Score < results[j].Assessment.Score
	})
	return results
}

// recordResults persists the metrics of each result under the given
// source label. Password text is never written.
func recordResults(st *store.Store, results []output.AuditResult, source string) error {
	for _, r := range results {
		if err := st.InsertRecord(store.NewRecord(r.Assessment, source)); err != nil {
			return err
		}
	}
	return nil
}
