// Package output provides terminal output utilities for passgauge.
//
// This package includes:
//   - A detail view for single-password assessments
//   - Table rendering for bulk audit results and stored history
//   - Human-readable formatting for entropy, times, and tiers
//
// All rendering uses ASCII characters and ANSI color codes for terminal
// output. Colors are gated on stdout being a TTY.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/cracktime"
	"github.com/blackwell-systems/passgauge/internal/store"
)

// ANSI color codes for tier display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// AuditResult bundles one audited password with its assessment and
// crack-time estimate for rendering.
type AuditResult struct {
	Password   string
	Assessment *analyzer.Assessment
	Estimate   *cracktime.Estimate
}

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// getTierColor returns the ANSI color for a strength tier.
func getTierColor(tier analyzer.Tier) string {
	switch tier {
	case analyzer.TierExcellent, analyzer.TierVeryStrong:
		return colorGreen
	case analyzer.TierStrong, analyzer.TierModerate:
		return colorYellow
	default:
		return colorRed
	}
}

// RenderAssessment renders the detail view for a single password.
func RenderAssessment(password string, a *analyzer.Assessment, est *cracktime.Estimate) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Password:  %s\n", truncate(password, 40)))
	sb.WriteString(fmt.Sprintf("Score:     %d/100 (%s)\n", a.Score, colorize(getTierColor(a.Tier), string(a.Tier))))
	sb.WriteString(fmt.Sprintf("Entropy:   %.1f bits", a.EntropyBits))
	if a.AdjustedEntropyBits != a.EntropyBits {
		sb.WriteString(fmt.Sprintf(" (reported as %.1f)", a.AdjustedEntropyBits))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Length:    %d characters, %d of 4 classes\n", a.Length, a.CharClassCount()))
	if a.IsCommon {
		sb.WriteString(colorize(colorRed, "Common:    matches known weak passwords\n"))
	}

	sb.WriteString("\nTime to crack:\n")
	sb.WriteString(fmt.Sprintf("  online    (%s/s): %s\n",
		humanize.Comma(int64(cracktime.RateOnline)), cracktime.FormatSeconds(est.OnlineSeconds)))
	sb.WriteString(fmt.Sprintf("  offline   (%s/s): %s\n",
		humanize.Comma(int64(cracktime.RateOffline)), cracktime.FormatSeconds(est.OfflineSeconds)))
	sb.WriteString(fmt.Sprintf("  optimized (%s/s): %s\n",
		humanize.Comma(int64(cracktime.RateOptimized)), cracktime.FormatSeconds(est.OptimizedSeconds)))

	if len(a.Patterns) > 0 {
		sb.WriteString("\nPatterns:\n")
		for _, m := range a.Patterns {
			sb.WriteString(fmt.Sprintf("  - %s (covers %.0f%%)\n", m.Description, m.SpanRatio*100))
		}
	}
	if len(a.Issues) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, issue := range a.Issues {
			sb.WriteString(fmt.Sprintf("  - %s\n", issue))
		}
	}

	return sb.String()
}

// RenderAuditTable renders a table of bulk audit results.
// Note: Does not sort - expects results to be pre-sorted by caller.
func RenderAuditTable(results []AuditResult) string {
	if len(results) == 0 {
		return "No passwords audited.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-24s %-5s %-7s %-9s %-8s %-18s %s\n",
		"Password", "Len", "Score", "Entropy", "Common", "Offline Crack", "Tier"))
	sb.WriteString(strings.Repeat("─", 86))
	sb.WriteString("\n")

	for _, r := range results {
		a := r.Assessment
		common := "—"
		if a.IsCommon {
			common = "yes"
		}
		tier := string(a.Tier)
		sb.WriteString(fmt.Sprintf("%-24s %-5d %-7s %-9s %-8s %-18s %s\n",
			truncate(r.Password, 24),
			a.Length,
			fmt.Sprintf("%d/100", a.Score),
			fmt.Sprintf("%.1f", a.AdjustedEntropyBits),
			common,
			truncate(cracktime.FormatSeconds(r.Estimate.OfflineSeconds), 18),
			colorize(getTierColor(a.Tier), tier)))
	}

	weak := 0
	for _, r := range results {
		if r.Assessment.Tier.Rank() <= analyzer.TierWeak.Rank() {
			weak++
		}
	}
	sb.WriteString(fmt.Sprintf("\n%s audited, %s below moderate\n",
		plural(len(results), "password"), humanize.Comma(int64(weak))))

	return sb.String()
}

// RenderHistoryTable renders stored audit records, newest first.
func RenderHistoryTable(records []*store.Record) string {
	if len(records) == 0 {
		return "No recorded audits.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-16s %-9s %-5s %-7s %-9s %-8s %s\n",
		"When", "Source", "Len", "Score", "Entropy", "Common", "Tier"))
	sb.WriteString(strings.Repeat("─", 70))
	sb.WriteString("\n")

	for _, r := range records {
		common := "—"
		if r.IsCommon {
			common = "yes"
		}
		sb.WriteString(fmt.Sprintf("%-16s %-9s %-5d %-7s %-9s %-8s %s\n",
			truncate(humanize.Time(r.CreatedAt), 16),
			r.Source,
			r.Length,
			fmt.Sprintf("%d/100", r.Score),
			fmt.Sprintf("%.1f", r.AdjustedBits),
			common,
			colorize(getTierColor(analyzer.Tier(r.Tier)), r.Tier)))
	}

	return sb.String()
}

// RenderTierSummary renders aggregate tier counts from the history
// store, strongest tier first.
func RenderTierSummary(counts map[string]int) string {
	if len(counts) == 0 {
		return "No recorded audits.\n"
	}

	order := []analyzer.Tier{
		analyzer.TierExcellent,
		analyzer.TierVeryStrong,
		analyzer.TierStrong,
		analyzer.TierModerate,
		analyzer.TierWeak,
		analyzer.TierVeryWeak,
	}

	var sb strings.Builder
	total := 0
	for _, tier := range order {
		n := counts[string(tier)]
		total += n
		if n == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-14s %s\n",
			colorize(getTierColor(tier), string(tier)),
			humanize.Comma(int64(n))))
	}
	sb.WriteString(fmt.Sprintf("\n%s recorded\n", plural(total, "assessment")))
	return sb.String()
}

// truncate shortens a string to maxLen, appending an ellipsis marker.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), unit)
}
