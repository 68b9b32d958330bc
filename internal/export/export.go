// Package export serializes assessment results to the stable JSON
// contract consumed by external tooling. Field names are part of that
// contract and must not change.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/cracktime"
)

// Pattern is one detected pattern in the export shape.
type Pattern struct {
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	SpanRatio   float64 `json:"spanRatio"`
}

// TimeToCrack carries the three projections, both as human strings and
// raw seconds.
type TimeToCrack struct {
	Online           string  `json:"online"`
	Offline          string  `json:"offline"`
	Optimized        string  `json:"optimized"`
	OnlineSeconds    float64 `json:"onlineSeconds"`
	OfflineSeconds   float64 `json:"offlineSeconds"`
	OptimizedSeconds float64 `json:"optimizedSeconds"`
}

// Report is the exported assessment bundle.
type Report struct {
	Score           int         `json:"score"`
	Tier            string      `json:"tier"`
	Entropy         float64     `json:"entropy"`
	AdjustedEntropy float64     `json:"adjustedEntropy"`
	Patterns        []Pattern   `json:"patterns"`
	Issues          []string    `json:"issues"`
	Length          int         `json:"length"`
	IsCommon        bool        `json:"isCommon"`
	TimeToCrack     TimeToCrack `json:"timeToCrack"`
}

// NewReport builds a Report from an assessment and its crack-time
// estimate.
func NewReport(a *analyzer.Assessment, est *cracktime.Estimate) *Report {
	report := &Report{
		Score:           a.Score,
		Tier:            string(a.Tier),
		Entropy:         a.EntropyBits,
		AdjustedEntropy: a.AdjustedEntropyBits,
		Patterns:        make([]Pattern, 0, len(a.Patterns)),
		Issues:          a.Issues,
		Length:          a.Length,
		IsCommon:        a.IsCommon,
		TimeToCrack: TimeToCrack{
			Online:           cracktime.FormatSeconds(est.OnlineSeconds),
			Offline:          cracktime.FormatSeconds(est.OfflineSeconds),
			Optimized:        cracktime.FormatSeconds(est.OptimizedSeconds),
			OnlineSeconds:    est.OnlineSeconds,
			OfflineSeconds:   est.OfflineSeconds,
			OptimizedSeconds: est.OptimizedSeconds,
		},
	}
	if report.Issues == nil {
		report.Issues = []string{}
	}
	for _, m := range a.Patterns {
		report.Patterns = append(report.Patterns, Pattern{
			Kind:        m.Kind.String(),
			Description: m.Description,
			SpanRatio:   m.SpanRatio,
		})
	}
	return report
}

// Marshal renders a report as indented JSON.
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}
