package store

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
)

// Record is one persisted audit entry. It carries the metrics of an
// assessment but never the password itself.
type Record struct {
	ID           int64
	CreatedAt    time.Time
	Source       string // label for where the audit came from: "cli", "audit", "watch", "generate"
	Score        int
	Tier         string
	EntropyBits  float64
	AdjustedBits float64
	Length       int
	HasUpper     bool
	HasLower     bool
	HasDigit     bool
	HasSymbol    bool
	IsCommon     bool
	PatternCount int
}

// NewRecord builds a Record from an assessment.
func NewRecord(a *analyzer.Assessment, source string) *Record {
	return &Record{
		CreatedAt:    time.Now().UTC(),
		Source:       source,
		Score:        a.Score,
		Tier:         string(a.Tier),
		EntropyBits:  a.EntropyBits,
		AdjustedBits: a.AdjustedEntropyBits,
		Length:       a.Length,
		HasUpper:     a.HasUpper,
		HasLower:     a.HasLower,
		HasDigit:     a.HasDigit,
		HasSymbol:    a.HasSymbol,
		IsCommon:     a.IsCommon,
		PatternCount: len(a.Patterns),
	}
}

// InsertRecord persists one audit entry and sets its ID.
func (s *Store) InsertRecord(r *Record) error {
	query := `
		INSERT INTO assessments
		(created_at, source, score, tier, entropy_bits, adjusted_bits, length,
		 has_upper, has_lower, has_digit, has_symbol, is_common, pattern_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.Exec(query,
		r.CreatedAt.Format(time.RFC3339),
		r.Source,
		r.Score,
		r.Tier,
		r.EntropyBits,
		r.AdjustedBits,
		r.Length,
		r.HasUpper,
		r.HasLower,
		r.HasDigit,
		r.HasSymbol,
		r.IsCommon,
		r.PatternCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record id: %w", err)
	}
	r.ID = id
	return nil
}

// ListRecords returns the most recent audit entries, newest first.
// A limit <= 0 returns everything.
func (s *Store) ListRecords(limit int) ([]*Record, error) {
	query := `
		SELECT id, created_at, source, score, tier, entropy_bits, adjusted_bits,
		       length, has_upper, has_lower, has_digit, has_symbol, is_common,
		       pattern_count
		FROM assessments
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var createdAt string
		err := rows.Scan(
			&r.ID,
			&createdAt,
			&r.Source,
			&r.Score,
			&r.Tier,
			&r.EntropyBits,
			&r.AdjustedBits,
			&r.Length,
			&r.HasUpper,
			&r.HasLower,
			&r.HasDigit,
			&r.HasSymbol,
			&r.IsCommon,
			&r.PatternCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment record: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}

// TierCounts returns how many recorded assessments landed in each tier.
func (s *Store) TierCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT tier, COUNT(*) FROM assessments GROUP BY tier`)
	if err != nil {
		return nil, fmt.Errorf("failed to count tiers: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tier string
		var n int
		if err := rows.Scan(&tier, &n); err != nil {
			return nil, fmt.Errorf("failed to scan tier count: %w", err)
		}
		counts[tier] = n
	}
	return counts, rows.Err()
}

// CountRecords returns the total number of audit entries.
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM assessments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assessment records: %w", err)
	}
	return n, nil
}
