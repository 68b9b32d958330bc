package store

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    source TEXT NOT NULL,
    score INTEGER NOT NULL,
    tier TEXT NOT NULL,
    entropy_bits REAL NOT NULL,
    adjusted_bits REAL NOT NULL,
    length INTEGER NOT NULL,
    has_upper BOOLEAN NOT NULL,
    has_lower BOOLEAN NOT NULL,
    has_digit BOOLEAN NOT NULL,
    has_symbol BOOLEAN NOT NULL,
    is_common BOOLEAN NOT NULL,
    pattern_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at);
CREATE INDEX IF NOT EXISTS idx_assessments_tier ON assessments(tier);
`
