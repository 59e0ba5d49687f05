package journal

const schemaVersion = 1

const schema = `
-- Dismissals table
CREATE TABLE IF NOT EXISTS dismissals (
    id TEXT PRIMARY KEY,
    dialog TEXT NOT NULL,
    outcome TEXT NOT NULL,
    value TEXT DEFAULT '',
    closed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_dismissals_closed_at ON dismissals(closed_at);

-- Schema info table
CREATE TABLE IF NOT EXISTS schema_info (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
