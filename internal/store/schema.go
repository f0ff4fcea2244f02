package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projections (
    cache_key   TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    created_at  TEXT NOT NULL
);
`
