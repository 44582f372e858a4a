package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// errMalformed marks a record that exists but no longer decodes.
// Readers treat it as absent; the next write replaces it.
var errMalformed = errors.New("malformed record")

func getRecord(ctx context.Context, db *sql.DB, key string, out any) (bool, error) {
	row := db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("record get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("record %q: %w", key, errMalformed)
	}
	return true, nil
}

func putRecord(ctx context.Context, db *sql.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("record encode %q: %w", key, err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("record put %q: %w", key, err)
	}
	return nil
}
