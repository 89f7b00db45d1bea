// Package marketstore persists the latest collected payload per asset category.
// One row per category, insert-or-replace semantics, no history.
package marketstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hanwool/moneyweather/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS market_data (
	category TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// Record is one stored row: the latest raw payload for an asset category.
type Record struct {
	Category  string
	Payload   json.RawMessage
	UpdatedAt time.Time
}

// Update is one pending write produced by a collection cycle.
type Update struct {
	Category string
	Payload  interface{}
}

// Repository provides read/write access to the market_data table.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new market data repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the market_data table if it does not exist.
func (r *Repository) Migrate() error {
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create market_data table: %w", err)
	}
	return nil
}

// UpsertBatch writes all updates in a single transaction, keyed by category.
// An existing row for the same category is replaced.
func (r *Repository) UpsertBatch(updates []Update) error {
	if len(updates) == 0 {
		return nil
	}

	return database.WithTransaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			"INSERT OR REPLACE INTO market_data (category, payload, updated_at) VALUES (?, ?, ?)",
		)
		if err != nil {
			return fmt.Errorf("failed to prepare upsert: %w", err)
		}
		defer stmt.Close()

		now := time.Now().UTC()
		for _, u := range updates {
			payload, err := json.Marshal(u.Payload)
			if err != nil {
				return fmt.Errorf("failed to marshal payload for %s: %w", u.Category, err)
			}
			if _, err := stmt.Exec(u.Category, string(payload), now); err != nil {
				return fmt.Errorf("failed to upsert %s: %w", u.Category, err)
			}
		}
		return nil
	})
}

// Get returns the stored record for a category, or nil if none exists.
func (r *Repository) Get(category string) (*Record, error) {
	var rec Record
	var payload string
	err := r.db.QueryRow(
		"SELECT category, payload, updated_at FROM market_data WHERE category = ?",
		category,
	).Scan(&rec.Category, &payload, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read market_data row %s: %w", category, err)
	}
	rec.Payload = json.RawMessage(payload)
	return &rec, nil
}

// GetAll returns every stored record.
func (r *Repository) GetAll() ([]Record, error) {
	rows, err := r.db.Query("SELECT category, payload, updated_at FROM market_data")
	if err != nil {
		return nil, fmt.Errorf("failed to read market_data: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var payload string
		if err := rows.Scan(&rec.Category, &payload, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan market_data row: %w", err)
		}
		rec.Payload = json.RawMessage(payload)
		records = append(records, rec)
	}
	return records, rows.Err()
}
