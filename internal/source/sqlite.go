package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// selectRecords reads the dataset table in insertion order. keywords holds a
// JSON array of strings; NULL or empty means no keywords.
const selectRecords = `
	SELECT id, category, title, description, keywords
	FROM portfolio_items
	ORDER BY rowid
`

// readSQLite loads records from the portfolio_items table of the database at
// path. The connection is put in query-only mode and closed before returning.
func readSQLite(ctx context.Context, path string) ([]portfolio.Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("pragma query_only: %w", err)
	}

	rows, err := db.QueryContext(ctx, selectRecords)
	if err != nil {
		return nil, fmt.Errorf("querying portfolio_items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []portfolio.Record{}
	for rows.Next() {
		var (
			r        portfolio.Record
			desc     sql.NullString
			keywords sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Category, &r.Title, &desc, &keywords); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Description = desc.String
		r.Keywords = []string{}
		if keywords.Valid && keywords.String != "" {
			if err := json.Unmarshal([]byte(keywords.String), &r.Keywords); err != nil {
				return nil, fmt.Errorf("record id %d: parsing keywords: %w", r.ID, err)
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return records, nil
}
