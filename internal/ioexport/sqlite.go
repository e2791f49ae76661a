package ioexport

import (
	"database/sql"

	"github.com/gnames/gnuuid"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	_ "modernc.org/sqlite"
)

// taxaDDL mirrors the TSV columns; name_id adds the deterministic UUID v5
// of the name string, the id convention of the gn ecosystem.
const taxaDDL = `
CREATE TABLE taxa (
	id INTEGER PRIMARY KEY,
	rank TEXT NOT NULL,
	parent_id INTEGER NOT NULL,
	name TEXT NOT NULL UNIQUE,
	name_id TEXT NOT NULL
);
CREATE INDEX idx_taxa_parent_id ON taxa (parent_id);
`

type sqliteWriter struct {
	path string
}

// Write stores the table in a fresh SQLite database at the writer's path.
// All rows go in a single transaction through one prepared statement.
func (w *sqliteWriter) Write(t taxonomy.Table) error {
	db, err := sql.Open("sqlite", w.path)
	if err != nil {
		return SQLiteCreateError(w.path, err)
	}
	defer db.Close()

	if _, err = db.Exec(taxaDDL); err != nil {
		return SQLiteCreateError(w.path, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return SQLiteInsertError(w.path, err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO taxa (id, rank, parent_id, name, name_id) " +
			"VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return SQLiteInsertError(w.path, err)
	}
	defer stmt.Close()

	for _, row := range t {
		_, err = stmt.Exec(
			row.ID,
			row.Rank.Underscored(),
			row.ParentID,
			row.Name,
			gnuuid.New(row.Name).String(),
		)
		if err != nil {
			tx.Rollback()
			return SQLiteInsertError(w.path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return SQLiteInsertError(w.path, err)
	}
	return nil
}
