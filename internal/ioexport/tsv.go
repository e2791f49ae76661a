// Package ioexport persists a finished taxonomy table, either as a
// tab-separated text file or as a SQLite database.
package ioexport

import (
	"bytes"
	"os"
	"strconv"

	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Header is the first line of the TSV output.
const Header = "child_id\tchild_rank\tparent_id\tname\n"

// NewWriter returns a Writer for the configured output format.
func NewWriter(cfg *config.Config, path string) lifecycle.Writer {
	if cfg.Format == config.FormatSQLite {
		return &sqliteWriter{path: path}
	}
	return &tsvWriter{path: path}
}

type tsvWriter struct {
	path string
}

// Write creates the output file and emits the serialized table. The file
// must not exist yet; preflight checks this, O_EXCL enforces it.
func (w *tsvWriter) Write(t taxonomy.Table) error {
	file, err := os.OpenFile(
		w.path,
		os.O_WRONLY|os.O_CREATE|os.O_EXCL,
		0644,
	)
	if err != nil {
		return WriteOutputError(w.path, err)
	}
	defer file.Close()

	if _, err = file.Write(TSV(t)); err != nil {
		return WriteOutputError(w.path, err)
	}
	return nil
}

// TSV serializes the table: a header line followed by one tab-separated
// record per row, ranks rendered with underscores instead of spaces.
func TSV(t taxonomy.Table) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	for _, row := range t {
		buf.WriteString(strconv.Itoa(row.ID))
		buf.WriteByte('\t')
		buf.WriteString(row.Rank.Underscored())
		buf.WriteByte('\t')
		buf.WriteString(strconv.Itoa(row.ParentID))
		buf.WriteByte('\t')
		buf.WriteString(row.Name)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
