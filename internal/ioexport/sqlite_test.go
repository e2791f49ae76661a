package ioexport_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gntaxa/internal/ioexport"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptFormat(config.FormatSQLite)})
	return cfg
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.sqlite")
	w := ioexport.NewWriter(sqliteConfig(), path)

	err := w.Write(sample())
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM taxa").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var rank, name, nameID string
	var parentID int
	err = db.QueryRow(
		"SELECT rank, parent_id, name, name_id FROM taxa WHERE id = ?",
		562,
	).Scan(&rank, &parentID, &name, &nameID)
	require.NoError(t, err)

	assert.Equal(t, "species", rank)
	assert.Equal(t, 561, parentID)
	assert.Equal(t, "Escherichia coli", name)
	assert.Equal(t, gnuuid.New("Escherichia coli").String(), nameID)
}

// The name column is unique, a second write into the same database fails.
func TestWriteSQLiteTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.sqlite")
	w := ioexport.NewWriter(sqliteConfig(), path)

	err := w.Write(sample())
	require.NoError(t, err)

	err = w.Write(sample())
	assert.Error(t, err)
}
