package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/iofs"
	"github.com/gnames/gntaxa/pkg/blacklist"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()

	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	for _, dir := range []string{
		config.ConfigDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// a second run is a no-op
	err = iofs.EnsureDirs(home)
	assert.NoError(t, err)
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	err = iofs.EnsureConfigFile(home)
	require.NoError(t, err)

	bs, err := os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, iofs.ConfigYAML, string(bs))
}

// An existing file is never overwritten.
func TestEnsureConfigFileKeepsEdits(t *testing.T) {
	home := t.TempDir()
	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	path := config.ConfigFilePath(home)
	err = os.WriteFile(path, []byte("format: sqlite\n"), 0644)
	require.NoError(t, err)

	err = iofs.EnsureConfigFile(home)
	require.NoError(t, err)

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "format: sqlite\n", string(bs))
}

// The embedded blacklist parses and holds the default subtree.
func TestEnsureBlacklistFile(t *testing.T) {
	home := t.TempDir()
	err := iofs.EnsureDirs(home)
	require.NoError(t, err)

	err = iofs.EnsureBlacklistFile(home)
	require.NoError(t, err)

	bs, err := iofs.ReadBlacklistFile(config.BlacklistFilePath(home))
	require.NoError(t, err)

	bl, err := blacklist.Parse(bs)
	require.NoError(t, err)
	assert.Equal(t, []int{config.EnvironmentalSamplesID}, bl.IDs())
}

func TestReadBlacklistFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such.yaml")
	_, err := iofs.ReadBlacklistFile(path)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}

func TestPreflight(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "names.dmp")
	nodes := filepath.Join(dir, "nodes.dmp")
	output := filepath.Join(dir, "taxa.tsv")

	for _, p := range []string{names, nodes} {
		err := os.WriteFile(p, []byte("1\t|\n"), 0644)
		require.NoError(t, err)
	}

	err := iofs.Preflight(output, names, nodes)
	assert.NoError(t, err)
}

func TestPreflightOutputExists(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "taxa.tsv")
	err := os.WriteFile(output, []byte(""), 0644)
	require.NoError(t, err)

	err = iofs.Preflight(output)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.OutputExistsError, gnErr.Code)
}

func TestPreflightInputMissing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "taxa.tsv")
	missing := filepath.Join(dir, "names.dmp")

	err := iofs.Preflight(output, missing)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InputMissingError, gnErr.Code)
}
