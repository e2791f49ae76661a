package iobuild_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/internal/iobuild"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptWithProgress(false)})
	return cfg
}

func TestBuildFiles(t *testing.T) {
	b := iobuild.New(testConfig())

	table, err := b.BuildFiles(
		filepath.Join("testdata", "nodes.dmp"),
		filepath.Join("testdata", "names.dmp"),
	)
	require.NoError(t, err)

	// the "environmental samples" subtree (48479) and the species
	// attached directly under a family (666) are gone; everything else
	// survives, sorted by name
	expected := taxonomy.Table{
		{ID: 2, Rank: ranks.Domain, ParentID: 1, Name: "Bacteria"},
		{ID: 91347, Rank: ranks.Order, ParentID: 1236, Name: "Enterobacterales"},
		{ID: 543, Rank: ranks.Family, ParentID: 91347, Name: "Enterobacteriaceae"},
		{ID: 561, Rank: ranks.Genus, ParentID: 543, Name: "Escherichia"},
		{ID: 562, Rank: ranks.Species, ParentID: 561, Name: "Escherichia coli"},
		{ID: 83333, Rank: ranks.Strain, ParentID: 562, Name: "Escherichia coli K-12"},
		{ID: 1236, Rank: ranks.Class, ParentID: 1224, Name: "Gammaproteobacteria"},
		{ID: 1224, Rank: ranks.Phylum, ParentID: 2, Name: "Pseudomonadota"},
		{ID: 131567, Rank: ranks.NoRank, ParentID: 1, Name: "cellular organisms"},
	}
	assert.Equal(t, expected, table)
}

// The forced name of the Bacteria taxon wins over the dump's records;
// the dump in testdata calls it "eubacteria".
func TestBuildBacteriaOverride(t *testing.T) {
	b := iobuild.New(testConfig())

	table, err := b.BuildFiles(
		filepath.Join("testdata", "nodes.dmp"),
		filepath.Join("testdata", "names.dmp"),
	)
	require.NoError(t, err)

	var found bool
	for _, row := range table {
		if row.ID == taxonomy.BacteriaID {
			found = true
			assert.Equal(t, "Bacteria", row.Name)
		}
		assert.NotEqual(t, "eubacteria", row.Name)
	}
	assert.True(t, found)
}

func TestBuildCustomBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Update([]config.Option{config.OptBlacklist([]int{666})})
	b := iobuild.New(cfg)

	table, err := b.BuildFiles(
		filepath.Join("testdata", "nodes.dmp"),
		filepath.Join("testdata", "names.dmp"),
	)
	require.NoError(t, err)

	ids := make(map[int]struct{})
	for _, row := range table {
		ids[row.ID] = struct{}{}
	}
	// 48479 is no longer blacklisted; it survives as a scaffolding node
	// under the root, while its species is still dropped as an
	// incomplete lineage
	assert.Contains(t, ids, 48479)
	assert.NotContains(t, ids, 151659)
	assert.NotContains(t, ids, 666)
}

func TestBuildNameCollision(t *testing.T) {
	nodes := "5\t|\t1\t|\tdomain\t|\n" +
		"9\t|\t1\t|\tdomain\t|\n"
	names := "5\t|\tArchaea\t|\t\t|\tscientific name\t|\n" +
		"9\t|\tArchaea\t|\t\t|\tscientific name\t|\n"

	b := iobuild.New(testConfig())
	_, err := b.Build(
		strings.NewReader(nodes),
		strings.NewReader(names),
	)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.NameCollisionError, gnErr.Code)
}

func TestBuildFilesMissing(t *testing.T) {
	b := iobuild.New(testConfig())

	_, err := b.BuildFiles(
		filepath.Join("testdata", "no-such.dmp"),
		filepath.Join("testdata", "names.dmp"),
	)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DumpOpenError, gnErr.Code)
}
