package iodump

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rec joins dump fields with the taxdump delimiter, including the
// trailing fragment.
func rec(fields ...string) string {
	return strings.Join(fields, "\t|\t") + "\t|"
}

func TestParseNodes(t *testing.T) {
	dump := strings.Join([]string{
		rec("1", "1", "no rank"),
		rec("2", "131567", "domain"),
		rec("131567", "1", "no rank"),
		"\t|", // blank after stripping, skipped
		rec("562", "561", "species"),
	}, "\n") + "\n"

	rnk, rel, err := ParseNodes(strings.NewReader(dump))
	require.NoError(t, err)

	assert.Len(t, rnk, 4)
	assert.Equal(t, ranks.NoRank, rnk[1])
	assert.Equal(t, ranks.Domain, rnk[2])
	assert.Equal(t, ranks.Species, rnk[562])

	// the root is never a relation key
	assert.Equal(t, taxonomy.Relation{
		2:      131567,
		131567: 1,
		562:    561,
	}, rel)
}

func TestParseNodesDuplicateID(t *testing.T) {
	dump := strings.Join([]string{
		rec("1", "1", "no rank"),
		rec("562", "561", "species"),
		rec("562", "561", "species"),
	}, "\n")

	_, _, err := ParseNodes(strings.NewReader(dump))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DuplicateNodeError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "562")
}

func TestParseNodesUnknownRank(t *testing.T) {
	dump := rec("562", "561", "speces")

	_, _, err := ParseNodes(strings.NewReader(dump))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.UnknownRankError, gnErr.Code)
}

func TestParseNodesMalformed(t *testing.T) {
	tests := []struct {
		msg  string
		line string
	}{
		{"too few fields", rec("562", "561")},
		{"bad id", rec("x", "561", "species")},
		{"bad parent id", rec("562", "y", "species")},
	}

	for _, v := range tests {
		_, _, err := ParseNodes(strings.NewReader(v.line))
		require.Error(t, err, v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.DumpRecordError, gnErr.Code, v.msg)
	}
}

func TestParseNames(t *testing.T) {
	dump := strings.Join([]string{
		rec("562", "Escherichia coli", "", "scientific name"),
		rec("562", "Bacillus coli", "Bacillus coli Migula 1895", "synonym"),
		rec("561", "Escherichia", "", "scientific name"),
	}, "\n")

	res, err := ParseNames(strings.NewReader(dump), nil)
	require.NoError(t, err)

	require.Len(t, res[562], 2)
	assert.Equal(t, taxonomy.NameCandidate{
		Class: ranks.ScientificName,
		Name:  "Escherichia coli",
	}, res[562][0])
	// the unique variant wins over the plain one
	assert.Equal(t, "Bacillus coli Migula 1895", res[562][1].Name)
	assert.Equal(t, ranks.Synonym, res[562][1].Class)
}

func TestParseNamesRestriction(t *testing.T) {
	dump := strings.Join([]string{
		rec("562", "Escherichia coli", "", "scientific name"),
		rec("561", "Escherichia", "", "scientific name"),
		rec("9606", "Homo sapiens", "", "scientific name"),
	}, "\n")

	keep := map[int]struct{}{562: {}}
	res, err := ParseNames(strings.NewReader(dump), keep)
	require.NoError(t, err)

	assert.Len(t, res, 1)
	assert.Contains(t, res, 562)
}

func TestParseNamesUnknownClass(t *testing.T) {
	// the class vocabulary is validated even for records outside the
	// restriction set
	dump := rec("9606", "Homo sapiens", "", "scientifc name")

	keep := map[int]struct{}{562: {}}
	_, err := ParseNames(strings.NewReader(dump), keep)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.UnknownNameClassError, gnErr.Code)
}

func TestParseNamesMalformed(t *testing.T) {
	dump := rec("562", "Escherichia coli", "scientific name")

	_, err := ParseNames(strings.NewReader(dump), nil)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DumpRecordError, gnErr.Code)
}
