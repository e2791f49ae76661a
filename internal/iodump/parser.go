// Package iodump reads the line-oriented node and name dumps of a
// taxonomy release into memory.
//
// Records use the taxdump convention: fields separated by "\t|\t" with a
// trailing "\t|" fragment on every line. Lines that are blank after
// stripping the fragment are skipped.
package iodump

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gntaxa/pkg/ranks"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

const (
	fieldSep   = "\t|\t"
	lineSuffix = "\t|"
)

// maxLineSize bounds a single dump line; names are short, the limit only
// guards against binary garbage fed by mistake.
const maxLineSize = 1024 * 1024

// ParseNodes reads a nodes dump. Every record holds at least
// (id, parent id, rank). It returns the id→rank table and the raw
// child→parent relation; the root taxon is kept in the rank table but
// never appears as a relation key. A repeated id aborts the parse.
func ParseNodes(r io.Reader) (map[int]ranks.Rank, taxonomy.Relation, error) {
	rnk := make(map[int]ranks.Rank)
	rel := make(taxonomy.Relation)

	sc := newScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields, ok := splitRecord(sc.Text())
		if !ok {
			continue
		}
		if len(fields) < 3 {
			return nil, nil, RecordError("nodes", lineNo, sc.Text())
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, RecordError("nodes", lineNo, sc.Text())
		}
		parentID, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, RecordError("nodes", lineNo, sc.Text())
		}
		rank, err := ranks.ParseRank(fields[2])
		if err != nil {
			return nil, nil, err
		}

		if _, ok := rnk[id]; ok {
			return nil, nil, DuplicateNodeError(id)
		}
		rnk[id] = rank
		if id != taxonomy.RootID {
			rel[id] = parentID
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, DumpReadError("nodes", err)
	}
	return rnk, rel, nil
}

// ParseNames reads a names dump. Every record holds
// (tax id, name, unique name, name class); the unique name wins when both
// variants are present. An unknown name class aborts the parse. When keep
// is not nil, records for ids outside of it are discarded after the name
// class is validated.
func ParseNames(
	r io.Reader,
	keep map[int]struct{},
) (map[int][]taxonomy.NameCandidate, error) {
	res := make(map[int][]taxonomy.NameCandidate)

	sc := newScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields, ok := splitRecord(sc.Text())
		if !ok {
			continue
		}
		if len(fields) < 4 {
			return nil, RecordError("names", lineNo, sc.Text())
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, RecordError("names", lineNo, sc.Text())
		}
		class, err := ranks.ParseNameClass(fields[3])
		if err != nil {
			return nil, err
		}

		if keep != nil {
			if _, ok := keep[id]; !ok {
				continue
			}
		}

		name := fields[2]
		if name == "" {
			name = fields[1]
		}
		res[id] = append(res[id], taxonomy.NameCandidate{
			Class: class,
			Name:  name,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, DumpReadError("names", err)
	}
	return res, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// splitRecord strips the trailing delimiter fragment and splits the line
// into fields. The second value is false for lines that are blank after
// stripping.
func splitRecord(line string) ([]string, bool) {
	line = strings.TrimSuffix(line, lineSuffix)
	if line == "" {
		return nil, false
	}
	return strings.Split(line, fieldSep), true
}
