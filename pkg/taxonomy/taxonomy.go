// Package taxonomy restructures a raw taxonomic parent/child relation into
// a strictly-layered taxonomy restricted to the seven canonical ranks.
//
// The package is pure: every stage takes an immutable relation (plus lookup
// tables) and returns a new one, so stages compose and test independently.
// The intended order is FilterBlacklist, Canonicalize, Prune, ResolveNames,
// Assemble.
package taxonomy

import (
	"github.com/gnames/gntaxa/pkg/ranks"
)

const (
	// RootID is the fixed taxon id of the root of the dump.
	RootID = 1

	// BacteriaID is the well-known taxon id of Bacteria. Its resolved
	// name is forced to "Bacteria" regardless of the dump's name records.
	BacteriaID = 2
)

// Relation maps a child taxon id to its parent id. The root id never
// appears as a key. Restricted to any stage's surviving nodes, a Relation
// forms a forest rooted at RootID.
type Relation map[int]int

// NameCandidate is one name record for a taxon, as read from a names dump.
type NameCandidate struct {
	Class ranks.NameClass
	Name  string
}

// Row is a single record of the output taxonomy table.
type Row struct {
	ID       int
	Rank     ranks.Rank
	ParentID int
	Name     string
}

// Table is the final taxonomy table, sorted ascending by name.
type Table []Row
