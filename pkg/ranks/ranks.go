// Package ranks provides the closed vocabularies of a taxonomy dump:
// taxonomic ranks and name classes.
//
// Both vocabularies are fixed at build time. Parsing is case-sensitive and
// total over the closed set; any other string is rejected with an error.
package ranks

import (
	"strings"
)

// Rank is a taxonomic rank from the closed set used by taxonomy dumps.
// The zero value is not a valid rank.
type Rank int

const (
	rankNone Rank = iota
	AcellularRoot
	Biotype
	CellularRoot
	Clade
	Class
	Cohort
	Domain
	Family
	Forma
	FormaSpecialis
	Genotype
	Genus
	Infraclass
	Infraorder
	Isolate
	Kingdom
	Morph
	NoRank
	Order
	Parvorder
	Pathogroup
	Phylum
	Realm
	Section
	Series
	Serogroup
	Serotype
	Species
	SpeciesGroup
	SpeciesSubgroup
	Strain
	Subclass
	Subcohort
	Subfamily
	Subgenus
	Subkingdom
	Suborder
	Subphylum
	Subsection
	Subspecies
	Subtribe
	Subvariety
	Superclass
	Superfamily
	Superkingdom
	Superorder
	Superphylum
	Tribe
	Varietas
)

// RootLadder is the synthetic ladder position of the root taxon, one step
// above Domain.
const RootLadder = 8

var rankLabels = map[Rank]string{
	AcellularRoot:   "acellular root",
	Biotype:         "biotype",
	CellularRoot:    "cellular root",
	Clade:           "clade",
	Class:           "class",
	Cohort:          "cohort",
	Domain:          "domain",
	Family:          "family",
	Forma:           "forma",
	FormaSpecialis:  "forma specialis",
	Genotype:        "genotype",
	Genus:           "genus",
	Infraclass:      "infraclass",
	Infraorder:      "infraorder",
	Isolate:         "isolate",
	Kingdom:         "kingdom",
	Morph:           "morph",
	NoRank:          "no rank",
	Order:           "order",
	Parvorder:       "parvorder",
	Pathogroup:      "pathogroup",
	Phylum:          "phylum",
	Realm:           "realm",
	Section:         "section",
	Series:          "series",
	Serogroup:       "serogroup",
	Serotype:        "serotype",
	Species:         "species",
	SpeciesGroup:    "species group",
	SpeciesSubgroup: "species subgroup",
	Strain:          "strain",
	Subclass:        "subclass",
	Subcohort:       "subcohort",
	Subfamily:       "subfamily",
	Subgenus:        "subgenus",
	Subkingdom:      "subkingdom",
	Suborder:        "suborder",
	Subphylum:       "subphylum",
	Subsection:      "subsection",
	Subspecies:      "subspecies",
	Subtribe:        "subtribe",
	Subvariety:      "subvariety",
	Superclass:      "superclass",
	Superfamily:     "superfamily",
	Superkingdom:    "superkingdom",
	Superorder:      "superorder",
	Superphylum:     "superphylum",
	Tribe:           "tribe",
	Varietas:        "varietas",
}

var rankByLabel = func() map[string]Rank {
	res := make(map[string]Rank, len(rankLabels))
	for rank, label := range rankLabels {
		res[label] = rank
	}
	return res
}()

// ladder maps the seven canonical ranks to their positions, Species at
// the bottom, Domain at the top. Ranks outside the ladder are collapsed
// or rejected during canonicalization.
var ladder = map[Rank]int{
	Species: 1,
	Genus:   2,
	Family:  3,
	Order:   4,
	Class:   5,
	Phylum:  6,
	Domain:  7,
}

// ParseRank converts a rank label from a taxonomy dump to a Rank.
// Matching is exact and case-sensitive.
func ParseRank(s string) (Rank, error) {
	rank, ok := rankByLabel[s]
	if !ok {
		return rankNone, unknownRankError(s)
	}
	return rank, nil
}

// String returns the rank's label as it appears in taxonomy dumps.
func (r Rank) String() string {
	return rankLabels[r]
}

// Underscored returns the rank's label with spaces replaced by
// underscores, the form used in output tables.
func (r Rank) Underscored() string {
	return strings.ReplaceAll(rankLabels[r], " ", "_")
}

// Ladder returns the rank's position on the canonical seven-step ladder
// (Species=1 … Domain=7). The second value is false for ranks outside
// the ladder.
func (r Rank) Ladder() (int, bool) {
	pos, ok := ladder[r]
	return pos, ok
}
