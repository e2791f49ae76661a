package ranks

// NameClass is the quality category of a name record. Classes are ordered
// from worst to best; the ordering is used only to pick the best name when
// a taxon has several.
type NameClass int

const (
	nameClassNone NameClass = iota
	InPart
	Includes
	TypeMaterial
	Authority
	Acronym
	GenbankAcronym
	Anamorph
	GenbankAnamorph
	Teleomorph
	Synonym
	GenbankSynonym
	EquivalentName
	BlastName
	GenbankCommonName
	CommonName
	ScientificName
)

var nameClassLabels = map[NameClass]string{
	InPart:            "in-part",
	Includes:          "includes",
	TypeMaterial:      "type material",
	Authority:         "authority",
	Acronym:           "acronym",
	GenbankAcronym:    "genbank acronym",
	Anamorph:          "anamorph",
	GenbankAnamorph:   "genbank anamorph",
	Teleomorph:        "teleomorph",
	Synonym:           "synonym",
	GenbankSynonym:    "genbank synonym",
	EquivalentName:    "equivalent name",
	BlastName:         "blast name",
	GenbankCommonName: "genbank common name",
	CommonName:        "common name",
	ScientificName:    "scientific name",
}

var nameClassByLabel = func() map[string]NameClass {
	res := make(map[string]NameClass, len(nameClassLabels))
	for class, label := range nameClassLabels {
		res[label] = class
	}
	return res
}()

// ParseNameClass converts a name class label from a names dump to a
// NameClass. Matching is exact and case-sensitive.
func ParseNameClass(s string) (NameClass, error) {
	class, ok := nameClassByLabel[s]
	if !ok {
		return nameClassNone, unknownNameClassError(s)
	}
	return class, nil
}

// String returns the name class label as it appears in names dumps.
func (nc NameClass) String() string {
	return nameClassLabels[nc]
}
