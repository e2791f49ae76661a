package taxonomy

import (
	"sort"
	"strings"
)

// OutputSeparator is the field separator of the output table. Resolved
// names must not contain it.
const OutputSeparator = '\t'

// ResolveNames picks one name per surviving taxon: the candidate with the
// best name class, ties resolved by input order. The Bacteria taxon is
// forced to the literal name "Bacteria" whatever the dump supplied.
//
// Two validations run over the resolved set and abort on violation: no
// name may contain the output field separator, and no two taxa may share
// a name.
func ResolveNames(
	rel Relation,
	cands map[int][]NameCandidate,
) (map[int]string, error) {
	res := make(map[int]string, len(rel))
	for id := range rel {
		if id == BacteriaID {
			res[id] = "Bacteria"
			continue
		}
		best, ok := bestCandidate(cands[id])
		if !ok {
			return nil, nameMissingError(id)
		}
		res[id] = best.Name
	}

	// Deterministic validation order keeps diagnostics stable.
	ids := make([]int, 0, len(res))
	for id := range res {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	seen := make(map[string]int, len(res))
	for _, id := range ids {
		name := res[id]
		if strings.ContainsRune(name, OutputSeparator) {
			return nil, nameSeparatorError(id, name)
		}
		if prev, ok := seen[name]; ok {
			return nil, nameCollisionError(prev, id, name)
		}
		seen[name] = id
	}
	return res, nil
}

// bestCandidate returns the candidate with the highest name class. The
// first candidate wins on equal classes, so the result follows dump order.
func bestCandidate(cands []NameCandidate) (NameCandidate, bool) {
	if len(cands) == 0 {
		return NameCandidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Class > best.Class {
			best = c
		}
	}
	return best, true
}
