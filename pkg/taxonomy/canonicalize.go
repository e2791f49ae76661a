package taxonomy

import (
	"github.com/gnames/gntaxa/pkg/ranks"
)

// Canonicalize rewrites every edge of the relation so that each surviving
// child points to its nearest ancestor with a canonical rank, or to the
// root. An edge survives when either
//
//   - the child's own rank is off the ladder (such scaffolding nodes are
//     always reattached, no matter how many ladder steps were skipped), or
//   - the child's ladder position is exactly one below its new parent's
//     (the root counts as position 8, one above Domain).
//
// A canonical child whose ladder position is further than one step from
// the new parent represents an incomplete lineage, for example a species
// attached under a family with no genus in between; such children are
// dropped rather than silently reattached at the wrong depth.
//
// A canonical child whose nearest canonical ancestor carries the same
// rank indicates a malformed lineage and aborts with an error.
//
// Canonicalize is idempotent: applied to its own output it changes
// nothing.
func Canonicalize(rel Relation, rnk map[int]ranks.Rank) (Relation, error) {
	res := make(Relation, len(rel))
	for child, parent := range rel {
		anc, ok := nearestCanonical(parent, rel, rnk)
		if !ok {
			// Ancestor chain leads outside the relation; the
			// lineage is already broken, drop the child.
			continue
		}

		ancLadder := ranks.RootLadder
		if anc != RootID {
			if rnk[anc] == rnk[child] {
				return nil, rankConflictError(child, anc, rnk[child])
			}
			ancLadder, _ = rnk[anc].Ladder()
		}

		childLadder, canonical := rnk[child].Ladder()
		if !canonical || childLadder == ancLadder-1 {
			res[child] = anc
		}
	}
	return res, nil
}

// nearestCanonical walks up from id through rel until it finds a taxon
// whose rank sits on the ladder, or the root. It returns false when the
// walk hits a taxon absent from the relation.
func nearestCanonical(
	id int,
	rel Relation,
	rnk map[int]ranks.Rank,
) (int, bool) {
	for id != RootID {
		if _, ok := rnk[id].Ladder(); ok {
			return id, true
		}
		parent, ok := rel[id]
		if !ok {
			return 0, false
		}
		id = parent
	}
	return RootID, true
}
