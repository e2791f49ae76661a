package taxonomy

// FilterBlacklist returns a new relation without the blacklisted taxa and
// everything beneath them. A child survives only if neither it nor any of
// its ancestors, followed through rel up to the root, is blacklisted.
//
// Chains are walked per child without caching; cost is bounded by the
// number of nodes times the average depth, which is fine for dumps with
// hundreds of thousands of nodes.
func FilterBlacklist(rel Relation, blacklist map[int]struct{}) Relation {
	if len(blacklist) == 0 {
		res := make(Relation, len(rel))
		for child, parent := range rel {
			res[child] = parent
		}
		return res
	}

	res := make(Relation, len(rel))
	for child, parent := range rel {
		if !chainBlacklisted(child, rel, blacklist) {
			res[child] = parent
		}
	}
	return res
}

// chainBlacklisted reports whether id or any of its ancestors is in the
// blacklist. The walk stops at the root or at a missing parent link.
func chainBlacklisted(
	id int,
	rel Relation,
	blacklist map[int]struct{},
) bool {
	for {
		if _, ok := blacklist[id]; ok {
			return true
		}
		if id == RootID {
			return false
		}
		parent, ok := rel[id]
		if !ok {
			return false
		}
		id = parent
	}
}
