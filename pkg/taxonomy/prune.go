package taxonomy

// Prune rebuilds the relation by traversal from the root, keeping exactly
// the taxa reachable through unbroken parent links. Canonicalization can
// leave edges whose parent's own lineage was dropped separately; such
// disconnected fragments are removed here, even when the fragment's edges
// are individually valid. The result is a single tree rooted at RootID.
func Prune(rel Relation) Relation {
	children := make(map[int][]int, len(rel))
	for child, parent := range rel {
		children[parent] = append(children[parent], child)
	}

	res := make(Relation, len(rel))
	queue := []int{RootID}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, child := range children[parent] {
			if _, seen := res[child]; seen {
				continue
			}
			res[child] = parent
			queue = append(queue, child)
		}
	}
	return res
}
