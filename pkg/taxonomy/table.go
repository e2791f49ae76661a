package taxonomy

import (
	"sort"

	"github.com/gnames/gntaxa/pkg/ranks"
)

// Assemble joins the pruned relation with the resolved names into the
// output table, one row per surviving non-root taxon. Rows are sorted
// ascending by name, byte-wise; the ordering carries no meaning, it only
// improves compression of the emitted file.
func Assemble(
	rel Relation,
	rnk map[int]ranks.Rank,
	names map[int]string,
) Table {
	res := make(Table, 0, len(rel))
	for child, parent := range rel {
		res = append(res, Row{
			ID:       child,
			Rank:     rnk[child],
			ParentID: parent,
			Name:     names[child],
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}
