package taxonomy

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
	"github.com/gnames/gntaxa/pkg/ranks"
)

func rankConflictError(child, ancestor int, rank ranks.Rank) error {
	msg := `Taxon <em>%d</em> and its nearest canonical ancestor <em>%d</em> share the rank <em>%s</em>

The lineage in the nodes dump is malformed.`
	vars := []any{child, ancestor, rank.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RankConflictError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: taxon %d and ancestor %d share rank %q",
			fn, child, ancestor, rank),
	}
}

func nameMissingError(id int) error {
	msg := "No name record found for taxon <em>%d</em>"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NameMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: taxon %d has no name candidates", fn, id),
	}
}

func nameSeparatorError(id int, name string) error {
	msg := "Name of taxon <em>%d</em> contains a tab character: <em>%q</em>"
	vars := []any{id, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NameSeparatorError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: name %q of taxon %d contains the field separator",
			fn, name, id),
	}
}

func nameCollisionError(id1, id2 int, name string) error {
	msg := `Taxa <em>%d</em> and <em>%d</em> resolve to the same name <em>%s</em>

Names must be globally unique in the output table.`
	vars := []any{id1, id2, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NameCollisionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"from %s: taxa %d and %d both resolve to name %q",
			fn, id1, id2, name),
	}
}
