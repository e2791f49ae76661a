package iodump

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func RecordError(dump string, lineNo int, line string) error {
	msg := "Malformed record on line <em>%d</em> of the %s dump: <em>%q</em>"
	vars := []any{lineNo, dump, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpRecordError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: malformed %s record on line %d: %q",
			fn, dump, lineNo, line),
	}
}

func DuplicateNodeError(id int) error {
	msg := `Taxon id <em>%d</em> appears more than once in the nodes dump

Node ids must be globally unique.`
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DuplicateNodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: duplicate node id %d", fn, id),
	}
}

func DumpReadError(dump string, err error) error {
	msg := "Cannot read the %s dump"
	vars := []any{dump}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s dump: %w", fn, dump, err),
	}
}
