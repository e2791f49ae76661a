package ranks

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func unknownRankError(label string) error {
	msg := "Unknown taxonomic rank <em>%s</em>"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownRankError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: rank %q is not in the rank vocabulary",
			fn, label),
	}
}

func unknownNameClassError(label string) error {
	msg := "Unknown name class <em>%s</em>"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownNameClassError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: name class %q is not in the name class vocabulary",
			fn, label),
	}
}
