package blacklist

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntaxa/pkg/errcode"
)

func parseError(err error) error {
	msg := `Cannot parse blacklist file

<em>How to fix:</em>
  1. Check the YAML syntax of blacklist.yaml
  2. Remove the file to regenerate the default on the next run`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BlacklistParseError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("from %s: cannot parse blacklist: %w", fn, err),
	}
}

func entryError(t Taxon, reason string) error {
	msg := "Invalid blacklist entry (id <em>%d</em>, name <em>%s</em>): %s"
	vars := []any{t.ID, t.Name, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BlacklistEntryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid blacklist entry %d: %s",
			fn, t.ID, reason),
	}
}
