package main

import (
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/spf13/cobra"
)

// flagOpts converts the command-line flags into config options. Unset
// flags produce no options, so config and env settings stay in effect.
func flagOpts(cmd *cobra.Command) []config.Option {
	var res []config.Option

	if s, _ := cmd.Flags().GetString("format"); s != "" {
		res = append(res, config.OptFormat(s))
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		res = append(res, config.OptWithProgress(false))
	}

	return res
}
