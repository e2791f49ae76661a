// Package main provides the gntaxa CLI application.
// gntaxa converts a raw taxonomy dump into a strictly-layered taxonomy
// table for genomic classification tools.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
