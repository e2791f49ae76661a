// Package gntaxa holds application-wide metadata.
package gntaxa

var (
	// Version is set by the build process via ldflags.
	Version = "v0.1.0"
	// Build is set by the build process via ldflags.
	Build = "n/a"
)
