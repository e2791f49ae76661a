// Package iobuild implements the build pipeline: it parses the dumps and
// runs the restructuring stages in their fixed order.
package iobuild

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gntaxa/internal/iodump"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

type builder struct {
	cfg *config.Config
}

// New creates a Builder configured with cfg.
func New(cfg *config.Config) lifecycle.Builder {
	return &builder{cfg: cfg}
}

// Build runs the pipeline: parse nodes, drop blacklisted subtrees,
// collapse ranks onto the canonical ladder, prune disconnected fragments,
// resolve names for the survivors, assemble the sorted table.
func (b *builder) Build(
	nodes, names io.Reader,
) (taxonomy.Table, error) {
	start := time.Now()

	rnk, rel, err := iodump.ParseNodes(nodes)
	if err != nil {
		return nil, err
	}
	slog.Info("Parsed nodes dump",
		"nodes", humanize.Comma(int64(len(rnk))),
	)

	rel = taxonomy.FilterBlacklist(rel, b.blacklistSet())
	slog.Info("Removed blacklisted subtrees",
		"nodes", humanize.Comma(int64(len(rel))),
	)

	rel, err = taxonomy.Canonicalize(rel, rnk)
	if err != nil {
		return nil, err
	}
	slog.Info("Collapsed ranks onto the canonical ladder",
		"nodes", humanize.Comma(int64(len(rel))),
	)

	rel = taxonomy.Prune(rel)
	slog.Info("Pruned taxa disconnected from the root",
		"nodes", humanize.Comma(int64(len(rel))),
	)

	keep := make(map[int]struct{}, len(rel))
	for id := range rel {
		keep[id] = struct{}{}
	}
	cands, err := iodump.ParseNames(names, keep)
	if err != nil {
		return nil, err
	}

	resolved, err := taxonomy.ResolveNames(rel, cands)
	if err != nil {
		return nil, err
	}

	table := taxonomy.Assemble(rel, rnk, resolved)
	slog.Info("Built taxonomy table",
		"rows", humanize.Comma(int64(len(table))),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return table, nil
}

// BuildFiles opens both dump files for the duration of the build. With
// progress enabled the files are wrapped in byte-counting progress bars;
// the names bar starts only when the names phase begins reading.
func (b *builder) BuildFiles(
	nodesPath, namesPath string,
) (taxonomy.Table, error) {
	nodesFile, err := os.Open(nodesPath)
	if err != nil {
		return nil, DumpOpenError(nodesPath, err)
	}
	defer nodesFile.Close()

	namesFile, err := os.Open(namesPath)
	if err != nil {
		return nil, DumpOpenError(namesPath, err)
	}
	defer namesFile.Close()

	var nodes, names io.Reader = nodesFile, namesFile
	if b.cfg.WithProgress {
		nodesBar := newProgressReader(nodesFile, "nodes")
		namesBar := newProgressReader(namesFile, "names")
		defer nodesBar.finish()
		defer namesBar.finish()
		nodes, names = nodesBar, namesBar
	}

	return b.Build(nodes, names)
}

func (b *builder) blacklistSet() map[int]struct{} {
	res := make(map[int]struct{}, len(b.cfg.Blacklist))
	for _, id := range b.cfg.Blacklist {
		res[id] = struct{}{}
	}
	return res
}
