// Package lifecycle defines the interfaces of the build pipeline: turning
// raw dump streams into a taxonomy table, and writing the table out.
// Implementations live in internal packages.
package lifecycle

import (
	"io"

	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// Builder runs the whole restructuring pipeline. The pipeline is a
// one-shot batch transform: it either returns the complete table or
// aborts on the first error.
type Builder interface {
	// Build consumes the nodes dump first, restructures the relation,
	// and only then consumes the names dump, restricted to the taxa
	// that survived. Both streams stay open for the duration of the
	// call.
	Build(nodes, names io.Reader) (taxonomy.Table, error)

	// BuildFiles opens the dump files and delegates to Build,
	// optionally reporting scan progress.
	BuildFiles(nodesPath, namesPath string) (taxonomy.Table, error)
}

// Writer persists a finished taxonomy table.
type Writer interface {
	Write(taxonomy.Table) error
}
