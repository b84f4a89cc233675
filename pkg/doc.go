// Package pkg holds the libraries behind hsproject, a converter for Hopscotch
// project documents.
//
// A Hopscotch project is stored as flat JSON: scenes, objects, rules and
// abilities live in separate top-level arrays and refer to each other by
// string identifier. The libraries turn that document into an owned tree,
// let callers edit every block in one pass, and write a fresh document back.
//
// # Data Flow
//
//	JSON document
//	     ↓
//	[wire]     decode records, check required fields, index by identifier
//	     ↓
//	[codec]    Resolve: follow references into a tree, absorbing gaps
//	     ↓
//	[project]  owned tree with a mutable block traversal
//	     ↓
//	[rewrite]  rule-driven block type changes
//	     ↓
//	[codec]    Flatten: mint fresh identifiers and rebuild the document
//	     ↓
//	JSON document
//
// [io] wraps both directions behind Parse and Serialize. [pipeline] runs the
// whole chain with an output [cache] and [observability] hooks. [render]
// draws a tree with Graphviz.
//
// # Quick Start
//
//	p, err := io.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for b := range p.Blocks() {
//	    if b.Tag() == 69 {
//	        b.Type = project.ArbitraryID{ID: 22}
//	    }
//	}
//	out, err := io.Serialize(p)
//
// [wire]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/wire
// [codec]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/codec
// [project]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/project
// [rewrite]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/rewrite
// [io]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/hsproject/pkg/render
package pkg
