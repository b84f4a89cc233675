// Package project provides the owned, identifier-free tree of a Hopscotch
// project.
//
// # Structure
//
//	Project
//	└── Scene (ordered)
//	    └── Object (ordered)
//	        ├── PreGame blocks (ordered, run before the game starts)
//	        └── Rule (ordered)
//	            ├── Event block (optional trigger)
//	            └── Body blocks (ordered)
//
// Relationships are encoded by nesting only. Trees are built by
// [github.com/matzehuels/hsproject/pkg/codec.Resolve] and flattened back into
// freshly identified wire records by
// [github.com/matzehuels/hsproject/pkg/codec.Flatten]; nothing in the tree
// survives as identity across a round trip.
//
// # Block Types
//
// [BlockType] is a closed union. Use [MatchType] to dispatch on it: the function
// takes one handler per variant, so a new variant breaks every dispatch site at
// compile time instead of falling through silently.
//
// # Traversal
//
// [Project.Blocks] yields a pointer to every block in the tree, in order:
//
//	for each scene, for each object:
//	    pre-game blocks
//	    for each rule: event (if any), then body blocks
//
// Each yielded pointer addresses a distinct block, so assigning through it
// rewrites the tree in place:
//
//	for b := range p.Blocks() {
//	    if b.Tag() == 69 {
//	        b.Type = project.ArbitraryID{ID: 22}
//	    }
//	}
//
// [Project.All] yields the same sequence paired with each block's [Location].
// Sequences are computed lazily over the current tree state on every call.
//
// A Project is not safe for concurrent use.
package project
