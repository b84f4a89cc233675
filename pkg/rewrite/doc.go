// Package rewrite changes block type tags across a project tree.
//
// A [Rule] pairs a match expression with the tag it assigns. Expressions are
// written in the expr language (github.com/expr-lang/expr) and see these
// variables for the block under consideration:
//
//	tag     float64  the block's current type tag
//	role    string   "pregame", "event" or "body"
//	scene   string   name of the enclosing scene
//	object  string   name of the enclosing object
//	rule    int      index of the enclosing rule, -1 for pre-game blocks
//
// A [Rewriter] compiles its rules once and applies them in a single pass over
// [project.Project.All]. The first matching rule wins for each block.
//
// Rule sets can be loaded from TOML or YAML files:
//
//	# rules.toml
//	[[rule]]
//	name = "strip-comments"
//	match = "tag == 69"
//	set_type = 22
//
//	# rules.yaml
//	rules:
//	  - name: strip-comments
//	    match: tag == 69
//	    set_type: 22
package rewrite
