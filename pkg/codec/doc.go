// Package codec converts between wire documents and owned project trees.
//
// [Resolve] follows identifier references from scenes down to blocks and
// returns a tree that owns all of its data. It absorbs every referential
// problem: dangling identifiers become placeholders, bad numbers become
// defaults, and each absorbed problem can be observed through
// [ResolveOptions.OnGap].
//
// [Flatten] walks a tree top-down and mints a new identifier for every scene,
// object, rule and ability. Identifiers from the original document are never
// reused, so a load/save round trip preserves shape, order and type tags but
// not identity. Container fields the tree does not carry (stage size, version
// numbers, font size, beta-editor flag) are written as fixed constants.
//
// Pass [Sequential] as the identifier generator to get reproducible output:
//
//	doc := codec.Flatten(tree, codec.FlattenOptions{NewID: codec.Sequential("id")})
package codec
