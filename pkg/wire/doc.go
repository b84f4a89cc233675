// Package wire defines the flat, ID-referenced records of a Hopscotch project
// document.
//
// # Overview
//
// A project document is one JSON object holding per-kind collections. Records
// reference each other by opaque string identifiers:
//
//	scene.objects[]   -> object.objectID
//	object.rules[]    -> rule.id
//	object.abilityID  -> ability.abilityID
//	rule.abilityID    -> ability.abilityID
//
// Blocks are stored inline in their ability and carry no identifier.
//
// # Field Encoding
//
// Field names are part of the file format and must match exactly, including the
// few snake_case names ("block_class", "requires_beta_editor") and the upper-case
// "ID" suffixes ("objectID", "abilityID", "customRuleID").
//
// Numeric fields are JSON numbers and are kept as [Number] so that values
// outside the float64 range survive decoding. A quoted number is a type error. The geometry fields on [Object]
// (width, height, xPosition, yPosition, resizeScale, rotation) are JSON strings
// holding numeric text.
//
// # Validation
//
// [Decode] rejects documents that cannot be mapped onto these records: malformed
// JSON, a value of the wrong JSON type, or a required field that is missing or
// null. Optional fields are pointers or nil slices. Referential integrity is not
// checked here; a dangling identifier is the resolver's concern.
//
// # Lookup
//
// [NewLookup] builds one hash index per referenced collection. Lookups are O(1)
// and return the first record carrying an identifier when duplicates exist.
package wire
