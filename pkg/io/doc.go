// Package io reads and writes Hopscotch project documents.
//
// # Overview
//
// This package is the public entry point of the converter. It combines the
// wire schema ([wire]) with the resolver and flattener ([codec]):
//
//	bytes --Parse--> project tree --(rewrite in place)--> Serialize --> bytes
//
// # Parse
//
// Use [Parse] for in-memory documents, [ReadJSON] for any io.Reader, or
// [ImportJSON] for a file path:
//
//	p, err := io.ImportJSON("level.hopscotch", codec.ResolveOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parsing fails only when the document cannot be decoded into the wire schema:
// malformed JSON, a wrong value type, or a missing required field. Those
// failures carry the [errors.ErrCodeInvalidDocument] code. Dangling
// identifiers and unparsable numbers never fail a parse; they resolve to
// placeholders and defaults.
//
// # Serialize
//
// Use [Serialize] for compact bytes, [WriteJSON] for indented output to any
// io.Writer, or [ExportJSON] for a file:
//
//	out, err := io.Serialize(p)
//
// Every save mints new identifiers and writes fixed container constants, so
// the output is equivalent to the input in shape and type tags but not in
// identifiers, stage size, or version fields.
//
// # Concurrency
//
// The functions in this package do not share state. A tree returned by a parse
// is owned by the caller and must not be serialized while it is being
// modified.
//
// [wire]: github.com/matzehuels/hsproject/pkg/wire
// [codec]: github.com/matzehuels/hsproject/pkg/codec
// [errors.ErrCodeInvalidDocument]: github.com/matzehuels/hsproject/pkg/errors.ErrCodeInvalidDocument
package io
