package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/hsproject/pkg/codec"
	"github.com/matzehuels/hsproject/pkg/errors"
	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/wire"
)

// DefaultIndent is the indentation used by [WriteJSON] and [ExportJSON].
const DefaultIndent = "  "

// Serialize flattens p into a compact document with fresh random identifiers.
func Serialize(p *project.Project) ([]byte, error) {
	return SerializeWith(p, codec.FlattenOptions{})
}

// SerializeWith is [Serialize] with flattener options, e.g. a deterministic
// identifier generator.
func SerializeWith(p *project.Project, opts codec.FlattenOptions) ([]byte, error) {
	return SerializeIndent(p, opts, "")
}

// SerializeIndent is [SerializeWith] with indented output. An empty indent
// gives the compact form; neither form ends in a newline.
func SerializeIndent(p *project.Project, opts codec.FlattenOptions, indent string) ([]byte, error) {
	data, err := wire.EncodeIndent(codec.Flatten(p, opts), indent)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize project")
	}
	return data, nil
}

// WriteJSON flattens p and writes the indented document to w.
// The output can be read back with [ReadJSON].
func WriteJSON(p *project.Project, w io.Writer, opts codec.FlattenOptions) error {
	if err := wire.Write(w, codec.Flatten(p, opts), DefaultIndent); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "serialize project")
	}
	return nil
}

// ExportJSON writes p to a file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *project.Project, path string, opts codec.FlattenOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(p, f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
