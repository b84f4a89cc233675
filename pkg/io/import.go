package io

import (
	"bytes"
	"io"
	"os"

	"github.com/matzehuels/hsproject/pkg/codec"
	"github.com/matzehuels/hsproject/pkg/errors"
	"github.com/matzehuels/hsproject/pkg/project"
	"github.com/matzehuels/hsproject/pkg/wire"
)

// Parse decodes a document and resolves it into a tree.
func Parse(data []byte) (*project.Project, error) {
	return ParseWith(data, codec.ResolveOptions{})
}

// ParseWith is [Parse] with resolver options, e.g. to observe absorbed gaps.
func ParseWith(data []byte, opts codec.ResolveOptions) (*project.Project, error) {
	return ReadJSON(bytes.NewReader(data), opts)
}

// ReadJSON decodes a document from r and resolves it into a tree.
//
// ReadJSON returns an error carrying [errors.ErrCodeInvalidDocument] if the
// document is malformed or misses a required field. The returned tree is
// independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader, opts codec.ResolveOptions) (*project.Project, error) {
	doc, err := wire.Read(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse project")
	}
	return codec.Resolve(doc, opts), nil
}

// ImportJSON reads the document at path and resolves it into a tree.
//
// A missing file yields [errors.ErrCodeFileNotFound]; other open failures are
// wrapped with the path. Decoding errors are the same as for [ReadJSON].
func ImportJSON(path string, opts codec.ResolveOptions) (*project.Project, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, opts)
}
