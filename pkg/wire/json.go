package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses a project document.
//
// Decode fails if the JSON is malformed, if a value has the wrong JSON type, or
// if a required field is missing or null (see [FieldError]). Trailing data after
// the document is rejected.
func Decode(data []byte) (*Project, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a project document from r. Read does not close r.
func Read(r io.Reader) (*Project, error) {
	dec := json.NewDecoder(r)
	var p Project
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode: unexpected data after project document")
	}
	return &p, nil
}

// Encode returns the compact JSON encoding of p.
func Encode(p *Project) ([]byte, error) {
	return EncodeIndent(p, "")
}

// EncodeIndent returns the JSON encoding of p, indenting nested values by
// indent when it is non-empty. Both forms leave <, > and & unescaped and carry
// no trailing newline.
func EncodeIndent(p *Project, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write encodes p to w as [EncodeIndent] does, followed by a newline.
func Write(w io.Writer, p *Project, indent string) error {
	data, err := EncodeIndent(p, indent)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
